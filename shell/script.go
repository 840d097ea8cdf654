package shell

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("grabble_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// pushResponse pushes the command output, or an ERROR: string, so
// scripts always get something they can print or match on.
func pushResponse(L *lua.LState, what string, r *Response, err error) int {
	if err != nil {
		log.Err(err).Str("cmd", what).Msg("error executing script command")
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
	message := ""
	if r != nil {
		message = r.message
	}
	L.Push(lua.LString(message))
	// return number of results pushed to stack.
	return 1
}

func scriptArgs(lv string) []string {
	fields := strings.Fields(lv)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func Load(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.load(&shellcmd{cmd: "load", args: scriptArgs(lv)})
	return pushResponse(L, "load", r, err)
}

func Add(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.add(&shellcmd{cmd: "add", args: scriptArgs(lv)})
	return pushResponse(L, "add", r, err)
}

func Delete(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.delete(&shellcmd{cmd: "delete", args: scriptArgs(lv)})
	return pushResponse(L, "delete", r, err)
}

func Play(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.play(&shellcmd{cmd: "play", args: scriptArgs(lv)})
	return pushResponse(L, "play", r, err)
}

func Gen(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.generate(&shellcmd{cmd: "gen"})
	return pushResponse(L, "gen", r, err)
}

func Possible(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.possible(&shellcmd{cmd: "possible"})
	return pushResponse(L, "possible", r, err)
}

func Export(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.export(&shellcmd{cmd: "export", args: scriptArgs(lv)})
	return pushResponse(L, "export", r, err)
}

func Import(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.importState(&shellcmd{cmd: "import", args: scriptArgs(lv)})
	return pushResponse(L, "import", r, err)
}

func Set(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.set(&shellcmd{cmd: "set", args: scriptArgs(lv)})
	return pushResponse(L, "set", r, err)
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()
	luajson.Preload(L)

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("grabble_shell", lsc)
	L.SetGlobal("grabble_load", L.NewFunction(Load))
	L.SetGlobal("grabble_add", L.NewFunction(Add))
	L.SetGlobal("grabble_delete", L.NewFunction(Delete))
	L.SetGlobal("grabble_play", L.NewFunction(Play))
	L.SetGlobal("grabble_gen", L.NewFunction(Gen))
	L.SetGlobal("grabble_possible", L.NewFunction(Possible))
	L.SetGlobal("grabble_export", L.NewFunction(Export))
	L.SetGlobal("grabble_import", L.NewFunction(Import))
	L.SetGlobal("grabble_set", L.NewFunction(Set))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return nil, nil
}
