package shell

import (
	"embed"
	"errors"
	"strings"
)

//go:embed helptext
var helpFS embed.FS

func usage(mode string) (*Response, error) {
	dat, err := helpFS.ReadFile("helptext/usage-" + mode + ".txt")
	if err != nil {
		return nil, errors.New("could not load helptext: " + err.Error())
	}
	return msg(string(dat)), nil
}

func usageTopic(topic string) (*Response, error) {
	topic = strings.TrimSuffix(topic, ".txt")
	dat, err := helpFS.ReadFile("helptext/" + topic + ".txt")
	if err != nil {
		return nil, errors.New("there is no help text for the topic " + topic)
	}
	return msg(string(dat)), nil
}
