package stats

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		perGame []int
		mean    float64
		stdev   float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, pts := range c.perGame {
			s.Push(float64(pts))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
	}
}

func TestMinMax(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for _, v := range []float64{12, 3, 45, 7, 30} {
		s.Push(v)
	}
	is.Equal(s.Min(), 3.0)
	is.Equal(s.Max(), 45.0)
	is.Equal(s.Last(), 30.0)
	is.Equal(s.Iterations(), 5)
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(math.Abs(ZVal(95)-1.9599639845) < 1e-6)
	is.True(math.Abs(ZVal(99)-2.5758293035) < 1e-6)
}

func TestConfidenceInterval(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for _, v := range []float64{10, 12, 23, 23, 16, 23, 21, 16} {
		s.Push(v)
	}
	low, high := s.ConfidenceInterval(95)
	is.True(low < s.Mean())
	is.True(high > s.Mean())
	is.True(FuzzyEqual(s.Mean()-low, high-s.Mean()))

	empty := &Statistic{}
	low, high = empty.ConfidenceInterval(95)
	is.Equal(low, 0.0)
	is.Equal(high, 0.0)
}
