package report

import (
	"testing"

	"github.com/matryer/is"
)

func TestTotal(t *testing.T) {
	is := is.New(t)

	rep := &Report{}
	rep.Add("Field A", 1.25)
	rep.Add("Field B", 2.5)
	rep.Add("Field A", 0.25) // duplicate names are kept

	is.Equal(len(rep.Rows), 3)
	is.Equal(rep.Total(), 4.0)
}

func TestTotalEmpty(t *testing.T) {
	is := is.New(t)

	is.Equal((&Report{}).Total(), 0.0)
}

func TestRound(t *testing.T) {
	is := is.New(t)

	is.Equal(round(2.4711, 2), 2.47)
	is.Equal(round(2.476, 2), 2.48)
	is.Equal(round(2.4711, 0), 2.0)
}
