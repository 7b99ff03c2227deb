package perf_test

import (
	"time"

	"github.com/dalibo/xprod/internal/perf"
)

func (suite *Suite) TestStopwatch() {
	r := suite.Require()

	t := perf.StopWatch{}
	t.TimeIt(func() {
		time.Sleep(time.Microsecond)
	})
	r.Less(0*time.Nanosecond, t.Total)
	r.Equal(1, t.Count)
	backup := t.Total

	t.TimeIt(func() {
		time.Sleep(time.Microsecond)
	})
	r.Less(backup, t.Total)
	r.Equal(2, t.Count)
}

func (suite *Suite) TestRate() {
	r := suite.Require()

	r.Equal(0., perf.StopWatch{}.Rate(10))
	r.Equal(5., perf.StopWatch{Total: 2 * time.Second}.Rate(10))
}
