package perf_test

import (
	"fmt"
	"runtime"

	"github.com/dalibo/xprod/internal/perf"
)

func ExampleFormatBytes() {
	var value int
	value = 5546875
	fmt.Printf("%dB = %s\n", value, perf.FormatBytes(value))
	value = 4
	fmt.Printf("%dB = %s\n", value, perf.FormatBytes(value))
	value = 900
	fmt.Printf("%dB = %s\n", value, perf.FormatBytes(value))
	// Output:
	// 5546875B = 5.3MiB
	// 4B = 4B
	// 900B = 0.9KiB
}

func (suite *Suite) TestFormatBytes() {
	r := suite.Require()

	r.Equal("0B", perf.FormatBytes(0))
	r.Equal("1KiB", perf.FormatBytes(999))
	r.Equal("2048TiB", perf.FormatBytes(1<<51))
}

func (suite *Suite) TestReadVMPeak() {
	r := suite.Require()

	peak := perf.ReadVMPeak()
	if runtime.GOOS == "linux" {
		r.Less(0, peak)
	} else {
		r.Equal(0, peak)
	}
}
