package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan bool
	Fill bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("INSTREAM_DEBUG_SCAN")
	d.Fill = boolEnv("INSTREAM_DEBUG_FILL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Fill() bool {
	return d.Fill
}
