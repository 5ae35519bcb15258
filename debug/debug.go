package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Convert bool
	Filter  bool
	Merge   bool
	Encode  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("PSD_DEBUG_CONVERT")
	d.Filter = boolEnv("PSD_DEBUG_FILTER")
	d.Merge = boolEnv("PSD_DEBUG_MERGE")
	d.Encode = boolEnv("PSD_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}
func Filter() bool {
	return d.Filter
}
func Merge() bool {
	return d.Merge
}
func Encode() bool {
	return d.Encode
}
