package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Resolve  bool
	Op       bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("TQ_DEBUG_TOKENIZE")
	d.Resolve = boolEnv("TQ_DEBUG_RESOLVE")
	d.Op = boolEnv("TQ_DEBUG_OP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Resolve() bool {
	return d.Resolve
}
func Op() bool {
	return d.Op
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
