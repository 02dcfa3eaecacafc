package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Codec  bool
	LSP    bool
	Config bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("DTS_DEBUG_TOKENS")
	d.Parse = boolEnv("DTS_DEBUG_PARSE")
	d.Codec = boolEnv("DTS_DEBUG_CODEC")
	d.LSP = boolEnv("DTS_DEBUG_LSP")
	d.Config = boolEnv("DTS_DEBUG_CONFIG")
	d.Query = boolEnv("DTS_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Codec() bool {
	return d.Codec
}
func LSP() bool {
	return d.LSP
}
func Config() bool {
	return d.Config
}
func Query() bool {
	return d.Query
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
