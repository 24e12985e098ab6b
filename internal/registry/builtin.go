package registry

import (
	_ "embed"
	"fmt"
)

//go:embed builtin.yaml
var builtinYAML []byte

func init() {
	builtins, err := ParseYAML(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("registry: embedded patterns: %v", err))
	}
	for _, p := range builtins {
		Register(p)
	}
}
