package packaging

import (
	"fmt"
	"os/exec"
	"strings"
)

// goBuilder implements Builder by shelling out to the Go toolchain.
type goBuilder struct {
	pkg    string
	output string
}

// NewGoBuilder returns a Builder that compiles pkg in release mode
// (trimmed paths, stripped symbol tables) to the output path.
func NewGoBuilder(pkg, output string) Builder {
	return &goBuilder{pkg: pkg, output: output}
}

func (b *goBuilder) Build() error {
	cmd := exec.Command("go", "build", "-trimpath", "-ldflags", "-s -w", "-o", b.output, b.pkg)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("packaging: go build %s: %s: %w", b.pkg, strings.TrimSpace(string(output)), err)
	}
	return nil
}
