// Package calc ties the input rewriter and the stack machine into the
// line-oriented calculator surface.
package calc

import (
	"io"

	"github.com/srpnkit/srpn/pkg/machine"
	"github.com/srpnkit/srpn/pkg/rewriter"
)

// Calculator evaluates arithmetic command lines against one long-lived stack
// machine. Output lines are written in the order the operations occur.
type Calculator struct {
	machine *machine.Machine
}

// New returns a calculator writing results and diagnostics to out.
func New(out io.Writer) *Calculator {
	return &Calculator{machine: machine.New(out)}
}

// ProcessLine normalizes one raw input line and executes its tokens in
// postfix order. It never fails; all effects are machine state and printed
// output.
func (c *Calculator) ProcessLine(line string) {
	rewriter.ProcessLine(line, c.machine.Apply)
}
