// Package machine implements the saturating stack machine that executes
// normalized calculator tokens.
//
// All arithmetic is signed 32-bit with clamp-on-overflow semantics: a result
// outside the int32 range is replaced by the nearest bound, never wrapped and
// never faulted on. Diagnostics and computed values are written as lines to
// the machine's output writer.
package machine

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/srpnkit/srpn/pkg/rewriter"
)

// Diagnostic lines. Exact wording matters: downstream consumers match these
// verbatim.
const (
	msgDivideByZero   = "Divide by 0."
	msgNegativePower  = "Negative power."
	msgStackEmpty     = "Stack empty."
	msgStackUnderflow = "Stack underflow."
	msgStackOverflow  = "Stack overflow."
)

// Machine holds the operand stack, the cursor into the fixed random sequence,
// and the comment flag. One long-lived instance serves an entire session; no
// operation ever resets it.
type Machine struct {
	// Stack is the operand stack, last-in-first-out. Stack[len-1] is the top.
	Stack []int32

	out        io.Writer
	randCursor int
	commenting bool
}

// New returns a machine that writes its output lines to out.
func New(out io.Writer) *Machine {
	return &Machine{out: out}
}

// Apply executes one atomic token against the machine state. It never fails:
// every malformed or boundary condition resolves to a printed diagnostic, a
// clamped result, or a restored stack.
func (m *Machine) Apply(token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	if token == "#" {
		m.commenting = !m.commenting
		return
	}
	if m.commenting {
		return
	}
	if rewriter.IsOperand(token) {
		m.pushNumber(token)
		return
	}

	switch token {
	case "+":
		m.add()
	case "-":
		m.subtract()
	case "*":
		m.multiply()
	case "/":
		m.divide()
	case "%":
		m.modulo()
	case "^":
		m.power()
	case "=":
		m.assign()
	case "d":
		m.display()
	case "r":
		m.random()
	default:
		fmt.Fprintf(m.out, "Unrecognised operator or operand \"%s\".\n", token)
	}
}

// pushNumber parses an operand token and pushes it, clamping to the int32
// bound matching the sign of the text when the value is out of range.
func (m *Machine) pushNumber(s string) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		if s[0] == '-' {
			m.push(math.MinInt32)
		} else {
			m.push(math.MaxInt32)
		}
		return
	}
	m.push(int32(n))
}

func (m *Machine) push(v int32) {
	m.Stack = append(m.Stack, v)
}

// pop2 removes the two topmost operands for a binary operator. first is the
// old top (the right-hand operand in postfix order), second the one below it.
// With fewer than two operands it prints the underflow diagnostic and pops
// nothing.
func (m *Machine) pop2() (first, second int32, ok bool) {
	if len(m.Stack) < 2 {
		m.println(msgStackUnderflow)
		return 0, 0, false
	}
	first = m.Stack[len(m.Stack)-1]
	second = m.Stack[len(m.Stack)-2]
	m.Stack = m.Stack[:len(m.Stack)-2]
	return first, second, true
}

func (m *Machine) add() {
	first, second, ok := m.pop2()
	if !ok {
		return
	}
	if r, ok := addChecked(second, first); ok {
		m.push(r)
		return
	}
	if first > 0 {
		m.push(math.MaxInt32)
	} else {
		m.push(math.MinInt32)
	}
}

func (m *Machine) subtract() {
	first, second, ok := m.pop2()
	if !ok {
		return
	}
	if r, ok := subChecked(second, first); ok {
		m.push(r)
		return
	}
	if second < 0 {
		m.push(math.MinInt32)
	} else {
		m.push(math.MaxInt32)
	}
}

func (m *Machine) multiply() {
	first, second, ok := m.pop2()
	if !ok {
		return
	}
	if r, ok := mulChecked(second, first); ok {
		m.push(r)
		return
	}
	if sign(first) == sign(second) {
		m.push(math.MaxInt32)
	} else {
		m.push(math.MinInt32)
	}
}

func (m *Machine) divide() {
	first, second, ok := m.pop2()
	if !ok {
		return
	}
	if first == 0 {
		m.println(msgDivideByZero)
		m.push(second)
		m.push(first)
		return
	}
	if r, ok := divChecked(second, first); ok {
		m.push(r)
		return
	}
	// Only MinInt32 / -1 overflows; both operands negative clamps to MAX.
	if sign(first) == sign(second) {
		m.push(math.MaxInt32)
	} else {
		m.push(math.MinInt32)
	}
}

func (m *Machine) modulo() {
	first, second, ok := m.pop2()
	if !ok {
		return
	}
	// The zero test inspects the second pop (the dividend), not the divisor.
	// That asymmetry is load-bearing for compatibility; a zero divisor is
	// caught as well so the operation cannot fault.
	if second == 0 || first == 0 {
		m.println(msgDivideByZero)
		m.push(second)
		m.push(first)
		return
	}
	m.push(second % first)
}

func (m *Machine) power() {
	first, second, ok := m.pop2()
	if !ok {
		return
	}
	if first < 0 {
		m.push(second)
		m.push(first)
		m.println(msgNegativePower)
		return
	}
	if r, ok := powChecked(second, first); ok {
		m.push(r)
		return
	}
	if second > 0 || first%2 == 0 {
		m.push(math.MaxInt32)
	} else {
		m.push(math.MinInt32)
	}
}

// assign prints the top of the stack without popping it.
func (m *Machine) assign() {
	if len(m.Stack) == 0 {
		m.println(msgStackEmpty)
		return
	}
	m.println(m.Stack[len(m.Stack)-1])
}

// display prints every stack element from top to bottom, one per line, or the
// int32 minimum when the stack is empty. The stack is left unchanged.
func (m *Machine) display() {
	if len(m.Stack) == 0 {
		m.println(int32(math.MinInt32))
		return
	}
	for i := len(m.Stack) - 1; i >= 0; i-- {
		m.println(m.Stack[i])
	}
}

// random pushes the next value of the fixed pseudo-random sequence. The
// cursor only ever advances; once the sequence is exhausted every further 'r'
// prints the overflow diagnostic.
func (m *Machine) random() {
	if m.randCursor >= len(randomSequence) {
		m.println(msgStackOverflow)
		return
	}
	m.push(randomSequence[m.randCursor])
	m.randCursor++
}

func (m *Machine) println(v interface{}) {
	fmt.Fprintln(m.out, v)
}
