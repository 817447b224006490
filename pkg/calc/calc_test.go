package calc_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/srpnkit/srpn/pkg/calc"
)

func feed(lines ...string) string {
	var buf bytes.Buffer
	c := calc.New(&buf)
	for _, ln := range lines {
		c.ProcessLine(ln)
	}
	return buf.String()
}

func TestPostfixAddition(t *testing.T) {
	if got := feed("10 2 +", "="); got != "12\n" {
		t.Errorf("output = %q, want %q", got, "12\n")
	}
}

func TestNotationEquivalence(t *testing.T) {
	postfix := feed("3 3 +", "=")
	infix := feed("3+3", "=")
	if postfix != infix {
		t.Errorf("postfix %q != infix %q", postfix, infix)
	}

	// The compound form prints the top before applying the operator, so it
	// carries one extra line ahead of the same result.
	compound := feed("3 3+=", "=")
	if want := "3\n" + postfix; compound != want {
		t.Errorf("compound output = %q, want %q", compound, want)
	}
}

func TestSaturationAcrossLines(t *testing.T) {
	if got := feed("2147483647", "1", "+", "="); got != "2147483647\n" {
		t.Errorf("output = %q", got)
	}
	if got := feed("-2147483648 -1 +", "="); got != "-2147483648\n" {
		t.Errorf("output = %q", got)
	}
}

func TestDivideByZeroRestore(t *testing.T) {
	want := "Divide by 0.\n0\n10\n"
	if got := feed("10 0 /", "d"); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestModuloZeroDividend(t *testing.T) {
	if got := feed("0 5 %"); got != "Divide by 0.\n" {
		t.Errorf("output = %q", got)
	}
}

func TestNegativePowerRestore(t *testing.T) {
	want := "Negative power.\n-1\n2\n"
	if got := feed("2 -1 ^", "d"); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestCommentSpanSuppressesPushes(t *testing.T) {
	// Everything from the first '#' to the second is dropped, numbers
	// included; only the trailing 3 lands on the stack.
	if got := feed("# 1 2 + # 3", "="); got != "3\n" {
		t.Errorf("output = %q, want %q", got, "3\n")
	}
}

func TestCommentModePersistsAcrossLines(t *testing.T) {
	got := feed("#", "5", "#", "5", "=")
	if got != "5\n" {
		t.Errorf("output = %q, want %q", got, "5\n")
	}
}

func TestDisplayIdempotent(t *testing.T) {
	var buf bytes.Buffer
	c := calc.New(&buf)
	c.ProcessLine("5")
	c.ProcessLine("d")
	first := buf.String()
	buf.Reset()
	c.ProcessLine("d")
	if second := buf.String(); first != second {
		t.Errorf("repeated d differs: %q then %q", first, second)
	}
}

func TestRandomExhaustion(t *testing.T) {
	var buf bytes.Buffer
	c := calc.New(&buf)
	for i := 0; i < 23; i++ {
		c.ProcessLine("r")
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected output while consuming sequence: %q", buf.String())
	}
	c.ProcessLine("r")
	if got := buf.String(); got != "Stack overflow.\n" {
		t.Errorf("output = %q, want %q", got, "Stack overflow.\n")
	}
}

func TestUnrecognisedCharacter(t *testing.T) {
	want := "Unrecognised operator or operand \"@\".\n"
	if got := feed("@"); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestUnderflowLeavesOperand(t *testing.T) {
	if got := feed("5 +", "="); got != "Stack underflow.\n5\n" {
		t.Errorf("output = %q", got)
	}
}

func BenchmarkProcessLine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c := calc.New(io.Discard)
		c.ProcessLine("1+2*3=")
	}
}
