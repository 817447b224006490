// Package rewriter normalizes raw calculator input into atomic tokens.
//
// A command line may mix postfix ("3 4 +"), infix ("3+4"), and
// compound-assignment ("3 4 +=") notation. The rewriter repeatedly classifies
// the leading unconsumed text and either emits one token or rewrites the
// suffix into postfix form, so the consumer only ever sees tokens in postfix
// evaluation order.
package rewriter

import "strings"

const (
	// Operators eligible to lead an infix pair. '/' is deliberately absent:
	// a leading slash always falls through to single-character dispatch.
	infixOps = "+-*%^"

	// Operators that may form a compound-assignment run ahead of '='.
	compoundOps = "+-*/^%"
)

// ProcessLine breaks line into atomic tokens and hands each one to emit.
// Whitespace between tokens is insignificant.
//
// Classification priority per iteration, after trimming whitespace:
//
//  1. operand: optional '-' then one or more digits — emitted as-is;
//  2. infix: one operator immediately followed by an operand — the operand
//     is spliced in front of the operator and the result rescanned, turning
//     "+3" into "3+";
//  3. compound assignment: a run of operator characters ending in '=' — "="
//     is emitted now and the run re-queued behind the remaining text, so
//     "+=" after two pushes prints the top and then adds;
//  4. fallback: exactly one leading character ("d", "r", "#", a lone
//     operator, or anything unrecognised).
//
// Every iteration either consumes input or performs one rewrite whose operand
// is consumed on the next pass, so the loop terminates on any input.
func ProcessLine(line string, emit func(token string)) {
	rest := strings.TrimSpace(line)
	for rest != "" {
		if n := operandLen(rest); n > 0 {
			emit(rest[:n])
			rest = strings.TrimSpace(rest[n:])
			continue
		}
		if n := infixLen(rest); n > 0 {
			rest = rest[1:n] + rest[:1] + rest[n:]
			continue
		}
		if n := compoundLen(rest); n > 0 {
			emit("=")
			rest = strings.TrimSpace(rest[n:] + rest[:n-1])
			continue
		}
		emit(rest[:1])
		rest = strings.TrimSpace(rest[1:])
	}
}

// IsOperand reports whether s is exactly an operand: an optional leading '-'
// followed by one or more digits.
func IsOperand(s string) bool {
	n := operandLen(s)
	return n > 0 && n == len(s)
}

// operandLen returns the length of the operand prefix of s, or 0.
func operandLen(s string) int {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0
	}
	return i
}

// infixLen returns the length of the infix prefix (operator plus operand) of
// s, or 0.
func infixLen(s string) int {
	if len(s) < 2 || strings.IndexByte(infixOps, s[0]) < 0 {
		return 0
	}
	n := operandLen(s[1:])
	if n == 0 {
		return 0
	}
	return 1 + n
}

// compoundLen returns the length of the compound-assignment prefix of s
// including the trailing '=', or 0.
func compoundLen(s string) int {
	i := 0
	for i < len(s) && strings.IndexByte(compoundOps, s[i]) >= 0 {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '=' {
		return 0
	}
	return i + 1
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
