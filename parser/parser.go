// Package parser turns a postfix regex string into an ast.Node, using a
// single-pass stack machine over the postfix token stream.
//
// Token alphabet: any byte that is not one of the meta-symbols
// `@ | * ? .` is a literal (nullary CharGroup of one element); `@` and
// `|` are binary, `*` and `?` are unary, `.` is a nullary wildcard over
// the full alphabet.
package parser

import (
	"errors"
	"fmt"

	"github.com/kalinin-dev/retomat/ast"
)

// Alphabet is the fixed symbol set Σ this module's `.` wildcard expands
// to: the 62 alphanumeric characters 0-9, a-z, A-Z.
var Alphabet = func() []byte {
	var b []byte
	for c := byte('0'); c <= '9'; c++ {
		b = append(b, c)
	}
	for c := byte('a'); c <= 'z'; c++ {
		b = append(b, c)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		b = append(b, c)
	}
	return b
}()

// ErrMalformedRegex is the sentinel wrapped by MalformedRegexError.
var ErrMalformedRegex = errors.New("parser: malformed postfix regex")

const (
	opConcat    = '@'
	opUnion     = '|'
	opStar      = '*'
	opOptional  = '?'
	opWildcard  = '.'
)

// MalformedRegexError reports why a postfix string failed to parse:
// stack underflow on an operator, or trailing residue after the last
// token.
type MalformedRegexError struct {
	Pattern string
	Reason  string
}

func (e *MalformedRegexError) Error() string {
	return fmt.Sprintf("parser: malformed postfix regex %q: %s", e.Pattern, e.Reason)
}

func (e *MalformedRegexError) Unwrap() error { return ErrMalformedRegex }

// Parse converts a postfix regex string into an ast.Node.
//
// On success the returned AST is well-formed: every node's arity
// matches its kind. On failure, Parse returns a *MalformedRegexError
// and a nil Node; the caller is responsible for producing well-formed
// postfix input — infix-to-postfix conversion is not part of this
// grammar, see package infix for a CLI-side convenience that does it.
func Parse(postfix string) (*ast.Node, error) {
	stack := make([]*ast.Node, 0, len(postfix))

	pop := func() (*ast.Node, bool) {
		n := len(stack)
		if n == 0 {
			return nil, false
		}
		top := stack[n-1]
		stack = stack[:n-1]
		return top, true
	}

	for i := 0; i < len(postfix); i++ {
		tok := postfix[i]
		var node *ast.Node

		switch tok {
		case opConcat, opUnion:
			right, ok := pop()
			if !ok {
				return nil, underflow(postfix, tok)
			}
			left, ok := pop()
			if !ok {
				return nil, underflow(postfix, tok)
			}
			if tok == opConcat {
				node = ast.Concat(left, right)
			} else {
				node = ast.Union(left, right)
			}

		case opStar:
			child, ok := pop()
			if !ok {
				return nil, underflow(postfix, tok)
			}
			node = ast.Star(child)

		case opOptional:
			child, ok := pop()
			if !ok {
				return nil, underflow(postfix, tok)
			}
			node = ast.Union(ast.Empty(), child)

		case opWildcard:
			node = ast.CharGroup(Alphabet)

		default:
			node = ast.CharGroup([]byte{tok})
		}

		stack = append(stack, node)
	}

	if len(stack) == 0 {
		return nil, &MalformedRegexError{Pattern: postfix, Reason: "empty postfix expression"}
	}
	if len(stack) > 1 {
		return nil, &MalformedRegexError{
			Pattern: postfix,
			Reason:  fmt.Sprintf("%d residual operand(s) left on the stack after parsing", len(stack)-1),
		}
	}
	return stack[0], nil
}

func underflow(postfix string, tok byte) error {
	return &MalformedRegexError{
		Pattern: postfix,
		Reason:  fmt.Sprintf("stack underflow at operator %q", tok),
	}
}
