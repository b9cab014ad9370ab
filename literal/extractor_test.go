package literal

import (
	"testing"

	"github.com/kalinin-dev/retomat/parser"
)

func TestExtractLiteralPlainWord(t *testing.T) {
	n, err := parser.Parse("ab@c@")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	word, ok := ExtractLiteral(n)
	if !ok {
		t.Fatal("expected a literal for a plain concatenation of letters")
	}
	if string(word) != "abc" {
		t.Fatalf("got %q, want %q", word, "abc")
	}
}

func TestExtractLiteralRejectsUnion(t *testing.T) {
	n, err := parser.Parse("ab|")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := ExtractLiteral(n); ok {
		t.Fatal("a Union must not be treated as a literal")
	}
}

func TestExtractLiteralRejectsStar(t *testing.T) {
	n, err := parser.Parse("a*")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := ExtractLiteral(n); ok {
		t.Fatal("a Star must not be treated as a literal")
	}
}

func TestExtractLiteralSingleChar(t *testing.T) {
	n, err := parser.Parse("a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	word, ok := ExtractLiteral(n)
	if !ok || string(word) != "a" {
		t.Fatalf("got (%q, %v), want (\"a\", true)", word, ok)
	}
}
