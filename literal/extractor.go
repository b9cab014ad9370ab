// Package literal extracts a fixed literal word from an AST when the
// pattern denotes nothing but that one word, so callers can skip
// automaton construction entirely for plain-text patterns.
//
// Grounded on coregx's literal/extractor.go and literal/seq.go, which
// walk a parsed pattern to pull out literal prefixes/sequences driving
// prefilter selection; scaled down here to "is the whole pattern one
// literal word", since this module's AST carries no repetition bounds
// or quantifier metadata to extract a partial prefix from usefully.
package literal

import "github.com/kalinin-dev/retomat/ast"

// ExtractLiteral returns the fixed word n denotes and true, if and only
// if n is a Concat spine of singleton CharGroup leaves (no Union, no
// Star, no multi-symbol CharGroup, no Empty). Any other shape returns
// (nil, false).
func ExtractLiteral(n *ast.Node) ([]byte, bool) {
	var word []byte
	if !collect(n, &word) {
		return nil, false
	}
	return word, true
}

func collect(n *ast.Node, word *[]byte) bool {
	switch n.Kind() {
	case ast.KindCharGroup:
		if len(n.Chars()) != 1 {
			return false
		}
		*word = append(*word, n.Chars()[0])
		return true
	case ast.KindConcat:
		return collect(n.Left(), word) && collect(n.Right(), word)
	default:
		return false
	}
}
