// Package retomat compiles a postfix regular expression into a decision
// procedure via the classical pipeline: parse → Thompson NFA → subset
// construction → Brzozowski minimization.
//
// Grounded on coregx's regex.go (the Regex wrapper's Compile/MustCompile
// shape) and on meta/config.go + meta/strategy.go (a Config struct plus
// a Strategy chosen at compile time), scaled to this module's
// three-stage pipeline instead of coregx's multi-engine dispatch.
package retomat

import (
	"errors"
	"fmt"

	"github.com/kalinin-dev/retomat/ast"
	"github.com/kalinin-dev/retomat/dfa"
	"github.com/kalinin-dev/retomat/nfa"
	"github.com/kalinin-dev/retomat/parser"
)

// lifecycleState tracks a Matcher through its Uncompiled/Ready/Failed/
// Released lifecycle.
type lifecycleState uint8

const (
	lifecycleUncompiled lifecycleState = iota
	lifecycleReady
	lifecycleFailed
	lifecycleReleased
)

// Strategy selects how far through the pipeline Compile runs before it
// stops and starts answering Accept calls from that stage's
// representation. Grounded on meta/strategy.go's per-pattern strategy
// selection, scaled from coregx's many search strategies down to this
// module's three pipeline stages.
type Strategy uint8

const (
	// StrategyMinimalDFA runs the full pipeline (the default): best for
	// a matcher that will be reused across many Accept calls, since
	// minimization pays for itself after a handful of matches.
	StrategyMinimalDFA Strategy = iota

	// StrategyDFA stops after subset construction, skipping Brzozowski
	// minimization: cheaper to compile, more states to hold in memory.
	StrategyDFA

	// StrategyNFA stops after Thompson construction and simulates the
	// NFA directly on every Accept call: cheapest to compile, most
	// expensive per match — best for a pattern used only once or twice.
	StrategyNFA
)

// Config holds compile-time options, validated before use. Grounded on
// coregx meta.Config / dfa/lazy.Config's "small struct + Validate()"
// pattern.
type Config struct {
	// Alphabet is Σ, the fixed symbol set transitions are defined over.
	// Defaults to parser.Alphabet (the 62 alphanumeric characters) when
	// left nil.
	Alphabet []byte

	// Strategy selects how much of the pipeline Compile runs. Defaults
	// to StrategyMinimalDFA.
	Strategy Strategy
}

// DefaultConfig returns the configuration used by Compile/MustCompile.
func DefaultConfig() Config {
	return Config{Alphabet: parser.Alphabet, Strategy: StrategyMinimalDFA}
}

// Validate reports a non-nil error if the configuration cannot be used
// to compile a matcher.
func (c Config) Validate() error {
	if len(c.Alphabet) == 0 {
		return errors.New("retomat: Config.Alphabet must not be empty")
	}
	if c.Strategy > StrategyNFA {
		return fmt.Errorf("retomat: unknown Strategy %d", c.Strategy)
	}
	return nil
}

// ErrNotReady is returned by Accept when called on a Matcher that is
// not in the Ready state.
var ErrNotReady = errors.New("retomat: matcher is not ready")

// ErrReleased is returned by any operation on a Released Matcher.
var ErrReleased = errors.New("retomat: matcher has been released")

// Matcher is a compiled pattern: read-only after Compile succeeds, and
// therefore safe to share across goroutines for concurrent Accept
// calls — nothing Accept does mutates the Matcher.
type Matcher struct {
	state   lifecycleState
	config  Config
	nfa     *nfa.NFA
	dfa     *dfa.DFA
	failErr error
}

// New returns a Matcher in the Uncompiled state, ready for Compile.
func New() *Matcher {
	return &Matcher{state: lifecycleUncompiled}
}

// Compile parses postfix and runs it through the pipeline selected by
// cfg.Strategy. On success the Matcher transitions Uncompiled → Ready;
// on failure it transitions Uncompiled → Failed and the error is both
// returned and remembered (subsequent Accept calls report it via
// ErrNotReady-wrapping, never silently re-attempt compilation).
func (m *Matcher) Compile(postfix string, cfg Config) error {
	if m.state == lifecycleReleased {
		return ErrReleased
	}
	if cfg.Alphabet == nil {
		cfg.Alphabet = parser.Alphabet
	}
	if err := cfg.Validate(); err != nil {
		m.state = lifecycleFailed
		m.failErr = err
		return err
	}

	root, err := parser.Parse(postfix)
	if err != nil {
		m.state = lifecycleFailed
		m.failErr = err
		return err
	}

	n, err := nfa.Compile(root)
	if err != nil {
		m.state = lifecycleFailed
		m.failErr = err
		return err
	}

	m.config = cfg
	if cfg.Strategy == StrategyNFA {
		m.nfa = n
		m.state = lifecycleReady
		return nil
	}

	d, err := dfa.Determinize(n, cfg.Alphabet)
	if err != nil {
		m.state = lifecycleFailed
		m.failErr = err
		return err
	}
	if cfg.Strategy == StrategyDFA {
		m.dfa = d
		m.state = lifecycleReady
		return nil
	}

	minimal, err := dfa.Minimize(d)
	if err != nil {
		m.state = lifecycleFailed
		m.failErr = err
		return err
	}
	m.dfa = minimal
	m.state = lifecycleReady
	return nil
}

// Compile is a package-level convenience that builds a new Matcher with
// DefaultConfig(), mirroring coregx's top-level Compile(pattern).
func Compile(postfix string) (*Matcher, error) {
	m := New()
	if err := m.Compile(postfix, DefaultConfig()); err != nil {
		return nil, err
	}
	return m, nil
}

// MustCompile is like Compile but panics on failure, for patterns known
// to be valid at compile time (mirrors coregx's MustCompile).
func MustCompile(postfix string) *Matcher {
	m, err := Compile(postfix)
	if err != nil {
		panic("retomat: Compile(" + postfix + "): " + err.Error())
	}
	return m
}

// Accept decides whether w belongs to the compiled pattern's language.
// Accept mutates no internal state: a single compiled Matcher can be
// shared across goroutines without locking.
func (m *Matcher) Accept(w string) (bool, error) {
	switch m.state {
	case lifecycleReady:
		if m.dfa != nil {
			return m.dfa.Accept(w), nil
		}
		return m.nfa.Accept(w), nil
	case lifecycleFailed:
		return false, fmt.Errorf("%w: %v", ErrNotReady, m.failErr)
	case lifecycleReleased:
		return false, ErrReleased
	default:
		return false, ErrNotReady
	}
}

// Release transitions a Ready or Failed Matcher to Released, dropping
// its compiled automata. Subsequent Compile/Accept calls return
// ErrReleased. Release is idempotent.
func (m *Matcher) Release() {
	m.nfa = nil
	m.dfa = nil
	m.state = lifecycleReleased
}

// AST is re-exported for callers that want to inspect a pattern's parse
// tree without going through the full pipeline (used by cmd/mygrep to
// hand the tree to package literal).
func AST(postfix string) (*ast.Node, error) {
	return parser.Parse(postfix)
}
