package nfa

import (
	"github.com/kalinin-dev/retomat/ast"
	"github.com/kalinin-dev/retomat/internal/sparse"
)

// fragment is an in-progress NFA fragment: the set of states an AST
// subtree's translation designates as initial/final. Unlike the
// classic patch-list formulation (e.g. matcher.go's frag in
// the EnnnOK-matcher pack example), Concat/Star wire their ε-edges
// immediately into the shared Builder instead of deferring them through
// dangling out-pointers — every state here already belongs to the one
// arena the whole compilation shares, so there is nothing to patch
// later.
type fragment struct {
	init, final *sparse.Set
}

// Compile builds the Thompson NFA for root, following Thompson's
// classic five construction cases exactly. It is the only exported
// entry point of this file; AST ownership is not a concern here (Go's
// GC reclaims the tree once Compile returns, so this module has no
// equivalent of the original C implementation's manual shallow/deep
// free distinction).
func Compile(root *ast.Node) (*NFA, error) {
	leaves := countLeaves(root)
	if leaves == 0 {
		capacityError("Compile: AST has no leaves")
	}
	b := NewBuilder(uint32(2 * leaves))

	f, err := compile(b, root)
	if err != nil {
		return nil, err
	}
	return b.Build(f.init, f.final), nil
}

// countLeaves counts the CharGroup/Empty leaves of the AST: exactly the
// number of states Compile needs to pre-size its Builder for (two
// states per leaf, zero for internal Concat/Union/Star nodes).
func countLeaves(n *ast.Node) int {
	switch n.Kind() {
	case ast.KindCharGroup, ast.KindEmpty:
		return 1
	case ast.KindStar:
		return countLeaves(n.Child())
	case ast.KindConcat, ast.KindUnion:
		return countLeaves(n.Left()) + countLeaves(n.Right())
	default:
		invalidOperation("countLeaves: unknown AST kind")
		return 0
	}
}

func compile(b *Builder, n *ast.Node) (fragment, error) {
	switch n.Kind() {
	case ast.KindEmpty:
		// The language {ε}: a two-state fragment joined by one
		// ε-edge. This is how `X?` is represented — as
		// Union(EmptyWord, X) — rather than storing a raw epsilon
		// byte as an AST child.
		i, f := b.AddState(), b.AddState()
		b.AddEpsilon(i, f)
		return fragment{b.singleton(i), b.singleton(f)}, nil

	case ast.KindCharGroup:
		i, f := b.AddState(), b.AddState()
		for _, c := range n.Chars() {
			b.AddCharTransition(i, c, f)
		}
		return fragment{b.singleton(i), b.singleton(f)}, nil

	case ast.KindUnion:
		left, err := compile(b, n.Left())
		if err != nil {
			return fragment{}, err
		}
		right, err := compile(b, n.Right())
		if err != nil {
			return fragment{}, err
		}
		return fragment{
			init:  b.union(left.init, right.init),
			final: b.union(left.final, right.final),
		}, nil

	case ast.KindConcat:
		left, err := compile(b, n.Left())
		if err != nil {
			return fragment{}, err
		}
		right, err := compile(b, n.Right())
		if err != nil {
			return fragment{}, err
		}
		// For every q in F_L and every s in I_R, add q --ε--> s.
		left.final.Iter(func(q uint32) {
			right.init.Iter(func(s uint32) {
				b.AddEpsilon(StateID(q), StateID(s))
			})
		})
		return fragment{init: left.init, final: right.final}, nil

	case ast.KindStar:
		child, err := compile(b, n.Child())
		if err != nil {
			return fragment{}, err
		}
		child.final.Iter(func(qf uint32) {
			child.init.Iter(func(qi uint32) {
				b.AddEpsilon(StateID(qi), StateID(qf)) // accept empty
				b.AddEpsilon(StateID(qf), StateID(qi)) // repeat
			})
		})
		return fragment{init: child.init, final: child.final}, nil

	default:
		return fragment{}, &CompileError{Kind: n.Kind().String(), Err: ErrInvalidOperation}
	}
}
