// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gentree returns a random tree expression of bounded depth over a small
// label alphabet.
func gentree(r *rand.Rand, depth int) Tree {
	labels := []string{"a", "b", "c", "d"}
	if depth == 0 {
		switch r.Intn(3) {
		case 0:
			return TopTree
		case 1:
			return BotTree
		default:
			return Path(labels[r.Intn(len(labels))])
		}
	}
	switch r.Intn(4) {
	case 0:
		return Path(labels[r.Intn(len(labels))], labels[r.Intn(len(labels))])
	case 1:
		return Prefix(labels[r.Intn(len(labels))], gentree(r, depth-1))
	case 2:
		return Cross(gentree(r, depth-1), gentree(r, depth-1))
	default:
		return Sum(gentree(r, depth-1), gentree(r, depth-1))
	}
}

// TestTreeCanonicity compares tree expressions by compiling them; handle
// identity decides algebraic equality.
func TestTreeCanonicity(t *testing.T) {
	b := New()
	r := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		a := gentree(r, 2)
		c := gentree(r, 2)
		d := gentree(r, 2)

		for name, pair := range map[string][2]Tree{
			"cross neutral":     {Cross(a, TopTree), a},
			"cross commutative": {Cross(a, c), Cross(c, a)},
			"cross associative": {Cross(a, Cross(c, d)), Cross(Cross(a, c), d)},
			"sum neutral":       {Sum(a, BotTree), a},
			"sum commutative":   {Sum(a, c), Sum(c, a)},
			"sum associative":   {Sum(a, Sum(c, d)), Sum(Sum(a, c), d)},
			"distributivity":    {Cross(Sum(a, c), d), Sum(Cross(a, d), Cross(c, d))},
			"prefix over cross": {Prefix("p", Cross(a, c)), Cross(Prefix("p", a), Prefix("p", c))},
			"prefix over sum":   {Prefix("p", Sum(a, c)), Sum(Prefix("p", a), Prefix("p", c))},
		} {
			assert.Same(t, b.Trees(pair[0]), b.Trees(pair[1]), "trees: %s", name)
			assert.Same(t, b.Subtrees(pair[0]), b.Subtrees(pair[1]), "subtrees: %s", name)
		}
	}
	require.NoError(t, b.Health())
}

func TestTreeConstants(t *testing.T) {
	b := New()
	assert.Same(t, Top, b.Trees(TopTree))
	assert.Same(t, Top, b.Subtrees(TopTree))
	assert.Same(t, Bot, b.Trees(BotTree))
	assert.Same(t, Top, b.Subtrees(BotTree), "the empty tree is a subtree of an empty forest")
	assert.Same(t, Top, b.Trees(Cross()))
	assert.Same(t, Bot, b.Trees(Sum()))
	assert.Same(t, Bot, b.Trees(Cross(Path("a"), BotTree)), "bot absorbs cross")
}

func TestPathCompilation(t *testing.T) {
	b := New()
	va := Intern(0, "a")
	vab := Intern(va, "b")

	assert.Same(t, b.SetOf(va, vab), b.Trees(Path("a", "b")))
	assert.Same(t,
		b.Union(Top, b.SetOf(va), b.SetOf(va, vab)),
		b.Subtrees(Path("a", "b")))
	assert.Same(t, b.Trees(Path("a", "b")), b.Trees(Prefix("a", Path("b"))), "Path desugars to Prefix")
}

func TestCrossCompilation(t *testing.T) {
	b := New()
	va := Intern(0, "a")
	vab := Intern(va, "b")
	vac := Intern(va, "c")

	tree := Cross(Path("a", "b"), Path("a", "c"))
	assert.Same(t, b.SetOf(va, vab, vac), b.Trees(tree), "shared prefixes share variables")

	// the subtrees of a/{b,c} are the empty tree, a, a/b, a/c and a/{b,c}
	assert.Same(t, b.Union(
		Top,
		b.SetOf(va),
		b.SetOf(va, vab),
		b.SetOf(va, vac),
		b.SetOf(va, vab, vac),
	), b.Subtrees(tree))
}

func TestSumCompilation(t *testing.T) {
	b := New()
	va := Intern(0, "a")
	vb := Intern(0, "b")

	tree := Sum(Path("a"), Path("b"))
	assert.Same(t, b.Union(b.SetOf(va), b.SetOf(vb)), b.Trees(tree))
	assert.Same(t, b.Union(Top, b.SetOf(va), b.SetOf(vb)), b.Subtrees(tree))
}

// TestSharedSubexpression checks that one expression used under two different
// parents compiles to two distinct families, each naming its nodes from its
// own parent variable.
func TestSharedSubexpression(t *testing.T) {
	b := New()
	shared := Path("x", "y")
	t1 := Prefix("p", shared)
	t2 := Prefix("q", shared)

	vp := Intern(0, "p")
	vq := Intern(0, "q")
	vpx := Intern(vp, "x")
	vqx := Intern(vq, "x")

	assert.Same(t, b.SetOf(vp, vpx, Intern(vpx, "y")), b.Trees(t1))
	assert.Same(t, b.SetOf(vq, vqx, Intern(vqx, "y")), b.Trees(t2))
	assert.NotSame(t, b.Trees(t1), b.Trees(t2))
}

func TestTreeString(t *testing.T) {
	assert.Equal(t, "a/b", Path("a", "b").String())
	assert.Equal(t, "top", TopTree.String())
	assert.Equal(t, "bot", BotTree.String())
	assert.Equal(t, "cross(a/b, c)", Cross(Path("a", "b"), Path("c")).String())
	assert.Equal(t, "sum(a, bot)", Sum(Path("a"), BotTree).String())
	assert.Equal(t, fmt.Sprintf("p/(%s)", "cross(a, b)"), Prefix("p", Cross(Path("a"), Path("b"))).String())
}
