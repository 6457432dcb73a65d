// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

import (
	"fmt"
	"strings"
)

// A Tree is a symbolic expression denoting a finite set of labeled,
// unordered, rooted trees. Expressions are built with the constructors
// TopTree (the set containing only the empty tree), BotTree (the empty set of
// trees), Path, Prefix, Cross and Sum, and compiled against a Store with the
// Trees and Subtrees methods.
//
// The algebra is canonical up to its laws: Cross is associative, commutative
// and has TopTree as neutral element; Sum is associative, commutative and has
// BotTree as neutral element; Cross distributes over Sum; Prefix distributes
// over both. Two expressions equal under these laws always compile to the
// same Node.
type Tree interface {
	fmt.Stringer
	trees(b *Store, parent uint64, memo map[treekey]Node) Node
	subtrees(b *Store, parent uint64, memo map[treekey]Node) Node
}

// treekey memoizes compilation by expression identity and parent variable
// within one call to Trees or Subtrees.
type treekey struct {
	t  Tree
	vp uint64
}

type treetop struct{}

type treebot struct{}

type treeprefix struct {
	label string
	child Tree
}

type treecross struct {
	ts []Tree
}

type treesum struct {
	ts []Tree
}

// TopTree denotes the set containing only the empty tree. It is the neutral
// element of Cross.
var TopTree Tree = treetop{}

// BotTree denotes the empty set of trees. It is the neutral element of Sum.
var BotTree Tree = treebot{}

// Prefix returns the expression denoting the trees of t with an extra root
// edge labeled label grafted on top.
func Prefix(label string, t Tree) Tree {
	return &treeprefix{label: label, child: t}
}

// Path returns the expression denoting the single linear tree spelling the
// sequence of labels. Path() is TopTree.
func Path(labels ...string) Tree {
	res := TopTree
	for i := len(labels) - 1; i >= 0; i-- {
		res = &treeprefix{label: labels[i], child: res}
	}
	return res
}

// Cross returns the expression denoting, for every combination of one tree
// per argument, their unordered union (trees merged at the root, with equal
// labeled paths coalesced). Cross() is TopTree.
func Cross(ts ...Tree) Tree {
	if len(ts) == 1 {
		return ts[0]
	}
	return &treecross{ts: ts}
}

// Sum returns the expression denoting the set union of its arguments: a tree
// belongs to Sum(ts...) when it belongs to at least one of the ts. Sum() is
// BotTree.
func Sum(ts ...Tree) Tree {
	if len(ts) == 1 {
		return ts[0]
	}
	return &treesum{ts: ts}
}

// ************************************************************

// Trees compiles a tree expression into the family of the variable sets
// naming the trees it denotes. Each node of each tree is named by the Intern
// hash of its labeled path from the root, so equal trees always compile to
// equal sets, and the result is independent of the construction order.
func (b *Store) Trees(t Tree) Node {
	return t.trees(b, 0, make(map[treekey]Node))
}

// Subtrees compiles a tree expression into the family of the variable sets
// naming every subtree of every tree it denotes. A subtree is obtained by
// pruning any set of branches, so the family always contains the empty set,
// and contains the sets of Trees itself.
func (b *Store) Subtrees(t Tree) Node {
	return t.subtrees(b, 0, make(map[treekey]Node))
}

// ************************************************************

func (t treetop) trees(b *Store, parent uint64, memo map[treekey]Node) Node {
	return Top
}

func (t treetop) subtrees(b *Store, parent uint64, memo map[treekey]Node) Node {
	return Top
}

func (t treetop) String() string {
	return "top"
}

func (t treebot) trees(b *Store, parent uint64, memo map[treekey]Node) Node {
	return Bot
}

// the empty tree is a subtree of every tree, including of an empty set of
// trees
func (t treebot) subtrees(b *Store, parent uint64, memo map[treekey]Node) Node {
	return Top
}

func (t treebot) String() string {
	return "bot"
}

func (t *treeprefix) trees(b *Store, parent uint64, memo map[treekey]Node) Node {
	k := treekey{t, parent}
	if res, ok := memo[k]; ok {
		return res
	}
	v := Intern(parent, t.label)
	inner := t.child.trees(b, v, memo)
	// extend every set of inner with v; variables are hashes, so v has no
	// fixed rank relative to the variables of inner and the extension goes
	// through a cross product with the singleton {v}
	res := b.crossunion2(b.Singleton(v), inner)
	memo[k] = res
	return res
}

func (t *treeprefix) subtrees(b *Store, parent uint64, memo map[treekey]Node) Node {
	k := treekey{t, parent}
	if res, ok := memo[k]; ok {
		return res
	}
	v := Intern(parent, t.label)
	inner := t.child.subtrees(b, v, memo)
	res := b.union2(Top, b.crossunion2(b.Singleton(v), inner))
	memo[k] = res
	return res
}

func (t *treeprefix) String() string {
	if p, ok := t.child.(*treeprefix); ok {
		return t.label + "/" + p.String()
	}
	if t.child == TopTree {
		return t.label
	}
	return t.label + "/(" + t.child.String() + ")"
}

func (t *treecross) trees(b *Store, parent uint64, memo map[treekey]Node) Node {
	k := treekey{t, parent}
	if res, ok := memo[k]; ok {
		return res
	}
	res := Top
	for _, c := range t.ts {
		res = b.crossunion2(res, c.trees(b, parent, memo))
	}
	memo[k] = res
	return res
}

func (t *treecross) subtrees(b *Store, parent uint64, memo map[treekey]Node) Node {
	k := treekey{t, parent}
	if res, ok := memo[k]; ok {
		return res
	}
	res := Top
	for _, c := range t.ts {
		res = b.crossunion2(res, c.subtrees(b, parent, memo))
	}
	memo[k] = res
	return res
}

func (t *treecross) String() string {
	return "cross(" + treelist(t.ts) + ")"
}

func (t *treesum) trees(b *Store, parent uint64, memo map[treekey]Node) Node {
	k := treekey{t, parent}
	if res, ok := memo[k]; ok {
		return res
	}
	res := Bot
	for _, c := range t.ts {
		res = b.union2(res, c.trees(b, parent, memo))
	}
	memo[k] = res
	return res
}

func (t *treesum) subtrees(b *Store, parent uint64, memo map[treekey]Node) Node {
	k := treekey{t, parent}
	if res, ok := memo[k]; ok {
		return res
	}
	res := Top
	for _, c := range t.ts {
		res = b.union2(res, c.subtrees(b, parent, memo))
	}
	memo[k] = res
	return res
}

func (t *treesum) String() string {
	return "sum(" + treelist(t.ts) + ")"
}

func treelist(ts []Tree) string {
	strs := make([]string, len(ts))
	for i, t := range ts {
		strs[i] = t.String()
	}
	return strings.Join(strs, ", ")
}
