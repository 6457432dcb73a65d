// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

// _TERMVAR is the variable of the two terminal nodes. It is strictly greater
// than every variable returned by Intern, so that recursions that split on the
// topmost variable treat terminals uniformly, like in the BuDDy convention of
// keeping constants at the deepest level.
const _TERMVAR uint64 = 1<<64 - 1

// znode is a vertex of a ZDD. The low branch collects the sets without the
// variable, the high branch the sets with it. The id is assigned at insertion
// time and is used as a key in the operation caches.
type znode struct {
	id   uint64
	v    uint64
	low  Node
	high Node
}

// Node is a reference to an element of a ZDD. It represents the atomic unit of
// interactions and computations over a Store. Nodes are hash-consed: two
// operations returning equal families of sets return the very same handle, so
// comparing nodes with == decides semantic equality in constant time.
type Node *znode

// ************************************************************

// Bot is the empty family of sets. It is shared by all stores.
var Bot Node = &znode{id: 0, v: _TERMVAR}

// Top is the family containing only the empty set. It is shared by all stores.
var Top Node = &znode{id: 1, v: _TERMVAR}

// ************************************************************

// Var returns the topmost variable of node n. The result is not meaningful on
// the two terminals Bot and Top.
func Var(n Node) uint64 {
	return n.v
}

// Low returns the branch of n collecting the sets that do not contain its
// topmost variable, or nil when n is a terminal.
func Low(n Node) Node {
	if n == Bot || n == Top {
		return nil
	}
	return n.low
}

// High returns the branch of n collecting the sets that contain its topmost
// variable (with the variable removed), or nil when n is a terminal.
func High(n Node) Node {
	if n == Bot || n == Top {
		return nil
	}
	return n.high
}

// Equal tests equivalence between nodes. Because nodes are hash-consed this is
// the same as comparing handles with ==; the function is kept for symmetry
// with Included.
func Equal(x, y Node) bool {
	return x == y
}
