// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package zcube implements multi-dimensional aggregate counts over sets of
labeled trees, using Zero-suppressed Binary Decision Diagrams (ZDD) as the
underlying representation.

Basics

An observation is a weighted set of labeled, unordered, rooted trees, built
with a small algebra of tree expressions: Path("a", "b") is the linear tree
a/b; Cross merges several trees into one by (unordered) tree union; Sum
denotes a set of alternative trees. Feeding a stream of weighted observations
to a Store accumulates, for every subtree of every observation, the sum of
the weights of the observations containing it. The accumulator answers
queries such as "how many events had URL www.company.com/page1 and gender
female", for any combination of hierarchical dimensions, without ever
materializing the full cube.

Trees are named by sets of 64-bit variables. Each node of a tree is
identified by the hash of its labeled path from the root (see Intern), so
that equal trees always map to equal variable sets, and shared prefixes share
variables. Sets of such sets are stored in a hash-consed ZDD: two
semantically equal families are always represented by the same Node, and
equality is pointer equality.

Weighted counts are encoded as ZDD-numbers (type Number): little-endian
vectors of ZDD digits read in binary (nonnegative counts) or negabinary
(base -2, signed counts). Addition and subtraction of accumulators are
digit-wise set operations. Addition is associative and commutative, so large
streams can be folded in parallel and merged in any order (see
ParSumSubtrees) with bit-identical results.

Memory management

Nodes are hash-consed in a Store and live as long as the Store itself: a
Node handle obtained from any operation remains valid for the lifetime of
its Store, and all memoization caches key on handle identity. There is no
garbage collection and no reference counting; dropping the Store releases
everything at once. All operations on a Store are safe for concurrent use.
*/
package zcube
