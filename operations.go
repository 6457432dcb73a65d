// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

import (
	"sort"
)

// Singleton returns the family containing exactly the set {x}. The variable x
// must not be one of the two reserved values.
func (b *Store) Singleton(x uint64) Node {
	return b.makenode(x, Bot, Top)
}

// SetOf returns the family containing exactly one set, made of all the
// variables in xs. Duplicates are ignored; SetOf() is Top.
func (b *Store) SetOf(xs ...uint64) Node {
	vs := make([]uint64, len(xs))
	copy(vs, xs)
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	res := Top
	for i := len(vs) - 1; i >= 0; i-- {
		if i < len(vs)-1 && vs[i] == vs[i+1] {
			continue
		}
		res = b.makenode(vs[i], Bot, res)
	}
	return res
}

// ************************************************************

// Union returns the family of sets belonging to at least one of its
// arguments. Union() is Bot.
func (b *Store) Union(n ...Node) Node {
	if len(n) == 0 {
		return Bot
	}
	if len(n) == 1 {
		return n[0]
	}
	return b.union2(n[0], b.Union(n[1:]...))
}

func (b *Store) union2(x, y Node) Node {
	if x == y || y == Bot {
		return x
	}
	if x == Bot {
		return y
	}
	if y.id < x.id {
		x, y = y, x
	}
	if res, ok := b.uni.match(x, y); ok {
		return res
	}
	var res Node
	switch {
	case x.v < y.v:
		res = b.makenode(x.v, b.union2(x.low, y), x.high)
	case x.v > y.v:
		res = b.makenode(y.v, b.union2(x, y.low), y.high)
	default:
		res = b.makenode(x.v, b.union2(x.low, y.low), b.union2(x.high, y.high))
	}
	return b.uni.set(x, y, res)
}

// Intersection returns the family of sets belonging to all of its arguments.
// At least one argument is required: the operation has no neutral element.
func (b *Store) Intersection(n ...Node) Node {
	if len(n) == 0 {
		panic("zcube: Intersection needs at least one operand")
	}
	if len(n) == 1 {
		return n[0]
	}
	return b.inter2(n[0], b.Intersection(n[1:]...))
}

func (b *Store) inter2(x, y Node) Node {
	if x == y {
		return x
	}
	if x == Bot || y == Bot {
		return Bot
	}
	if y.id < x.id {
		x, y = y, x
	}
	if res, ok := b.its.match(x, y); ok {
		return res
	}
	var res Node
	switch {
	case x.v < y.v:
		res = b.inter2(x.low, y)
	case x.v > y.v:
		res = b.inter2(x, y.low)
	default:
		res = b.makenode(x.v, b.inter2(x.low, y.low), b.inter2(x.high, y.high))
	}
	return b.its.set(x, y, res)
}

// Difference returns the family of sets belonging to x but not to y.
func (b *Store) Difference(x, y Node) Node {
	if x == y || x == Bot {
		return Bot
	}
	if y == Bot {
		return x
	}
	if res, ok := b.dif.match(x, y); ok {
		return res
	}
	var res Node
	switch {
	case x.v < y.v:
		res = b.makenode(x.v, b.Difference(x.low, y), x.high)
	case x.v > y.v:
		res = b.Difference(x, y.low)
	default:
		res = b.makenode(x.v, b.Difference(x.low, y.low), b.Difference(x.high, y.high))
	}
	return b.dif.set(x, y, res)
}

// symdiff is the symmetric difference of two families, the digit-level sum of
// the ZDD-number arithmetic.
func (b *Store) symdiff(x, y Node) Node {
	return b.Difference(b.union2(x, y), b.inter2(x, y))
}

// ************************************************************

// CrossUnion returns the family of the unions of every combination of one set
// per argument: {A, B} x {C, D} is {A∪C, A∪D, B∪C, B∪D}. CrossUnion() is Top,
// the neutral element of the operation.
func (b *Store) CrossUnion(n ...Node) Node {
	if len(n) == 0 {
		return Top
	}
	if len(n) == 1 {
		return n[0]
	}
	return b.crossunion2(n[0], b.CrossUnion(n[1:]...))
}

func (b *Store) crossunion2(x, y Node) Node {
	if x == Bot || y == Bot {
		return Bot
	}
	if x == Top {
		return y
	}
	if y == Top {
		return x
	}
	if y.id < x.id {
		x, y = y, x
	}
	if res, ok := b.cru.match(x, y); ok {
		return res
	}
	var res Node
	switch {
	case x.v < y.v:
		res = b.makenode(x.v, b.crossunion2(x.low, y), b.crossunion2(x.high, y))
	case x.v > y.v:
		res = b.makenode(y.v, b.crossunion2(x, y.low), b.crossunion2(x, y.high))
	default:
		low := b.crossunion2(x.low, y.low)
		high := b.union2(b.crossunion2(x.high, y.low),
			b.union2(b.crossunion2(x.low, y.high), b.crossunion2(x.high, y.high)))
		res = b.makenode(x.v, low, high)
	}
	return b.cru.set(x, y, res)
}

// CrossIntersection returns the family of the intersections of every
// combination of one set per argument: {A, B} x {C, D} is {A∩C, A∩D, B∩C,
// B∩D}. At least one argument is required: the operation has no neutral
// element.
func (b *Store) CrossIntersection(n ...Node) Node {
	if len(n) == 0 {
		panic("zcube: CrossIntersection needs at least one operand")
	}
	if len(n) == 1 {
		return n[0]
	}
	return b.crossinter2(n[0], b.CrossIntersection(n[1:]...))
}

func (b *Store) crossinter2(x, y Node) Node {
	if x == Bot || y == Bot {
		return Bot
	}
	if x == Top || y == Top {
		return Top
	}
	if y.id < x.id {
		x, y = y, x
	}
	if res, ok := b.cri.match(x, y); ok {
		return res
	}
	var res Node
	switch {
	case x.v < y.v:
		res = b.crossinter2(b.union2(x.low, x.high), y)
	case x.v > y.v:
		res = b.crossinter2(x, b.union2(y.low, y.high))
	default:
		low := b.union2(b.crossinter2(x.low, y.low),
			b.union2(b.crossinter2(x.low, y.high), b.crossinter2(x.high, y.low)))
		res = b.makenode(x.v, low, b.crossinter2(x.high, y.high))
	}
	return b.cri.set(x, y, res)
}

// CrossDifference returns the family of the differences of every pair of one
// set of x and one set of y: {A, B} x {C, D} is {A\C, A\D, B\C, B\D}.
func (b *Store) CrossDifference(x, y Node) Node {
	if x == Bot || y == Bot {
		return Bot
	}
	if y == Top {
		return x
	}
	if x == Top {
		return Top
	}
	if res, ok := b.crd.match(x, y); ok {
		return res
	}
	var res Node
	switch {
	case x.v < y.v:
		res = b.makenode(x.v, b.CrossDifference(x.low, y), b.CrossDifference(x.high, y))
	case x.v > y.v:
		res = b.CrossDifference(x, b.union2(y.low, y.high))
	default:
		low := b.union2(b.CrossDifference(x.low, y.low),
			b.union2(b.CrossDifference(x.low, y.high), b.CrossDifference(x.high, y.high)))
		res = b.makenode(x.v, low, b.CrossDifference(x.high, y.low))
	}
	return b.crd.set(x, y, res)
}

// ************************************************************

// Included reports whether every set of x also belongs to y.
func (b *Store) Included(x, y Node) bool {
	if x == Bot || x == y {
		return true
	}
	if y == Bot {
		return false
	}
	if res, ok := b.inc.match(x, y); ok {
		return res
	}
	var res bool
	switch {
	case x.v < y.v:
		// every set of the high branch of x contains a variable absent
		// from all the sets of y
		res = false
	case x.v > y.v:
		res = b.Included(x, y.low)
	default:
		res = b.Included(x.low, y.low) && b.Included(x.high, y.high)
	}
	return b.inc.set(x, y, res)
}
