// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// An Observation is a weighted tree expression submitted to the aggregation
// methods of a Store. The weight is a signed 64-bit integer.
type Observation struct {
	Weight int64
	Tree   Tree
}

// WeightedSubtrees returns the Number assigning coefficient w to every
// subtree of every tree denoted by t. This is the single-observation
// accumulator; a stream of observations is folded with Add.
func (b *Store) WeightedSubtrees(w int64, t Tree) Number {
	return Negabinary(w, b.Subtrees(t))
}

// Add merges two accumulators, adding the signed counts of every subtree
// pointwise. Add is associative and commutative, and nil is its neutral
// element, so partial accumulators can be merged in any order with identical
// results.
func (b *Store) Add(x, y Number) Number {
	return b.NegabinaryAdd(x, y)
}

// Sub subtracts the counts of y from those of x pointwise. Subtracting an
// accumulator from itself yields nil.
func (b *Store) Sub(x, y Number) Number {
	return b.NegabinarySub(x, y)
}

// CountTrees returns the accumulated count of the single tree denoted by the
// query expression: the sum of the weights of the observations having that
// tree among their subtrees. The query must denote exactly one tree;
// otherwise CountTrees returns ErrEmptyQuery or ErrNotSingleton.
func (b *Store) CountTrees(query Tree, acc Number) (int64, error) {
	q := b.Trees(query)
	if q == Bot {
		return 0, ErrEmptyQuery
	}
	for n := q; n != Top; n = n.high {
		if n.low != Bot {
			return 0, ErrNotSingleton
		}
	}
	return b.NegabinaryCount(acc, q), nil
}

// SumSubtrees folds a sequence of observations into one accumulator.
func (b *Store) SumSubtrees(obs []Observation) Number {
	var acc Number
	for _, o := range obs {
		acc = b.NegabinaryAdd(acc, b.WeightedSubtrees(o.Weight, o.Tree))
	}
	return acc
}

// ParSumSubtrees folds a sequence of observations with jobs parallel workers,
// each accumulating a contiguous slice of the input, and merges the partial
// accumulators with Add. Since Add is associative and commutative, the result
// is identical to the one of SumSubtrees. A jobs value of zero or less picks
// the number of CPUs.
func (b *Store) ParSumSubtrees(jobs int, obs []Observation) Number {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(obs) {
		jobs = len(obs)
	}
	if jobs <= 1 {
		return b.SumSubtrees(obs)
	}
	parts := make([]Number, jobs)
	g := new(errgroup.Group)
	for k := 0; k < jobs; k++ {
		lo := k * len(obs) / jobs
		hi := (k + 1) * len(obs) / jobs
		part := &parts[k]
		g.Go(func() error {
			*part = b.SumSubtrees(obs[lo:hi])
			return nil
		})
	}
	_ = g.Wait()
	var acc Number
	for _, p := range parts {
		acc = b.NegabinaryAdd(acc, p)
	}
	return acc
}
