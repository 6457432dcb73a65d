// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ************************************************************
// caches for the results of union, intersection, etc. There is one cache per
// operation so that entries never need to be tagged with an operator.

// pair is the key of an operation cache. Commutative operations normalize the
// order of their operands before lookup, which doubles their hit rate.
type pair struct {
	a uint64
	b uint64
}

type cacheshard struct {
	mu sync.RWMutex
	m  map[pair]Node
}

// opcache is a memoization table from pairs of node id's to a result node.
// Entries are never invalidated: a node reachable from the store stays valid,
// so a cached result is always safe to return. Racing inserts of the same
// pair are idempotent because results are canonical.
type opcache struct {
	name   string
	shards [_NSHARDS]cacheshard
	hit    atomic.Uint64
	miss   atomic.Uint64
}

func newopcache(name string, size int) *opcache {
	c := &opcache{name: name}
	for k := range c.shards {
		c.shards[k].m = make(map[pair]Node, size/_NSHARDS+1)
	}
	return c
}

func (c *opcache) match(x, y Node) (Node, bool) {
	k := pair{x.id, y.id}
	s := &c.shards[(k.a*_MIXL^k.b*_MIXH)&(_NSHARDS-1)]
	s.mu.RLock()
	res, ok := s.m[k]
	s.mu.RUnlock()
	if _DEBUG {
		if ok {
			c.hit.Add(1)
		} else {
			c.miss.Add(1)
		}
	}
	return res, ok
}

func (c *opcache) set(x, y, res Node) Node {
	k := pair{x.id, y.id}
	s := &c.shards[(k.a*_MIXL^k.b*_MIXH)&(_NSHARDS-1)]
	s.mu.Lock()
	s.m[k] = res
	s.mu.Unlock()
	return res
}

func (c *opcache) len() int {
	res := 0
	for k := range c.shards {
		s := &c.shards[k]
		s.mu.RLock()
		res += len(s.m)
		s.mu.RUnlock()
	}
	return res
}

func (c *opcache) String() string {
	if _DEBUG {
		return fmt.Sprintf("%-12s%d entries (hit %d, miss %d)", c.name+":", c.len(), c.hit.Load(), c.miss.Load())
	}
	return fmt.Sprintf("%-12s%d entries", c.name+":", c.len())
}

// ************************************************************

// inccache memoizes the set-inclusion predicate, whose result is a boolean
// instead of a node.
type inccache struct {
	shards [_NSHARDS]struct {
		mu sync.RWMutex
		m  map[pair]bool
	}
}

func newinccache(size int) *inccache {
	c := &inccache{}
	for k := range c.shards {
		c.shards[k].m = make(map[pair]bool, size/_NSHARDS+1)
	}
	return c
}

func (c *inccache) match(x, y Node) (bool, bool) {
	k := pair{x.id, y.id}
	s := &c.shards[(k.a*_MIXL^k.b*_MIXH)&(_NSHARDS-1)]
	s.mu.RLock()
	res, ok := s.m[k]
	s.mu.RUnlock()
	return res, ok
}

func (c *inccache) set(x, y Node, res bool) bool {
	k := pair{x.id, y.id}
	s := &c.shards[(k.a*_MIXL^k.b*_MIXH)&(_NSHARDS-1)]
	s.mu.Lock()
	s.m[k] = res
	s.mu.Unlock()
	return res
}
