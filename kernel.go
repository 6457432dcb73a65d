// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

import (
	"fmt"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// _NSHARDS is the number of shards used for the unique table and the
// operation caches. It must be a power of two.
const _NSHARDS = 64

// Multipliers used to spread triplets and pairs of node id's over the shards.
const (
	_MIXV uint64 = 0x9e3779b97f4a7c15
	_MIXL uint64 = 0xc2b2ae3d27d4eb4f
	_MIXH uint64 = 0x165667b19e3779f9
)

// triple is the key of the unique table. Children are identified by their
// id's, which are stable for the lifetime of the store.
type triple struct {
	v    uint64
	low  uint64
	high uint64
}

type tableshard struct {
	mu sync.Mutex
	m  map[triple]Node
}

// Store is a context for computations over ZDD. It owns the unique table, in
// which internal nodes are hash-consed, and one memoization cache per
// operation, shared from end to end of every computation made through it.
// Nodes created in a Store stay valid for the lifetime of the Store. All
// methods are safe for concurrent use; two goroutines racing to create the
// same triplet obtain the same handle.
type Store struct {
	shards [_NSHARDS]tableshard
	nextid atomic.Uint64 // id generator; 0 and 1 are the terminals

	uni *opcache // Cache for union results
	its *opcache // Cache for intersection results
	dif *opcache // Cache for difference results
	cru *opcache // Cache for cross-union results
	cri *opcache // Cache for cross-intersection results
	crd *opcache // Cache for cross-difference results
	inc *inccache

	configs // Configurable parameters
}

// New initializes a new Store. Options can be set with the configuration
// functions Tablesize and Cachesize.
func New(options ...func(*configs)) *Store {
	b := &Store{}
	b.configs = makeconfigs()
	for _, f := range options {
		f(&b.configs)
	}
	for k := range b.shards {
		b.shards[k].m = make(map[triple]Node, b.tablesize/_NSHARDS+1)
	}
	b.nextid.Store(2)
	b.uni = newopcache("union", b.cachesize)
	b.its = newopcache("inter", b.cachesize)
	b.dif = newopcache("diff", b.cachesize)
	b.cru = newopcache("crossunion", b.cachesize)
	b.cri = newopcache("crossinter", b.cachesize)
	b.crd = newopcache("crossdiff", b.cachesize)
	b.inc = newinccache(b.cachesize)
	if _LOGLEVEL > 0 {
		log.Debugf("new store, %d shards, table size %d, cache size %d\n", _NSHARDS, b.tablesize, b.cachesize)
	}
	return b
}

// ************************************************************

func shardof(k triple) uint64 {
	return (k.v*_MIXV ^ k.low*_MIXL ^ k.high*_MIXH) & (_NSHARDS - 1)
}

// makenode is the canonical constructor. It applies the zero-suppression rule
// (a node whose high branch is Bot denotes the same family as its low branch)
// and otherwise returns the unique node for the triplet (v, low, high).
// Callers must pass a variable strictly smaller than the topmost variables of
// both children; anything else is a programming error and panics.
func (b *Store) makenode(v uint64, low, high Node) Node {
	if high == Bot {
		return low
	}
	if v == 0 || v >= _TERMVAR {
		panic(fmt.Sprintf("zcube: invalid variable %#x in makenode", v))
	}
	if v >= low.v || v >= high.v {
		panic(fmt.Sprintf("zcube: broken variable order in makenode (%#x, %#x, %#x)", v, low.v, high.v))
	}
	k := triple{v, low.id, high.id}
	s := &b.shards[shardof(k)]
	s.mu.Lock()
	if n, ok := s.m[k]; ok {
		s.mu.Unlock()
		return n
	}
	n := Node(&znode{id: b.nextid.Add(1) - 1, v: v, low: low, high: high})
	s.m[k] = n
	s.mu.Unlock()
	return n
}

// ************************************************************

// Size returns the number of internal nodes hash-consed in the store so far.
func (b *Store) Size() int {
	res := 0
	for k := range b.shards {
		s := &b.shards[k]
		s.mu.Lock()
		res += len(s.m)
		s.mu.Unlock()
	}
	return res
}

// Allnodes applies function f over all the internal nodes of the store. The
// parameters to f are the id, topmost variable, and the low and high
// successors of each node. The two terminals are not reported. The order in
// which nodes are visited is not specified. We stop the computation and
// return an error if f returns an error at some point.
//
// New nodes created while the walk is in progress may or may not be visited;
// nodes existing before the call always are.
func (b *Store) Allnodes(f func(id, v uint64, low, high Node) error) error {
	for k := range b.shards {
		s := &b.shards[k]
		s.mu.Lock()
		nodes := make([]Node, 0, len(s.m))
		for _, n := range s.m {
			nodes = append(nodes, n)
		}
		s.mu.Unlock()
		for _, n := range nodes {
			if err := f(n.id, n.v, n.low, n.high); err != nil {
				return err
			}
		}
	}
	return nil
}
