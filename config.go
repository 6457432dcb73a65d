// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

// _DEFAULTTABLESIZE is the default initial capacity of the unique table.
const _DEFAULTTABLESIZE int = 1 << 16

// _DEFAULTCACHESIZE is the default initial capacity of each operation cache.
const _DEFAULTCACHESIZE int = 1 << 14

// configs is used to store the values of different parameters of a Store.
type configs struct {
	tablesize int // initial capacity of the unique table
	cachesize int // initial capacity of each operation cache
}

func makeconfigs() configs {
	return configs{
		tablesize: _DEFAULTTABLESIZE,
		cachesize: _DEFAULTCACHESIZE,
	}
}

// Tablesize is a configuration option (function). Used as a parameter in New
// it sets a preferred initial capacity for the unique node table. The table
// grows as needed during computation; a good initial value only avoids
// rehashing on large workloads.
func Tablesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.tablesize = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New
// it sets the initial capacity of the operation caches. Caches are unbounded
// and never invalidated; the value only sizes the initial allocation.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}
