// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

import (
	"fmt"
)

// _DEBUG unlocks hit/miss accounting in the operation caches. The counters
// are reported by Stats.
const _DEBUG bool = false

// _LOGLEVEL controls logging of store lifecycle events (0 is quiet).
const _LOGLEVEL int = 0

// ************************************************************

// Health checks the structural invariants over all the live nodes of the
// store: zero-suppression (no high branch equal to Bot), strict variable
// ordering along both branches, and validity of the reserved variable values.
// It returns nil when the store is sound. The check walks the whole unique
// table, so it is meant for tests and debugging sessions rather than for
// production paths.
func (b *Store) Health() error {
	return b.Allnodes(func(id, v uint64, low, high Node) error {
		if high == Bot {
			return fmt.Errorf("node %d with variable %#x has a Bot high branch", id, v)
		}
		if v == 0 || v == _TERMVAR {
			return fmt.Errorf("node %d uses reserved variable %#x", id, v)
		}
		if v >= low.v || v >= high.v {
			return fmt.Errorf("node %d breaks variable order (%#x, low %#x, high %#x)", id, v, low.v, high.v)
		}
		return nil
	})
}
