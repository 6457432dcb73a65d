// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// _VARSUBST replaces the two hash values that are reserved: 0 (never a valid
// variable) and the terminal sentinel.
const _VARSUBST uint64 = 0x2545f4914f6cdd1d

// Intern maps a label under a parent variable to a 64-bit variable. The
// parent of a root label is 0. The function is pure: it hashes the pair
// (parent, label), so that a position reached by the same labeled path from
// the root always receives the same variable, whatever the order in which
// trees are built, and positions reached by different paths receive distinct
// variables up to hash collisions (negligible at 64 bits). Labels are opaque
// byte sequences; UTF-8 strings are the expected use.
func Intern(parent uint64, label string) uint64 {
	var d xxhash.Digest
	d.Reset()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], parent)
	d.Write(buf[:])
	d.WriteString(label)
	h := d.Sum64()
	if h == 0 || h == _TERMVAR {
		return _VARSUBST
	}
	return h
}
