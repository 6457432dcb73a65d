// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryRoundtrip(t *testing.T) {
	b := New()
	u := testuniverse(3)
	s := b.SetOf(u...)
	for w := int64(0); w <= 300; w++ {
		n := Binary(w, s)
		if len(n) > 0 {
			assert.NotSame(t, Bot, n[len(n)-1], "no trailing zero digit")
		}
		assert.Equal(t, w, b.BinaryCount(n, s))
	}
	assert.Nil(t, Binary(7, Bot))
}

func TestNegabinaryRoundtrip(t *testing.T) {
	b := New()
	u := testuniverse(3)
	s := b.SetOf(u...)
	for w := int64(-300); w <= 300; w++ {
		n := Negabinary(w, s)
		if len(n) > 0 {
			assert.NotSame(t, Bot, n[len(n)-1], "no trailing zero digit")
		}
		assert.Equal(t, w, b.NegabinaryCount(n, s))
	}
	assert.Nil(t, Negabinary(-7, Bot))
}

func TestBinaryAdd(t *testing.T) {
	b := New()
	u := testuniverse(3)
	s := b.SetOf(u[0], u[1])
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		x, y := int64(r.Intn(1000)), int64(r.Intn(1000))
		sum := b.BinaryAdd(Binary(x, s), Binary(y, s))
		assert.Equal(t, x+y, b.BinaryCount(sum, s))
	}
	assert.Nil(t, b.BinaryAdd(nil, nil))
}

func TestNegabinaryAddSub(t *testing.T) {
	b := New()
	u := testuniverse(3)
	s := b.SetOf(u[0], u[2])
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		x, y := int64(r.Intn(2001)-1000), int64(r.Intn(2001)-1000)
		nx, ny := Negabinary(x, s), Negabinary(y, s)
		assert.Equal(t, x+y, b.NegabinaryCount(b.NegabinaryAdd(nx, ny), s))
		assert.Equal(t, x-y, b.NegabinaryCount(b.NegabinarySub(nx, ny), s))
	}
}

func TestNegabinaryIdentities(t *testing.T) {
	b := New()
	u := testuniverse(3)
	s := b.SetOf(u...)
	x := Negabinary(42, s)

	assert.Nil(t, b.NegabinaryAdd(nil, nil), "nil is the neutral element")
	assert.True(t, x.Eq(b.NegabinaryAdd(x, nil)))
	assert.True(t, x.Eq(b.NegabinaryAdd(nil, x)))
	assert.Nil(t, b.NegabinarySub(x, x), "x - x = 0")
	assert.Nil(t, b.NegabinaryAdd(x, b.NegabinarySub(nil, x)), "x + (-x) = 0")
}

// TestNumberPointwise checks that coefficients attached to distinct sets in
// one Number evolve independently.
func TestNumberPointwise(t *testing.T) {
	b := New()
	u := testuniverse(4)
	s1 := b.SetOf(u[0], u[1])
	s2 := b.SetOf(u[2])
	s3 := b.SetOf(u[0], u[3])

	acc := b.NegabinaryAdd(Negabinary(5, s1), Negabinary(-3, s2))
	acc = b.NegabinaryAdd(acc, Negabinary(2, b.Union(s1, s3)))

	assert.Equal(t, int64(7), b.NegabinaryCount(acc, s1))
	assert.Equal(t, int64(-3), b.NegabinaryCount(acc, s2))
	assert.Equal(t, int64(2), b.NegabinaryCount(acc, s3))
	assert.Equal(t, int64(0), b.NegabinaryCount(acc, b.SetOf(u[1])))
}

// TestNumberReduceOrder checks that reducing the same multiset of Numbers in
// different orders produces identical digit handles.
func TestNumberReduceOrder(t *testing.T) {
	b := New()
	u := testuniverse(5)
	r := rand.New(rand.NewSource(4))

	numbers := make([]Number, 50)
	for i := range numbers {
		set := []uint64{}
		for _, v := range u {
			if r.Intn(2) == 0 {
				set = append(set, v)
			}
		}
		numbers[i] = Negabinary(int64(r.Intn(41)-20), b.SetOf(set...))
	}

	fold := func(order []int) Number {
		var acc Number
		for _, k := range order {
			acc = b.NegabinaryAdd(acc, numbers[k])
		}
		return acc
	}

	order := make([]int, len(numbers))
	for i := range order {
		order[i] = i
	}
	ref := fold(order)
	for trial := 0; trial < 10; trial++ {
		r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		assert.True(t, ref.Eq(fold(order)))
	}
	require.NoError(t, b.Health())
}

func TestShift(t *testing.T) {
	b := New()
	u := testuniverse(2)
	s := b.SetOf(u...)
	assert.Nil(t, Shift(nil))
	assert.Equal(t, int64(14), b.BinaryCount(Shift(Binary(7, s)), s))
	assert.Equal(t, int64(-14), b.NegabinaryCount(Shift(Negabinary(7, s)), s))
}
