// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

import (
	"errors"
)

// ErrEmptyQuery is returned by CountTrees when the query expression denotes
// no tree at all, such as BotTree or Sum() without arguments.
var ErrEmptyQuery = errors.New("query denotes an empty set of trees")

// ErrNotSingleton is returned by CountTrees when the query expression denotes
// more than one tree. Counting is only defined against a single tree; use one
// query per tree of a Sum.
var ErrNotSingleton = errors.New("query denotes more than one tree")
