// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zcube

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Stats returns information about the store: the number of hash-consed nodes
// and the occupancy of each set-operation cache. The cache of the inclusion
// predicate is not reported.
func (b *Store) Stats() string {
	res := fmt.Sprintf("Nodes:      %d\n", b.Size())
	res += fmt.Sprintf("Shards:     %d\n", _NSHARDS)
	res += "==============\n"
	for _, c := range []*opcache{b.uni, b.its, b.dif, b.cru, b.cri, b.crd} {
		res += c.String() + "\n"
	}
	return res
}

// ************************************************************

// Allsets applies function f over every set of the family rooted at n, passed
// as a sorted slice of variables. The slice is reused between calls; the
// callback must copy it to retain it. We stop and return an error if f
// returns an error at some point.
func (b *Store) Allsets(n Node, f func([]uint64) error) error {
	return allsets(n, nil, f)
}

func allsets(n Node, prefix []uint64, f func([]uint64) error) error {
	if n == Bot {
		return nil
	}
	if n == Top {
		return f(prefix)
	}
	if err := allsets(n.low, prefix, f); err != nil {
		return err
	}
	return allsets(n.high, append(prefix, n.v), f)
}

// PrintSets outputs a textual representation of the family of sets rooted at
// n, one set per line, with variables in hexadecimal.
func (b *Store) PrintSets(n Node) {
	b.printsets(os.Stdout, n)
}

func (b *Store) printsets(w io.Writer, n Node) error {
	if n == Bot {
		_, err := fmt.Fprintln(w, "{}")
		return err
	}
	lines := []string{}
	b.Allsets(n, func(vs []uint64) error {
		strs := make([]string, len(vs))
		for i, v := range vs {
			strs[i] = fmt.Sprintf("%#x", v)
		}
		lines = append(lines, "{"+strings.Join(strs, ", ")+"}")
		return nil
	})
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// ************************************************************

// PrintDot prints a graph-like description of the ZDD rooted at n using the
// DOT format.
func (b *Store) PrintDot(n Node) {
	b.printdot(bufio.NewWriter(os.Stdout), n)
}

// FPrintDot prints a graph-like description of the ZDD rooted at n, in DOT
// format, to the given file; "-" stands for the standard output.
func (b *Store) FPrintDot(filename string, n Node) error {
	var out *os.File
	var err error
	if filename == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(filename)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	return b.printdot(bufio.NewWriter(out), n)
}

func (b *Store) printdot(w *bufio.Writer, n Node) error {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "0 [shape=box, label=\"Bot\", style=filled, height=0.3, width=0.3];")
	fmt.Fprintln(w, "1 [shape=box, label=\"Top\", style=filled, height=0.3, width=0.3];")
	seen := make(map[uint64]bool)
	b.dotrec(w, n, seen)
	fmt.Fprintln(w, "}")
	return w.Flush()
}

func (b *Store) dotrec(w *bufio.Writer, n Node, seen map[uint64]bool) {
	if n == Bot || n == Top || seen[n.id] {
		return
	}
	seen[n.id] = true
	fmt.Fprintf(w, "%d [label=\"%#x\"];\n", n.id, n.v)
	fmt.Fprintf(w, "%d -> %d [style=dotted];\n", n.id, n.low.id)
	fmt.Fprintf(w, "%d -> %d [style=filled];\n", n.id, n.high.id)
	b.dotrec(w, n.low, seen)
	b.dotrec(w, n.high, seen)
}
