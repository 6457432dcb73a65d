// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// zcube is a command line front end for computing multi-dimensional aggregate
// counts over streams of weighted observations.
//
// Observations are read one per line, as a signed weight followed by one or
// more slash-separated label paths; the paths are crossed into a single
// observation tree:
//
//	5 www.company.com/page1 gender/male 2014/01/02
//
// Queries are given as arguments, with the same path syntax, several paths
// crossed with a comma:
//
//	zcube -i clicks.log www.company.com gender/female,2014/01
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dalzilio/zcube"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	var (
		input   string
		jobs    int
		stats   bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:           "zcube [flags] QUERY...",
		Short:         "aggregate weighted observations and count subtree queries",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			obs, err := readObservations(input)
			if err != nil {
				return err
			}
			log.Debugf("aggregating %d observations with %d jobs", len(obs), jobs)

			b := zcube.New(zcube.Tablesize(64 * len(obs)))
			acc := b.ParSumSubtrees(jobs, obs)

			w := cmd.OutOrStdout()
			for _, arg := range args {
				q, err := parseQuery(arg)
				if err != nil {
					return err
				}
				n, err := b.CountTrees(q, acc)
				if err != nil {
					return fmt.Errorf("query %q: %w", arg, err)
				}
				fmt.Fprintf(w, "%s\t%d\n", arg, n)
			}
			if stats {
				fmt.Fprint(os.Stderr, b.Stats())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", `observation file ("-" for stdin)`)
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of parallel workers (0 picks the number of CPUs)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print store statistics on stderr")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// parsePath turns a slash-separated sequence of labels into a linear tree.
func parsePath(s string) (zcube.Tree, error) {
	labels := strings.Split(s, "/")
	for _, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("empty label in path %q", s)
		}
	}
	return zcube.Path(labels...), nil
}

// parseQuery turns a comma-separated list of paths into their cross.
func parseQuery(s string) (zcube.Tree, error) {
	parts := strings.Split(s, ",")
	trees := make([]zcube.Tree, len(parts))
	for i, p := range parts {
		t, err := parsePath(p)
		if err != nil {
			return nil, err
		}
		trees[i] = t
	}
	return zcube.Cross(trees...), nil
}

func readObservations(input string) ([]zcube.Observation, error) {
	var in *os.File
	if input == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	var obs []zcube.Observation
	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected a weight and at least one path", lineno)
		}
		w, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad weight %q", lineno, fields[0])
		}
		trees := make([]zcube.Tree, 0, len(fields)-1)
		for _, f := range fields[1:] {
			t, err := parsePath(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			trees = append(trees, t)
		}
		obs = append(obs, zcube.Observation{Weight: w, Tree: zcube.Cross(trees...)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return obs, nil
}
