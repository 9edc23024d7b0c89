// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// eval runs the line diff over the history of a git repository. For every changed file and every
// cost limit it records how far the search had to go and, unless the search was cut short, checks
// that the unified diff applied with the unix patch tool reproduces the new file.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"znkr.io/wudiff"
	"znkr.io/wudiff/internal/byteview"
	"znkr.io/wudiff/internal/cmd/eval/internal/git"
	"znkr.io/wudiff/internal/onp"
	"znkr.io/wudiff/internal/unixpatch"
	"znkr.io/wudiff/textdiff"
)

type config struct {
	repo       string
	sample     int
	parallel   int
	stats      string
	validate   bool
	costLimits []int
}

func main() {
	var cfg config
	var limits string
	flag.StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in (CSV)")
	flag.BoolVar(&cfg.validate, "validate", true, "if validation should be performed")
	flag.StringVar(&limits, "cost-limits", "20,0", "comma separated list of cost limits to evaluate, 0 is unlimited")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	var err error
	cfg.costLimits, err = parseLimits(limits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseLimits(s string) ([]int, error) {
	var limits []int
	for f := range strings.SplitSeq(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid cost limit %q", f)
		}
		limits = append(limits, n)
	}
	if len(limits) == 0 {
		return nil, errors.New("no cost limits")
	}
	return limits, nil
}

// sample picks n commits at random, keeping the order of history.
func sample(commitIDs []string, n int, rng *rand.Rand) []string {
	if n <= 0 || n >= len(commitIDs) {
		return commitIDs
	}
	picked := rng.Perm(len(commitIDs))[:n]
	slices.Sort(picked)
	out := make([]string, n)
	for i, j := range picked {
		out[i] = commitIDs[j]
	}
	return out
}

type change struct {
	commitID string
	file     string
	old, new string
}

type result struct {
	commitID  string
	file      string
	costLimit int
	N, M      int
	D         int
	P         int
	delta     int
	truncated bool
	duration  time.Duration
}

// evaluate compares the lines of a single change with the given cost limit.
func evaluate(ctx context.Context, c change, costLimit int, validate bool) (result, error) {
	old, _ := byteview.SplitLines(byteview.From(c.old))
	new, _ := byteview.SplitLines(byteview.From(c.new))

	start := time.Now()
	res := onp.Compare(old, new, costLimit)
	duration := time.Since(start)

	r := result{
		commitID:  c.commitID,
		file:      c.file,
		costLimit: costLimit,
		N:         len(old),
		M:         len(new),
		D:         wudiff.Distance(res.Edits),
		P:         res.P,
		delta:     res.Delta,
		truncated: costLimit > 0 && res.P > costLimit,
		duration:  duration,
	}

	// A truncated script doesn't describe the whole change and can't be applied.
	if !validate || r.truncated {
		return r, nil
	}
	unified := textdiff.Unified(c.old, c.new, wudiff.CostLimit(costLimit))
	patched, err := unixpatch.Patch(ctx, c.old, unified)
	if err != nil {
		return r, fmt.Errorf("failed to run patch: %v", err)
	}
	if patched != c.new {
		return r, fmt.Errorf("file is different after applying patch. got:\n%s\nwant:\n%s", patched, c.new)
	}
	return r, nil
}

type note struct {
	prefix string
	msg    string
}

func run(ctx context.Context, cfg *config) error {
	if cfg.validate && !unixpatch.Available() {
		return errors.New("patch not found, use -validate=false to skip validation")
	}

	repo, err := git.Open(ctx, cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %v", err)
	}
	defer repo.Close()

	commitIDs, err := repo.RevList(ctx)
	if err != nil {
		return fmt.Errorf("reading rev-list: %v", err)
	}
	commitIDs = sample(commitIDs, cfg.sample, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	var stats *csv.Writer
	if cfg.stats != "" {
		f, err := os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer f.Close()
		stats = csv.NewWriter(f)
		stats.Write([]string{"commit_id", "file", "cost_limit", "N", "M", "D", "P", "delta", "truncated", "duration_ns"})
	}

	var (
		commitsDone atomic.Int64
		processed   atomic.Int64
		truncated   atomic.Int64
		failures    atomic.Int64
	)
	notes := make(chan note)
	changes := make(chan change)
	results := make(chan result)

	// Read changes.
	readers, rctx := errgroup.WithContext(ctx)
	readers.SetLimit(max(1, cfg.parallel))
	go func() {
		defer close(changes)
		for _, commitID := range commitIDs {
			readers.Go(func() error {
				defer commitsDone.Add(1)
				return readCommit(rctx, repo, commitID, changes, notes)
			})
		}
		readers.Wait()
	}()

	// Evaluate changes.
	var workers errgroup.Group
	for range max(1, cfg.parallel) {
		workers.Go(func() error {
			for c := range changes {
				for _, limit := range cfg.costLimits {
					r, err := evaluate(ctx, c, limit, cfg.validate)
					if err != nil {
						failures.Add(1)
						notes <- note{prefix: c.commitID + ":" + c.file, msg: err.Error()}
					}
					if r.truncated {
						truncated.Add(1)
					}
					results <- r
				}
				processed.Add(1)
			}
			return nil
		})
	}
	go func() {
		workers.Wait()
		close(results)
	}()

	// Write stats.
	var statsErr error
	statsDone := make(chan struct{})
	go func() {
		defer close(statsDone)
		for r := range results {
			if stats == nil || statsErr != nil {
				continue
			}
			statsErr = stats.Write([]string{
				r.commitID,
				r.file,
				strconv.Itoa(r.costLimit),
				strconv.Itoa(r.N),
				strconv.Itoa(r.M),
				strconv.Itoa(r.D),
				strconv.Itoa(r.P),
				strconv.Itoa(r.delta),
				strconv.FormatBool(r.truncated),
				strconv.FormatInt(r.duration.Nanoseconds(), 10),
			})
		}
		if stats != nil && statsErr == nil {
			stats.Flush()
			statsErr = stats.Error()
		}
	}()

	// Render progress.
	start := time.Now()
	render := func() {
		commits := commitsDone.Load()
		var perSec int64
		if elapsed := time.Since(start); elapsed > 0 {
			perSec = int64(time.Duration(processed.Load()) * time.Second / elapsed)
		}
		fmt.Printf("\r%d/%d commits, %d files (%d/s), %d truncated, %d failed ",
			commits, len(commitIDs), processed.Load(), perSec, truncated.Load(), failures.Load())
	}
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
Loop:
	for {
		select {
		case n := <-notes:
			fmt.Printf("\r%s: %s\n", n.prefix, n.msg)
			render()
		case <-ticker.C:
			render()
		case <-statsDone:
			break Loop
		}
	}
	render()
	fmt.Printf("\n")

	if err := readers.Wait(); err != nil {
		return err
	}
	if statsErr != nil {
		return fmt.Errorf("writing stats: %v", statsErr)
	}
	if n := failures.Load(); n > 0 {
		return fmt.Errorf("%d evaluations failed", n)
	}
	return nil
}

// readCommit sends all changed files of a commit to changes. Problems with individual files are
// reported as notes, only a canceled context stops the evaluation.
func readCommit(ctx context.Context, repo *git.Repo, commitID string, changes chan<- change, notes chan<- note) error {
	files, err := repo.DiffTree(ctx, commitID)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		notes <- note{prefix: commitID, msg: fmt.Sprintf("error processing commit: %v", err)}
		return nil
	}
	for _, file := range files {
		if strings.HasSuffix(file.Name, ".zip") || strings.HasSuffix(file.Name, ".syso") {
			continue
		}
		old, err := repo.Blob(file.OldID)
		if err == nil {
			var new string
			new, err = repo.Blob(file.NewID)
			if err == nil {
				select {
				case changes <- change{commitID: commitID, file: file.Name, old: old, new: new}:
				case <-ctx.Done():
					return ctx.Err()
				}
				continue
			}
		}
		notes <- note{prefix: commitID + ":" + file.Name, msg: fmt.Sprintf("error reading file: %v", err)}
	}
	return nil
}
