// Command tilecover is a thin front-end over solver.Solve: it reads
// one JSON Payload from stdin, or — given file arguments —
// evaluates each file independently and prints results in input order.
// It carries no business logic of its own; see
// vinodismyname-mcpxcel/cmd/server/main.go for the "thin main" shape
// this follows.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/patioboard/tilecover/solver"
)

func main() {
	var (
		seed        int64
		verbose     bool
		concurrency int
	)
	flag.Int64Var(&seed, "seed", 1, "PRNG seed for search branch-order shuffling")
	flag.BoolVar(&verbose, "v", false, "log Debug-level lifecycle events to stderr")
	flag.IntVar(&concurrency, "j", 4, "max concurrent evaluations in batch mode")
	flag.Parse()

	var logger zerolog.Logger
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	} else {
		logger = zerolog.Nop()
	}

	files := flag.Args()
	if len(files) == 0 {
		if err := runOne(os.Stdin, os.Stdout, seed, logger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := runBatch(files, os.Stdout, seed, concurrency, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runOne(in io.Reader, out io.Writer, seed int64, logger zerolog.Logger) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	msg, err := evaluate(data, seed, logger, out)
	if err != nil {
		fmt.Fprintln(out, string(solver.EncodeError(err)))
		return nil
	}
	fmt.Fprintln(out, string(msg))
	return nil
}

// runBatch evaluates every file concurrently (bounded by concurrency)
// via an errgroup.Group, then prints results in input order — the
// only concurrent surface in the repo; the solver core itself stays
// single-threaded.
func runBatch(files []string, out io.Writer, seed int64, concurrency int, logger zerolog.Logger) error {
	results := make([][]byte, len(files))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(concurrency)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			data, err := os.ReadFile(path)
			if err != nil {
				results[i] = solver.EncodeError(fmt.Errorf("read %s: %w", path, err))
				return nil
			}
			msg, err := evaluate(data, seed, logger, io.Discard)
			if err != nil {
				results[i] = solver.EncodeError(err)
				return nil
			}
			results[i] = msg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	defer w.Flush()
	for _, r := range results {
		fmt.Fprintln(w, string(r))
	}
	return nil
}

// evaluate decodes one payload, runs Solve, and streams progress
// messages to progressOut as they arrive, returning the final
// terminal-message bytes.
func evaluate(data []byte, seed int64, logger zerolog.Logger, progressOut io.Writer) ([]byte, error) {
	problem, err := solver.DecodePayload(data)
	if err != nil {
		return nil, err
	}

	out, err := solver.Solve(problem,
		solver.WithSeed(seed),
		solver.WithLogger(logger),
		solver.WithProgress(func(nodes, found int) {
			fmt.Fprintln(progressOut, string(solver.EncodeProgress(nodes, found)))
		}),
	)
	if err != nil {
		return nil, err
	}

	return solver.EncodeResult(out, problem.W)
}
