// Command chessllm is a console driver for the LLM-backed chess engine: a
// debugging/demo shell around pkg/agentreg, in the idiom of the reference
// engine's own console/UCI command-line drivers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/brianbob12/chess-with-llm/internal/cliutil"
	"github.com/brianbob12/chess-with-llm/internal/eventlog"
	"github.com/brianbob12/chess-with-llm/pkg/agentreg"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	logPath = flag.String("log", "", "path to append JSONL oracle-call/search-iteration events to (disabled if empty)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: chessllm [options]

chessllm is a console driver for an LLM-backed chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "chessllm %v", version)

	var log *eventlog.Writer
	if *logPath != "" {
		w, err := eventlog.NewWriter(*logPath, 1024)
		if err != nil {
			logw.Exitf(ctx, "failed to open event log %v: %v", *logPath, err)
		}
		log = w
		defer log.Close()
	}

	registry := agentreg.New(log)

	in := cliutil.ReadStdinLines(ctx)
	d, out := newDriver(ctx, registry, in)
	go cliutil.WriteStdoutLines(ctx, out)

	<-d.Closed()
}
