package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/brianbob12/chess-with-llm/pkg/agentreg"
	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"go.uber.org/atomic"
)

// driver is a console-style REPL over a single game, in the reference
// engine's console-driver idiom: an async line pump in, an async line pump
// out, and background search running concurrently with command processing
// (mirroring the teacher's uci.Driver "go"/"stop" split). state is guarded
// by mu since the background think goroutine and the command loop both
// touch it.
type driver struct {
	iox.AsyncCloser

	registry *agentreg.Registry

	mu    sync.Mutex
	state chess.GameState

	out      chan<- string
	thinking atomic.Bool
}

func newDriver(ctx context.Context, registry *agentreg.Registry, in <-chan string) (*driver, <-chan string) {
	out := make(chan string, 100)
	d := &driver{
		AsyncCloser: iox.NewAsyncCloser(),
		registry:    registry,
		state:       chess.Initial(),
		out:         out,
	}
	go d.process(ctx, in)
	return d, out
}

func (d *driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	d.out <- "chessllm ready. commands: move <algebraic> | go <descriptor> | reset | board | quit"
	d.printBoard()

	for line := range in {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch strings.ToLower(parts[0]) {
		case "quit", "exit":
			logw.Infof(ctx, "driver: exiting on request")
			return

		case "reset":
			d.mu.Lock()
			d.state = chess.Initial()
			d.mu.Unlock()
			d.printBoard()

		case "board":
			d.printBoard()

		case "move":
			if len(parts) < 2 {
				d.out <- "usage: move <algebraic>"
				break
			}
			d.applyAlgebraic(ctx, parts[1])

		case "go":
			descriptor := agentreg.MinimaxGPT35
			if len(parts) >= 2 {
				descriptor = agentreg.Descriptor(parts[1])
			}
			go d.think(ctx, descriptor)

		default:
			d.out <- fmt.Sprintf("unrecognized command: %v", parts[0])
		}
	}
	logw.Infof(ctx, "driver: input stream closed")
}

func (d *driver) applyAlgebraic(ctx context.Context, algebraic string) {
	d.mu.Lock()
	state := d.state
	d.mu.Unlock()

	for _, m := range chess.LegalMoves(state, state.ToMove) {
		if m.Algebraic == algebraic {
			d.mu.Lock()
			d.state = chess.Apply(d.state, m)
			d.mu.Unlock()
			d.printBoard()
			d.reportEndgame()
			return
		}
	}
	d.out <- fmt.Sprintf("illegal or unrecognized move: %v", algebraic)
}

func (d *driver) think(ctx context.Context, descriptor agentreg.Descriptor) {
	if !d.thinking.CAS(false, true) {
		d.out <- "already thinking"
		return
	}
	defer d.thinking.Store(false)

	d.mu.Lock()
	state := d.state
	d.mu.Unlock()

	m, err := d.registry.CallAgent(ctx, state, descriptor)
	if err != nil {
		d.out <- fmt.Sprintf("error: %v", err)
		return
	}

	d.mu.Lock()
	d.state = chess.Apply(d.state, m)
	d.mu.Unlock()
	d.out <- fmt.Sprintf("%v plays %v", descriptor, m)
	d.printBoard()
	d.reportEndgame()
}

func (d *driver) reportEndgame() {
	d.mu.Lock()
	state := d.state
	d.mu.Unlock()

	eg := chess.DetectEndgame(state)
	if c, ok := eg.Checkmate.V(); ok {
		d.out <- fmt.Sprintf("checkmate: %v has no moves and is in check", c)
	} else if eg.Draw {
		d.out <- "stalemate: draw"
	}
}

func (d *driver) printBoard() {
	d.mu.Lock()
	state := d.state
	d.mu.Unlock()

	for r := 7; r >= 0; r-- {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(r + 1))
		sb.WriteString(" ")
		for c := 0; c < 8; c++ {
			cell := state.Board[r][c]
			sb.WriteString(" ")
			if !cell.Occupied {
				sb.WriteString(".")
				continue
			}
			sb.WriteString(glyph(cell))
		}
		d.out <- sb.String()
	}
	d.out <- "   a b c d e f g h"
	d.out <- fmt.Sprintf("%v to move", state.ToMove)
}

func glyph(c chess.Cell) string {
	letters := map[chess.PieceType]string{
		chess.Pawn: "P", chess.Knight: "N", chess.Bishop: "B",
		chess.Rook: "R", chess.Queen: "Q", chess.King: "K",
	}
	l := letters[c.Type]
	if c.Color == chess.Black {
		l = strings.ToLower(l)
	}
	return l
}
