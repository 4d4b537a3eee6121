// Command quietpawn is a line-oriented command interpreter for the engine: a plain
// synchronous loop over stdin, one command per line, with no pondering, no concurrent
// search, and no "stop" command -- a go command always runs to completion of its time
// budget before the next line is read.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quietpawn/engine/pkg/board"
	"github.com/quietpawn/engine/pkg/engine"
	"github.com/quietpawn/engine/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "quietpawn", "quietpawn contributors")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		logw.Debugf(ctx, "<< %v", line)

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "uci":
			emit(ctx, "id name %v", e.Name())
			emit(ctx, "id author %v", e.Author())
			emit(ctx, "uciok")

		case "isready":
			emit(ctx, "readyok")

		case "position":
			handlePosition(ctx, e, args)

		case "go":
			handleGo(ctx, e, args)

		case "evaluate":
			emit(ctx, "Evaluation: %v", e.Evaluate(ctx))

		case "searchbenchmark":
			handleBenchmark(ctx, e, args)

		case "quit":
			return

		default:
			logw.Warningf(ctx, "Unknown command %q", cmd)
		}
	}
}

// emit writes one response line to stdout, matching the %v-style formatting the rest of the
// codebase uses for logw.
func emit(ctx context.Context, format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	logw.Debugf(ctx, ">> %v", line)
	fmt.Println(line)
}

// handlePosition implements "position startpos|fen <6 fields> [moves ...]". A
// malformed FEN is reported by Reset itself reverting to the starting position; a malformed
// move token stops applying further moves from this command without aborting the process.
func handlePosition(ctx context.Context, e *engine.Engine, args []string) {
	if len(args) == 0 {
		return
	}

	i := 0
	position := ""
	switch args[0] {
	case "startpos":
		position = ""
		i = 1
	case "fen":
		if len(args) < 7 {
			logw.Errorf(ctx, "position fen: not enough fields")
			return
		}
		position = strings.Join(args[1:7], " ")
		i = 7
	default:
		logw.Errorf(ctx, "position: unrecognized %q", args[0])
		return
	}

	if position == "" {
		if err := e.Reset(ctx, startpos); err != nil {
			logw.Errorf(ctx, "position: %v", err)
		}
	} else if err := e.Reset(ctx, position); err != nil {
		logw.Errorf(ctx, "position: %v", err)
	}

	if i < len(args) && args[i] == "moves" {
		i++
	}
	for ; i < len(args); i++ {
		if err := e.Move(ctx, args[i]); err != nil {
			logw.Errorf(ctx, "position: invalid move %q: %v", args[i], err)
			return
		}
	}
}

// startpos is the FEN for the standard starting position, used so this file does not need to
// import pkg/board/fen solely for that constant.
const startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// handleGo implements "go [wtime N] [btime N] [winc N] [binc N] [movetime N] [depth N]
// [infinite] [ponder] [movestogo N] [nodes N] [mate N]". Only the parameters the
// time manager and search consume are acted on; movestogo, nodes, mate and ponder are parsed
// (to avoid being mistaken for an unknown command) and otherwise ignored, as an engine may
// ignore a go parameter it does not implement.
func handleGo(ctx context.Context, e *engine.Engine, args []string) {
	var params search.GoParams
	depth := 0

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			i++
			if v, ok := parseInt32(args, i); ok {
				params.WTime = lang.Some(v)
			}
		case "btime":
			i++
			if v, ok := parseInt32(args, i); ok {
				params.BTime = lang.Some(v)
			}
		case "winc":
			i++
			if v, ok := parseInt32(args, i); ok {
				params.WInc = lang.Some(v)
			}
		case "binc":
			i++
			if v, ok := parseInt32(args, i); ok {
				params.BInc = lang.Some(v)
			}
		case "movetime":
			i++
			if v, ok := parseInt32(args, i); ok {
				params.Movetime = lang.Some(v)
			}
		case "depth":
			i++
			if i < len(args) {
				if n, err := strconv.Atoi(args[i]); err == nil {
					depth = n
				}
			}
		case "infinite":
			params.Infinite = true
		case "ponder":
			// bare flag, no argument -- unused here (no pondering).
		case "movestogo", "nodes", "mate":
			i++ // has a numeric argument, but unused here.
		default:
			// silently ignore anything not handled.
		}
	}

	move, _ := e.ChooseBestMove(ctx, params, depth)
	emit(ctx, "bestmove %v", printMove(move))
}

// printMove renders a move in the lowercase long algebraic form the wire protocol expects
// ("e2e4", "a7a8q", "0000" for no move); board.Move.String uses uppercase square names.
func printMove(m board.Move) string {
	return strings.ToLower(m.String())
}

// parseInt32 returns args[i] parsed as int32, or (0, false) if i is out of range or the
// token is not a valid integer: integer parse failures are treated as parameter not present.
func parseInt32(args []string, i int) (int32, bool) {
	if i >= len(args) {
		return 0, false
	}
	n, err := strconv.ParseInt(args[i], 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// handleBenchmark implements "searchbenchmark <depth>": search to a fixed depth with
// no time limit, report elapsed time and nodes visited.
func handleBenchmark(ctx context.Context, e *engine.Engine, args []string) {
	depth := 4
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			depth = n
		}
	}

	result := e.Benchmark(ctx, depth)
	emit(ctx, "info depth %v score %v nodes %v time %v", depth, result.Score, result.Nodes, result.Elapsed.Milliseconds())
	emit(ctx, "bestmove %v", printMove(result.Move))
}
