package evaluator

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Mgrdich/TermChess/internal/engine"
	"github.com/Mgrdich/TermChess/internal/score"
)

// UCI evaluates positions by driving an external UCI-speaking chess engine
// (e.g. Stockfish) as a subprocess: it writes "position fen ..." followed by
// a depth- or time-bounded "go", and reads the engine's "info ... score ..."
// lines until "bestmove", keeping the last score line seen.
type UCI struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner

	mu sync.Mutex

	depth    int
	moveTime time.Duration
}

// UCIOption configures a UCI evaluator at construction time.
type UCIOption func(*UCI)

// WithDepth bounds each search by a fixed depth ("go depth N"). It is
// mutually exclusive with WithMoveTime; whichever is set last wins.
func WithDepth(depth int) UCIOption {
	return func(u *UCI) {
		u.depth = depth
		u.moveTime = 0
	}
}

// WithMoveTime bounds each search by wall-clock time ("go movetime N").
func WithMoveTime(d time.Duration) UCIOption {
	return func(u *UCI) {
		u.moveTime = d
		u.depth = 0
	}
}

// NewUCI launches path as a subprocess and performs the UCI handshake
// (uci/uciok, isready/readyok, ucinewgame). A launch or handshake failure is
// fatal: callers must not retain or reuse a UCI whose constructor returned
// an error.
func NewUCI(path string, opts ...UCIOption) (*UCI, error) {
	u := &UCI{depth: 15}
	for _, opt := range opts {
		opt(u)
	}

	cmd := exec.Command(path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &Error{Evaluator: "uci", Err: fmt.Errorf("stdin pipe: %w", err)}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &Error{Evaluator: "uci", Err: fmt.Errorf("stdout pipe: %w", err)}
	}
	if err := cmd.Start(); err != nil {
		return nil, &Error{Evaluator: "uci", Err: fmt.Errorf("start %s: %w", path, err)}
	}

	u.cmd = cmd
	u.stdin = stdin
	u.stdout = bufio.NewScanner(stdout)
	u.stdout.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if err := u.send("uci"); err != nil {
		return nil, err
	}
	if err := u.awaitLine("uciok"); err != nil {
		return nil, &Error{Evaluator: "uci", Err: fmt.Errorf("no uciok from %s: %w", path, err)}
	}
	if err := u.send("isready"); err != nil {
		return nil, err
	}
	if err := u.awaitLine("readyok"); err != nil {
		return nil, &Error{Evaluator: "uci", Err: fmt.Errorf("no readyok from %s: %w", path, err)}
	}
	if err := u.send("ucinewgame"); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *UCI) send(line string) error {
	if _, err := fmt.Fprintf(u.stdin, "%s\n", line); err != nil {
		return &Error{Evaluator: "uci", Err: fmt.Errorf("write %q: %w", line, err)}
	}
	return nil
}

func (u *UCI) awaitLine(want string) error {
	for u.stdout.Scan() {
		if strings.TrimSpace(u.stdout.Text()) == want {
			return nil
		}
	}
	if err := u.stdout.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}

// Evaluate asks the engine to search b's position and returns the final
// score reported before "bestmove", relative to the side to move.
func (u *UCI) Evaluate(b Board) (score.PovScore, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	turn := b.Turn()

	if err := u.send(fmt.Sprintf("position fen %s", b.ToFEN())); err != nil {
		return score.PovScore{}, err
	}

	goCmd := fmt.Sprintf("go depth %d", u.depth)
	if u.moveTime > 0 {
		goCmd = fmt.Sprintf("go movetime %d", u.moveTime.Milliseconds())
	}
	if err := u.send(goCmd); err != nil {
		return score.PovScore{}, err
	}

	var last score.Score
	haveScore := false

	for u.stdout.Scan() {
		line := u.stdout.Text()
		if strings.HasPrefix(line, "info ") && strings.Contains(line, " score ") {
			if s, ok := parseScoreLine(line); ok {
				last = s
				haveScore = true
			}
			continue
		}
		if strings.HasPrefix(line, "bestmove") {
			break
		}
	}
	if err := u.stdout.Err(); err != nil {
		return score.PovScore{}, &Error{Evaluator: "uci", Err: err}
	}
	if !haveScore {
		return score.PovScore{}, &Error{Evaluator: "uci", Err: fmt.Errorf("no score reported for %s", b.ToFEN())}
	}

	return score.New(last, turn), nil
}

// parseScoreLine extracts the "score cp N" or "score mate N" field from a
// UCI "info" line. It returns ok=false for lines that carry no score (pure
// "info currmove ..." progress lines, for instance).
func parseScoreLine(line string) (score.Score, bool) {
	fields := strings.Fields(line)
	for i, f := range fields {
		if f != "score" || i+2 >= len(fields) {
			continue
		}
		kind := fields[i+1]
		n, err := strconv.Atoi(fields[i+2])
		if err != nil {
			return score.Score{}, false
		}
		switch kind {
		case "cp":
			return score.Cp(n), true
		case "mate":
			return score.Mate(n), true
		}
	}
	return score.Score{}, false
}

// Quit sends "quit" and waits for the subprocess to exit.
func (u *UCI) Quit() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	_ = u.send("quit")
	_ = u.stdin.Close()

	if err := u.cmd.Wait(); err != nil {
		return &Error{Evaluator: "uci", Err: err}
	}
	return nil
}

var _ Evaluator = (*UCI)(nil)
var _ Board = (*engine.Board)(nil)
