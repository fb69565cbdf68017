package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathprobe/traverse"
)

var (
	// ErrUnknownCommand indicates a line whose first word is not a command.
	ErrUnknownCommand = errors.New("query: command not understood")

	// ErrBadArguments indicates a known command with missing, extra or
	// non-integer arguments.
	ErrBadArguments = errors.New("query: bad arguments")
)

// Kind classifies a parsed command line.
type Kind int

const (
	// KindEmpty is a blank line; the shell ignores it.
	KindEmpty Kind = iota
	// KindRun is "<algorithm> <src> <dst>".
	KindRun
	// KindCompare is "all <src> <dst>".
	KindCompare
	// KindHelp is "help".
	KindHelp
	// KindExit is "exit" or "quit".
	KindExit
)

// Command is one parsed line. Query is set for KindRun; for KindCompare
// only Source and Destination are meaningful.
type Command struct {
	Kind  Kind
	Query Query
}

// ParseCommand parses one command line. Words are separated by whitespace
// and matched case-insensitively. Vertex arguments are parsed as integers
// but not range-checked; Runner.Run does that against the graph.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: KindEmpty}, nil
	}

	word := strings.ToLower(fields[0])
	args := fields[1:]

	switch word {
	case "exit", "quit":
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrBadArguments, word)
		}
		return Command{Kind: KindExit}, nil
	case "help":
		return Command{Kind: KindHelp}, nil
	case "all":
		src, dst, err := parseEndpoints(word, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindCompare, Query: Query{Source: src, Destination: dst}}, nil
	}

	s, err := traverse.ParseStrategy(word)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	src, dst, err := parseEndpoints(word, args)
	if err != nil {
		return Command{}, err
	}

	return Command{Kind: KindRun, Query: Query{Strategy: s, Source: src, Destination: dst}}, nil
}

// parseEndpoints expects exactly two integer arguments.
func parseEndpoints(word string, args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: %s wants <src> <dst>, got %d arguments", ErrBadArguments, word, len(args))
	}
	src, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: source %q", ErrBadArguments, args[0])
	}
	dst, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: destination %q", ErrBadArguments, args[1])
	}

	return src, dst, nil
}

// helpText lists the shell commands.
const helpText = `commands:
  dfs <src> <dst>   depth-first search
  bfs <src> <dst>   breadth-first search
  ucs <src> <dst>   uniform-cost search
  all <src> <dst>   run all three and compare
  help              show this text
  exit | quit       leave the shell
`
