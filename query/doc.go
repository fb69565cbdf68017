// Package query runs shortest-path queries against a loaded graph and
// presents their results.
//
// What
//
//   - Runner: validates a Query, times the traversal, reconstructs the path
//     and returns a Result. Each run gets a uuid, a log record, an
//     OpenTelemetry span ("query.Run") and Prometheus observations.
//   - Compare: runs every strategy for the same endpoints concurrently.
//   - ParseCommand: turns a command line ("ucs 0 3", "all 0 3", "exit") into
//     a Command.
//   - Shell: the interactive prompt loop over ParseCommand and Runner.
//   - WriteResult: the human-readable result block.
//
// Errors
//
//   - traverse.ErrVertexOutOfRange: the query names a vertex outside [0, n);
//     no traversal is run.
//   - traverse.ErrUnreachable: returned together with a Result whose
//     Reachable is false.
//   - ErrUnknownCommand, ErrBadArguments: from ParseCommand.
//
// Concurrency
//
//	A Runner holds no per-query state. Run and Compare are safe for
//	concurrent use; the graph is only read.
package query
