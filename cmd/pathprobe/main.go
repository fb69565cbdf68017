// Command pathprobe explores single-source shortest paths on weighted
// graphs loaded from a cost-matrix file.
//
//	pathprobe gen 8 --seed 42 > g.txt
//	pathprobe query g.txt ucs 0 7
//	pathprobe shell g.txt
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
