package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// rowPrealloc caps up-front slice capacity while parsing.
const rowPrealloc = 1024

// Load reads a graph in the text source format from r: the vertex count n
// followed by n*n non-negative integers in row-major order.
//
// Any tokenizing, parsing or shape failure returns an error wrapping
// ErrMalformedSource; no partial graph is ever returned. Tokens after the
// last matrix entry are ignored.
func Load(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// 1) Vertex count.
	n, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("%w reading vertex count", err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNoVertices, n)
	}

	// 2) n rows of n costs each.
	//    Rows are appended as they are read so a bogus n in a short file
	//    fails on input exhaustion instead of on allocation.
	m := make([][]int64, 0, min(n, rowPrealloc))
	var i, j int64
	for i = 0; i < n; i++ {
		row := make([]int64, 0, min(n, rowPrealloc))
		for j = 0; j < n; j++ {
			c, err := nextInt(sc)
			if err != nil {
				return nil, fmt.Errorf("%w reading cost (%d,%d)", err, i, j)
			}
			row = append(row, c)
		}
		m = append(m, row)
	}

	// 3) Build validates signs.
	return Build(int(n), m)
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteMatrix writes m in the text source format accepted by Load.
func WriteMatrix(w io.Writer, m [][]int64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(m)); err != nil {
		return err
	}
	for _, row := range m {
		for j, c := range row {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatInt(c, 10)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// nextInt scans one integer token. Callers add the token position to the
// error, so the happy path formats nothing.
func nextInt(sc *bufio.Scanner) (int64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedSource, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input", ErrMalformedSource)
	}
	v, err := strconv.ParseInt(sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedSource, sc.Text())
	}

	return v, nil
}
