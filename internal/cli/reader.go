package cli

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// ScanLines streams r line by line. Line endings ("\n" or "\r\n") are
// stripped; trimming and blank-line handling are left to the engine.
// Lines may be of any length.
//
// The returned func reports the read error, if any, once the sequence has
// stopped.
func ScanLines(r io.Reader) (iter.Seq[string], func() error) {
	var readErr error
	seq := func(yield func(string) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				if !yield(line) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr = err
				}
				return
			}
		}
	}
	return seq, func() error { return readErr }
}
