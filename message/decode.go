package message

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ErrNoMatches indicates the stream ended without a single Match record.
var ErrNoMatches = errors.New("no matches returned")

// MalformedError reports a JSON decode failure at a specific line.
type MalformedError struct {
	LineIndex int
	Err       error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed input at line %d: %v", e.LineIndex, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

const progressInterval = 1000

// Decode reads a newline-delimited JSON stream of searcher events and
// returns every parsed Message in order, including the terminal Summary.
//
// Progress is reported to progressOut every progressInterval records; pass
// nil to disable progress reporting. One bad line aborts the run with a
// MalformedError; a stream without any Match message aborts with
// ErrNoMatches.
func Decode(r io.Reader, progressOut io.Writer) ([]Message, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var messages []Message
	var sawMatch bool
	lineIndex := 0

	for scanner.Scan() {
		line := scanner.Bytes()
		lineIndex++
		if len(line) == 0 {
			continue
		}

		var msg Message
		if err := msg.UnmarshalJSON(line); err != nil {
			return nil, &MalformedError{LineIndex: lineIndex - 1, Err: err}
		}

		if msg.Kind == KindMatch {
			sawMatch = true
		}

		messages = append(messages, msg)

		if progressOut != nil && lineIndex > 0 && lineIndex%progressInterval == 0 {
			fmt.Fprintf(progressOut, "\rMatches found: ~%d", lineIndex)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan input")
	}

	if progressOut != nil && lineIndex >= progressInterval {
		fmt.Fprintln(progressOut)
	}

	if !sawMatch {
		return nil, ErrNoMatches
	}

	return messages, nil
}

// ProgressWriterForStderr returns os.Stderr when it is safe to emit
// progress (the process's stderr is connected to a pipe rather than an
// interactive terminal), and nil otherwise.
func ProgressWriterForStderr() io.Writer {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return nil
	}
	if (fi.Mode() & os.ModeCharDevice) != 0 {
		// stderr is a terminal; avoid interleaving progress with the TUI.
		return nil
	}
	return os.Stderr
}
