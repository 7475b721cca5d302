package console

import (
	"bufio"
	"io"
	"time"
)

// lineReader pumps lines off the input stream from a dedicated goroutine
// so a prompt can race a deadline. The channel closes on EOF or read
// failure.
type lineReader struct {
	lines chan string
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lr.lines <- sc.Text()
		}
		close(lr.lines)
	}()
	return lr
}

// ReadLine blocks for the next line. ok is false once the stream closes.
func (lr *lineReader) ReadLine() (line string, ok bool) {
	line, ok = <-lr.lines
	return line, ok
}

// ReadLineTimeout waits up to d for a line. When the deadline wins, any
// line already in flight is drained so it cannot leak into the next
// turn's prompt.
func (lr *lineReader) ReadLineTimeout(d time.Duration) (line string, ok bool, timedOut bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case line, ok = <-lr.lines:
		return line, ok, false
	case <-timer.C:
		select {
		case <-lr.lines:
		default:
		}
		return "", true, true
	}
}
