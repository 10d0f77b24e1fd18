package input

import (
	"context"
	"io"
	"log"

	"github.com/muesli/cancelreader"
	"github.com/pkg/errors"
	"github.com/vinser/mazechase/internal/dweller"
)

// ErrQuit is returned by Reader.Run when a quit key was pressed.
var ErrQuit = errors.New("quit requested")

// NewChannel returns the channel that carries directions from the reader to
// the game loop. It holds one pending direction.
func NewChannel() chan dweller.Direction {
	return make(chan dweller.Direction, 1)
}

// Reader turns keystrokes into directions.
type Reader struct {
	src io.Reader
	out chan<- dweller.Direction
	buf []byte
}

func NewReader(src io.Reader, out chan<- dweller.Direction) *Reader {
	return &Reader{src: src, out: out, buf: make([]byte, 64)}
}

// Run reads until EOF, a quit key, a read error or ctx cancellation.
// Each direction is delivered with a blocking send, so a keystroke waits for
// the game loop to take the previous one. Run closes out when it returns.
func (r *Reader) Run(ctx context.Context) error {
	defer close(r.out)

	var pending []byte
	for {
		n, err := r.src.Read(r.buf)
		if n > 0 {
			data := append(pending, r.buf[:n]...)
			var keys []Key
			keys, pending = Decode(data)
			for _, k := range keys {
				if k == KeyQuit {
					log.Println("input: quit key")
					return ErrQuit
				}
				d, _ := k.Direction()
				select {
				case r.out <- d:
				case <-ctx.Done():
					return nil
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, cancelreader.ErrCanceled) {
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "read input")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
