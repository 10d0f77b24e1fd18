package input

import (
	"context"
	"os"

	"github.com/muesli/cancelreader"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Terminal is a raw-mode tty whose blocking Read can be cancelled.
type Terminal struct {
	cancelreader.CancelReader
	fd    int
	state *term.State
}

// OpenTerminal puts f in raw mode. Close restores it.
func OpenTerminal(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.Errorf("%s is not a terminal", f.Name())
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, "raw mode")
	}
	cr, err := cancelreader.NewReader(f)
	if err != nil {
		_ = term.Restore(fd, state)
		return nil, errors.Wrap(err, "cancel reader")
	}
	return &Terminal{CancelReader: cr, fd: fd, state: state}, nil
}

// Close releases the reader and restores the terminal mode.
func (t *Terminal) Close() error {
	err := t.CancelReader.Close()
	if rerr := term.Restore(t.fd, t.state); rerr != nil && err == nil {
		err = errors.Wrap(rerr, "restore terminal")
	}
	return err
}

// WatchCancel cancels the pending read once ctx is done.
func WatchCancel(ctx context.Context, t cancelreader.CancelReader) {
	go func() {
		<-ctx.Done()
		t.Cancel()
	}()
}
