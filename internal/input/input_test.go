package input

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/vinser/mazechase/internal/dweller"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKeys []Key
		wantRest string
	}{
		{name: "csi arrows", in: "\x1b[A\x1b[B\x1b[C\x1b[D", wantKeys: []Key{KeyUp, KeyDown, KeyRight, KeyLeft}},
		{name: "ss3 arrows", in: "\x1bOA\x1bOD", wantKeys: []Key{KeyUp, KeyLeft}},
		{name: "quit keys", in: "qQ\x03", wantKeys: []Key{KeyQuit, KeyQuit, KeyQuit}},
		{name: "lone escape", in: "\x1b", wantKeys: []Key{KeyQuit}},
		{name: "other bytes ignored", in: "x1 \r\x1b[Z", wantKeys: nil},
		{name: "alt key ignored", in: "\x1bx\x1b[C", wantKeys: []Key{KeyRight}},
		{name: "split sequence", in: "\x1b[A\x1b[", wantKeys: []Key{KeyUp}, wantRest: "\x1b["},
		{name: "split ss3", in: "\x1bO", wantKeys: nil, wantRest: "\x1bO"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys, rest := Decode([]byte(tc.in))
			if len(keys) != len(tc.wantKeys) {
				t.Fatalf("keys = %v, want %v", keys, tc.wantKeys)
			}
			for i := range keys {
				if keys[i] != tc.wantKeys[i] {
					t.Fatalf("keys = %v, want %v", keys, tc.wantKeys)
				}
			}
			if string(rest) != tc.wantRest {
				t.Fatalf("rest = %q, want %q", rest, tc.wantRest)
			}
		})
	}
}

// chunked returns one chunk per Read call.
type chunked struct {
	chunks []string
}

func (c *chunked) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	c.chunks = c.chunks[1:]
	return n, nil
}

func TestReaderJoinsSplitSequence(t *testing.T) {
	ch := NewChannel()
	r := NewReader(&chunked{chunks: []string{"\x1b[", "C"}}, ch)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d, ok := <-ch; !ok || d != dweller.Right {
		t.Fatalf("got %v, %v; want right", d, ok)
	}
	if _, ok := <-ch; ok {
		t.Fatal("channel not closed")
	}
}

func TestReaderBackpressure(t *testing.T) {
	ch := NewChannel()
	r := NewReader(strings.NewReader("\x1b[A\x1b[B"), ch)
	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	// The first direction fills the channel, the second send must wait.
	select {
	case err := <-done:
		t.Fatalf("Run returned %v with a full channel", err)
	case <-time.After(50 * time.Millisecond):
	}
	if d := <-ch; d != dweller.Up {
		t.Fatalf("first = %v, want up", d)
	}
	if d := <-ch; d != dweller.Down {
		t.Fatalf("second = %v, want down", d)
	}
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Fatal("channel not closed after EOF")
	}
}

func TestReaderQuit(t *testing.T) {
	ch := NewChannel()
	r := NewReader(strings.NewReader("\x1b[Dq\x1b[A"), ch)
	err := r.Run(context.Background())
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Run error = %v, want ErrQuit", err)
	}
	if d := <-ch; d != dweller.Left {
		t.Fatalf("got %v, want left", d)
	}
	if _, ok := <-ch; ok {
		t.Fatal("keys after quit were delivered")
	}
}

func TestReaderCancelledWhileBlocked(t *testing.T) {
	ch := NewChannel()
	ch <- dweller.Up
	ctx, cancel := context.WithCancel(context.Background())
	r := NewReader(strings.NewReader("\x1b[B"), ch)
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

type failing struct{}

func (failing) Read([]byte) (int, error) { return 0, errors.New("broken tty") }

func TestReaderReadError(t *testing.T) {
	err := NewReader(failing{}, NewChannel()).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "broken tty") {
		t.Fatalf("Run error = %v", err)
	}
}

func TestReaderIgnoresNoise(t *testing.T) {
	ch := NewChannel()
	var in bytes.Buffer
	in.WriteString("hello\x1b[Z")
	if err := NewReader(&in, ch).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Fatal("noise produced a direction")
	}
}
