package input

import "github.com/vinser/mazechase/internal/dweller"

type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

const (
	esc    = 0x1b
	ctrlC  = 0x03
	csi    = '['
	ss3    = 'O'
	quitLo = 'q'
	quitUp = 'Q'
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyQuit:
		return "quit"
	}
	return "unknown"
}

// Direction maps an arrow key to a movement direction.
func (k Key) Direction() (dweller.Direction, bool) {
	switch k {
	case KeyUp:
		return dweller.Up, true
	case KeyDown:
		return dweller.Down, true
	case KeyLeft:
		return dweller.Left, true
	case KeyRight:
		return dweller.Right, true
	}
	return 0, false
}

func arrow(b byte) (Key, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

// Decode turns raw terminal bytes into keys. Arrows come as ESC [ A..D or
// ESC O A..D. A lone ESC at the end of buf is a quit key. An escape sequence
// that was cut in the middle of its introducer is returned as rest so the
// caller can prepend it to the next read.
func Decode(buf []byte) (keys []Key, rest []byte) {
	for i := 0; i < len(buf); i++ {
		switch b := buf[i]; b {
		case quitLo, quitUp, ctrlC:
			keys = append(keys, KeyQuit)
		case esc:
			if i+1 == len(buf) {
				keys = append(keys, KeyQuit)
				continue
			}
			if buf[i+1] != csi && buf[i+1] != ss3 {
				// ESC followed by something else, e.g. alt-key
				continue
			}
			if i+2 == len(buf) {
				return keys, append([]byte(nil), buf[i:]...)
			}
			if k, ok := arrow(buf[i+2]); ok {
				keys = append(keys, k)
			}
			i += 2
		}
	}
	return keys, nil
}
