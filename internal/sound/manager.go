// Package sound plays short synthesized effects for game events. Every effect
// is rendered into a buffer once at start-up and mixed into a single output
// stream, so triggering a sound from the game loop never blocks.
package sound

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/pkg/errors"
)

// Sound names
const (
	CHOMP    = "chomp"
	POWERUP  = "powerup"
	TELEPORT = "teleport"
	BUMP     = "bump"
	CLEARED  = "cleared"
	CAUGHT   = "caught"
	QUIT     = "quit"
)

const CommonSampleRate = 44100

// Manager controls the loading and playback of audio samples.
type Manager struct {
	mu         sync.Mutex
	samples    map[string]*beep.Buffer
	ctrl       map[string]*beep.Ctrl
	mix        *beep.Mixer
	format     beep.Format
	muted      bool
	vol        *effects.Volume    // master volume
	out        beep.Streamer      // what the backend pulls from
	sampleVols map[string]float64 // per-sample volume in dB

	backend   any
	pulseCtrl *pulseControl
}

// NewManager initializes the audio output and renders all effects.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr, err := newManager(sampleRate)
	if err != nil {
		return nil, err
	}
	bufferSize := sampleRate.N(time.Second / 10)
	if err := mgr.initBackend(sampleRate, bufferSize); err != nil {
		return nil, errors.Wrap(err, "audio backend")
	}
	return mgr, nil
}

// newManager builds a manager with no audio device attached.
func newManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr := &Manager{
		samples:    make(map[string]*beep.Buffer),
		ctrl:       make(map[string]*beep.Ctrl),
		mix:        &beep.Mixer{},
		format:     beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2},
		sampleVols: make(map[string]float64),
	}
	mgr.vol = &effects.Volume{
		Streamer: mgr.mix,
		Base:     2,
		Volume:   0, // 0 dB
		Silent:   false,
	}
	mgr.out = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		mgr.mu.Lock()
		defer mgr.mu.Unlock()
		n, _ := mgr.vol.Stream(samples)
		// An empty mixer still yields silence so the device keeps running.
		for i := n; i < len(samples); i++ {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	})
	if err := mgr.synthesize(); err != nil {
		return nil, errors.Wrap(err, "synthesize sounds")
	}
	return mgr, nil
}

func (mgr *Manager) SetMasterVolume(db float64) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.vol.Volume = db
}

func (mgr *Manager) SetVolume(name string, db float64) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.sampleVols[name] = db
}

// Play stops current playback of the sample (if any) and plays it from the start.
// A nil or muted manager plays nothing.
func (mgr *Manager) Play(name string) error {
	if mgr == nil {
		return nil
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.samples[name]
	if !ok {
		return errors.Errorf("sample not loaded: %s", name)
	}
	if mgr.muted {
		return nil
	}

	// Interrupt previous if exists
	if ctrl, exists := mgr.ctrl[name]; exists {
		ctrl.Streamer = nil
	}

	vol := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   mgr.sampleVols[name],
	}
	ctrl := &beep.Ctrl{Streamer: vol}
	mgr.mix.Add(ctrl)
	mgr.ctrl[name] = ctrl
	return nil
}

// PlayWithVolume plays the sample with specified volume in dB.
func (mgr *Manager) PlayWithVolume(name string, db float64) error {
	if mgr == nil {
		return nil
	}
	mgr.SetVolume(name, db)
	return mgr.Play(name)
}

// StopListed stops playback of the specified samples by name.
// If a sample is not currently playing, it is ignored.
func (mgr *Manager) StopListed(names ...string) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	for _, name := range names {
		if ctrl, ok := mgr.ctrl[name]; ok {
			ctrl.Paused = true
			ctrl.Streamer = nil
			delete(mgr.ctrl, name)
		}
	}
}

// StopAll halts playback of all currently playing samples.
func (mgr *Manager) StopAll() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	names := make([]string, 0, len(mgr.ctrl))
	for name := range mgr.ctrl {
		names = append(names, name)
	}
	mgr.mu.Unlock()
	mgr.StopListed(names...)
}

// SetMute switches all audio output off or on.
func (mgr *Manager) SetMute(muted bool) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	mgr.muted = muted
	mgr.mu.Unlock()
	if muted {
		mgr.StopAll()
	}
}

func (mgr *Manager) Muted() bool {
	if mgr == nil {
		return true
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.muted
}

// Drain waits up to d for playing samples to finish.
func (mgr *Manager) Drain(d time.Duration) {
	if mgr == nil {
		return
	}
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		mgr.mu.Lock()
		n := mgr.mix.Len()
		mgr.mu.Unlock()
		if n == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Close stops the output and frees resources.
func (mgr *Manager) Close() {
	if mgr == nil {
		return
	}
	mgr.StopAll()
	mgr.closeBackend()
	log.Println("sound: closed")
}
