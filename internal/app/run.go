// Package app wires the game loop, the input reader, the renderer and the
// sound manager together.
package app

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vinser/mazechase/internal/ambilite"
	"github.com/vinser/mazechase/internal/engine"
	"github.com/vinser/mazechase/internal/flags"
	"github.com/vinser/mazechase/internal/geoip"
	"github.com/vinser/mazechase/internal/input"
	"github.com/vinser/mazechase/internal/model/play"
	"github.com/vinser/mazechase/internal/sound"
	"github.com/vinser/mazechase/internal/state"
	"github.com/vinser/mazechase/internal/style"
)

// drainTimeout bounds how long the last effect may keep playing after the game.
const drainTimeout = time.Second

// Run plays one game in the terminal and returns how it ended.
func Run(ctx context.Context, fl *flags.Flags, version string) (engine.Result, error) {
	closeLog, err := setupLog(fl.Log)
	if err != nil {
		return engine.Result{}, err
	}
	defer closeLog()
	log.Printf("app: mazechase %s, session %s", version, uuid.NewString())

	st := state.Load()
	changed := applyFlags(st, fl)
	if locate(ctx, st, geoip.Locate) {
		changed = true
	}
	if changed {
		if err := st.Save(); err != nil {
			log.Printf("app: save state: %v", err)
		}
	}

	lv, err := loadLevel(fl)
	if err != nil {
		return engine.Result{}, err
	}

	var mgr *sound.Manager
	if !st.Mute {
		mgr, err = sound.NewManager(sound.CommonSampleRate)
		if err != nil {
			log.Printf("app: sound disabled: %v", err)
			mgr = nil
		}
	}
	defer mgr.Close()

	brightness := ambilite.Brightness(st.NightOption, time.Now(), st.Lat, st.Lon, st.Timezone)
	palette := style.NewPalette(brightness)

	tty, err := input.OpenTerminal(os.Stdin)
	if err != nil {
		return engine.Result{}, err
	}
	defer tty.Close()

	// The reader owns stdin, so the program gets none.
	p := tea.NewProgram(NewModel(palette), tea.WithAltScreen(), tea.WithInput(nil))

	dirs := input.NewChannel()
	game := engine.New(lv, engine.Config{
		Renderer: play.NewFrontend(p),
		Input:    dirs,
		Pace:     paceFor(fl.Tick, st.AxisPace),
		Listener: soundListener(mgr),
	})

	eg, egCtx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(egCtx)
	defer cancel()
	input.WatchCancel(runCtx, tty)

	eg.Go(func() error {
		return input.NewReader(tty, dirs).Run(runCtx)
	})

	var res engine.Result
	eg.Go(func() error {
		var err error
		res, err = game.Run(runCtx)
		return err
	})

	eg.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return errors.Wrap(err, "renderer")
	})

	eg.Go(func() error {
		<-runCtx.Done()
		p.Quit()
		return nil
	})

	err = eg.Wait()
	if errors.Is(err, input.ErrQuit) || errors.Is(err, context.Canceled) {
		err = nil
	}
	if res.Outcome == engine.Quit {
		_ = mgr.Play(sound.QUIT)
	}
	mgr.Drain(drainTimeout)
	return res, err
}

// setupLog sends the standard logger to path, or nowhere when path is empty.
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "mazechase")
	if err != nil {
		return nil, errors.Wrap(err, "open log")
	}
	return func() { _ = f.Close() }, nil
}
