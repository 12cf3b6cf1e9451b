package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-track/audio"
	"github.com/lixenwraith/tile-track/generator"
	"github.com/lixenwraith/tile-track/grid"
	"github.com/lixenwraith/tile-track/parameter"
	"github.com/lixenwraith/tile-track/render"
	"github.com/lixenwraith/tile-track/track"
)

// Viewer owns the screen and the current generation
type Viewer struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	cue      *audio.Cue

	cfg   generator.Config
	res   *generator.Result
	calls []render.DrawCall
	err   error // last failed regeneration, cleared on success

	debug     bool
	buttons   tcell.ButtonMask // held mouse buttons, clicks fire on press only
	lastRegen time.Time
	now       func() time.Time
}

// NewViewer generates the first track for cfg. cue may be nil.
func NewViewer(screen tcell.Screen, cfg generator.Config, cue *audio.Cue) (*Viewer, error) {
	v := &Viewer{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		cue:      cue,
		now:      time.Now,
	}
	res, err := generator.Generate(cfg)
	if err != nil {
		return nil, err
	}
	v.cfg, v.res = cfg, res
	v.calls = render.BuildDrawList(res)
	return v, nil
}

// regenerate swaps in a new result for cfg. On failure the previous track stays on screen.
func (v *Viewer) regenerate(cfg generator.Config) {
	t := v.now()
	if !v.lastRegen.IsZero() && t.Sub(v.lastRegen) < parameter.RegenerateDebounce {
		return
	}
	v.lastRegen = t

	res, err := generator.Generate(cfg)
	if err != nil {
		log.Printf("regenerate seed %d length %d: %v", cfg.Seed, cfg.Length, err)
		v.err = err
		if v.cue != nil {
			v.cue.PlayFailure()
		}
		return
	}
	v.cfg, v.res, v.err = cfg, res, nil
	v.calls = render.BuildDrawList(res)
	if res.DecorWarning != nil {
		log.Printf("seed %d: %v", cfg.Seed, res.DecorWarning)
	}
	if v.cue != nil {
		v.cue.PlaySuccess()
	}
}

// handleEvent applies one input event; false means quit
func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.renderer.Pan(grid.Point{Y: -parameter.PanStep})
	case tcell.KeyDown:
		v.renderer.Pan(grid.Point{Y: parameter.PanStep})
	case tcell.KeyLeft:
		v.renderer.Pan(grid.Point{X: -parameter.PanStep})
	case tcell.KeyRight:
		v.renderer.Pan(grid.Point{X: parameter.PanStep})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'n', ' ':
			v.regenerate(v.cfg.WithSeed(1))
		case 'p':
			v.regenerate(v.cfg.WithSeed(-1))
		case '+', '=':
			v.regenerate(v.cfg.WithLength(1))
		case '-', '_':
			v.regenerate(v.cfg.WithLength(-1))
		case 'd':
			v.debug = !v.debug
		case 'c':
			v.renderer.ResetView()
		}
	}
	return true
}

// handleMouse maps clicks the way the desktop viewer did: primary steps the seed,
// secondary grows the track and middle shrinks it
func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	held := ev.Buttons()
	pressed := held &^ v.buttons
	v.buttons = held

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		v.regenerate(v.cfg.WithSeed(1))
	case pressed&tcell.ButtonSecondary != 0:
		v.regenerate(v.cfg.WithLength(1))
	case pressed&tcell.ButtonMiddle != 0:
		v.regenerate(v.cfg.WithLength(-1))
	}
}

// status composes the bottom line
func (v *Viewer) status() string {
	s := render.StatusLine(v.res)
	if v.debug {
		s += parameter.DebugIndicator
	}
	if v.cue != nil && v.cue.Active() {
		s += parameter.AudioStr
	}
	if v.err != nil {
		var ue *track.UngenerableError
		if errors.As(v.err, &ue) {
			s += fmt.Sprintf(" length %d ungenerable ", ue.Length)
		} else {
			s += " " + v.err.Error() + " "
		}
	}
	return s
}

func (v *Viewer) draw() {
	v.renderer.RenderFrame(v.res, v.calls, v.debug, v.status())
}

// run polls input on a goroutine and redraws on every event and tick until quit
func (v *Viewer) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	v.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !v.handleEvent(ev) {
				return
			}
			v.draw()
		case <-ticker.C:
			v.draw()
		}
	}
}
