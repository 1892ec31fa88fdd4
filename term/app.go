package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"berry-snake/audio"
	"berry-snake/fx"
	"berry-snake/game"
	"berry-snake/stats"
)

// App drives a Controller from a tcell screen.
type App struct {
	screen  tcell.Screen
	ctl     *game.Controller
	sound   *audio.SoundManager
	pulse   *fx.BerryPulse
	history *stats.History
}

func NewApp(screen tcell.Screen, ctl *game.Controller, sound *audio.SoundManager, history *stats.History) *App {
	return &App{
		screen:  screen,
		ctl:     ctl,
		sound:   sound,
		pulse:   fx.NewBerryPulse(),
		history: history,
	}
}

// record adds a finished game to the history.
func (a *App) record(s game.Snapshot, started time.Time) {
	a.history.Add(s.Score, started, time.Now())
	log.WithFields(log.Fields{"score": s.Score, "games": a.history.Summary().Games}).Debug("game recorded")
}

// Run blocks until the player quits or the screen is finalized.
func (a *App) Run() error {
	session := a.ctl.Session()
	if session == nil {
		var err error
		if session, err = a.ctl.Start(); err != nil {
			return err
		}
	}
	updates, cancel := session.Subscribe()
	defer func() { cancel() }()
	snap := session.Snapshot()
	started := time.Now()
	recorded := false

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	frame := time.NewTicker(game.DefaultConfig().FrameInterval)
	defer frame.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				done, err := a.ctl.Apply(ActionForKey(ev.Key(), ev.Rune()))
				if err != nil {
					log.WithError(err).Error("action failed")
				}
				if done {
					return nil
				}
			case *tcell.EventResize:
				a.screen.Clear()
				a.screen.Sync()
			}

			if s := a.ctl.Session(); s != nil && s != session {
				cancel()
				session = s
				updates, cancel = session.Subscribe()
				snap = session.Snapshot()
				started = time.Now()
				recorded = false
				a.pulse.Reset()
			}

		case u := <-updates:
			snap = u.Snapshot
			a.sound.Play(u.Outcome)
			if snap.Over && !recorded {
				recorded = true
				a.record(snap, started)
			}

		case now := <-frame.C:
			pulse := float32(1)
			if snap.Berry != nil {
				pulse = a.pulse.Update(now.Sub(last), snap.Berry.Remaining)
			} else {
				a.pulse.Reset()
			}
			last = now
			Draw(a.screen, snap, pulse)
			DrawSummary(a.screen, snap.Height, a.history.Summary())
			a.screen.Show()
		}
	}
}
