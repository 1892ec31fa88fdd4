package main

import (
	"flag"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"

	"berry-snake/ai"
	"berry-snake/audio"
	"berry-snake/game"
	"berry-snake/game/types"
	"berry-snake/stats"
	"berry-snake/storage"
	"berry-snake/ui"
)

func main() {
	width := flag.Int("width", 20, "Grid width in cells (10-30)")
	height := flag.Int("height", 20, "Grid height in cells (10-30)")
	highscorePath := flag.String("highscore", storage.DefaultPath, "Highscore file")
	autopilot := flag.Bool("autopilot", false, "Let the computer play")
	seed := flag.Uint64("seed", 0, "Spawn seed (0 = random)")
	mute := flag.Bool("mute", false, "Disable sound")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	cfg := game.DefaultConfig()
	cfg.Width = types.ClampDimension(*width)
	cfg.Height = types.ClampDimension(*height)
	cfg.Seed = *seed
	cfg.Store = storage.NewFileStore(*highscorePath)
	if cfg.Width != *width || cfg.Height != *height {
		log.WithFields(log.Fields{"width": cfg.Width, "height": cfg.Height}).Warn("grid size clamped")
	}

	rl.InitWindow(800, 860, "Berry Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	sound := audio.NewSoundManager(0.5)
	if !*mute {
		if err := sound.Initialize(); err != nil {
			log.WithError(err).Warn("sound disabled")
		}
	}
	defer sound.Cleanup()

	ctl := game.NewController(cfg)
	defer ctl.Close()
	session, err := ctl.Start()
	if err != nil {
		log.WithError(err).Fatal("could not start game")
	}
	updates, cancel := session.Subscribe()
	snap := session.Snapshot()

	history := stats.NewHistory()
	started := time.Now()
	recorded := false

	pilot := ai.NewAutopilot()
	if *autopilot {
		session.Steer(pilot.Next(snap))
	}

	renderer := ui.NewRenderer()
	renderer.SetSummary(history.Summary())
	last := time.Now()

	for !rl.WindowShouldClose() {
		quit := false
		for _, a := range ui.PollActions() {
			q, err := ctl.Apply(a)
			if err != nil {
				log.WithError(err).Error("action failed")
			}
			quit = quit || q
		}
		if quit {
			break
		}

		if *autopilot && snap.Over {
			if _, err := ctl.Apply(game.Restart); err != nil {
				log.WithError(err).Error("restart failed")
			}
		}

		// restart swaps the session underneath us
		if s := ctl.Session(); s != nil && s != session {
			cancel()
			session = s
			updates, cancel = session.Subscribe()
			snap = session.Snapshot()
			started = time.Now()
			recorded = false
			if *autopilot {
				session.Steer(pilot.Next(snap))
			}
		}

		select {
		case u := <-updates:
			snap = u.Snapshot
			sound.Play(u.Outcome)
			if snap.Over && !recorded {
				recorded = true
				history.Add(snap.Score, started, time.Now())
				renderer.SetSummary(history.Summary())
			}
			if *autopilot && u.Outcome != game.OutcomeSkipped && !snap.Over {
				session.Steer(pilot.Next(snap))
			}
		default:
		}

		now := time.Now()
		renderer.Draw(snap, now.Sub(last))
		last = now
	}
	cancel()
}
