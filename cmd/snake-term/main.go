package main

import (
	"flag"
	"os"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"berry-snake/audio"
	"berry-snake/game"
	"berry-snake/game/types"
	"berry-snake/stats"
	"berry-snake/storage"
	"berry-snake/term"
)

func main() {
	width := flag.Int("width", 20, "Grid width in cells (10-30)")
	height := flag.Int("height", 20, "Grid height in cells (10-30)")
	highscorePath := flag.String("highscore", storage.DefaultPath, "Highscore file")
	seed := flag.Uint64("seed", 0, "Spawn seed (0 = random)")
	mute := flag.Bool("mute", false, "Disable sound")
	logFile := flag.String("log-file", "snake-term.log", "Log file, the terminal is taken by the game")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.WithError(err).Fatal("could not open log file")
	}
	defer f.Close()
	log.SetOutput(f)

	cfg := game.DefaultConfig()
	cfg.Width = types.ClampDimension(*width)
	cfg.Height = types.ClampDimension(*height)
	cfg.Seed = *seed
	cfg.Store = storage.NewFileStore(*highscorePath)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("could not create screen")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("could not init screen")
	}
	defer screen.Fini()

	sound := audio.NewSoundManager(0.5)
	if !*mute {
		if err := sound.Initialize(); err != nil {
			log.WithError(err).Warn("sound disabled")
		}
	}
	defer sound.Cleanup()

	ctl := game.NewController(cfg)
	defer ctl.Close()

	if err := term.NewApp(screen, ctl, sound, stats.NewHistory()).Run(); err != nil {
		log.WithError(err).Error("game stopped")
	}
}
