package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/invaders"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// Hi-score record backends
const (
	recordJSON   = "json"
	recordSQLite = "sqlite"
)

const defaultLogFile = "~/.invaders/invaders.log"

// hiScoreKey is the sqlite records key holding the hi-score.
const hiScoreKey = "hi_score"

// app holds everything a command needs, wired from flags and config.
type app struct {
	base   config.Config // Loaded config before the difficulty preset
	cfg    config.Config
	logger *log.Logger
	store  *storage.Store
	record invaders.HiScoreRecord

	logFile io.Closer
}

// newApp loads the config and opens storage. When toFile is set the logger
// writes to --log-file so it does not corrupt the terminal UI.
func newApp(toFile bool) (*app, error) {
	a := &app{}

	logger, closer, err := newLogger(toFile)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	a.logFile = closer

	base, err := config.Load(flagConfig)
	if err != nil {
		a.close()
		return nil, err
	}
	applyFlags(&base)
	a.base = base

	preset := base.Difficulty.Preset
	if flagDifficulty != "" {
		preset = flagDifficulty
	}
	if err := a.usePreset(preset); err != nil {
		a.close()
		return nil, err
	}

	store, err := storage.Open(a.cfg.Storage.HistoryDB)
	if err != nil {
		// Play goes on without history
		logger.Warn("could not open scores database", "error", err)
	}
	a.store = store

	record, err := a.openRecord()
	if err != nil {
		a.close()
		return nil, err
	}
	a.record = record

	logger.Debug("config loaded", "difficulty", a.cfg.Difficulty.Preset, "record", flagRecord)
	return a, nil
}

// usePreset rebuilds the effective config from the base and a preset name.
func (a *app) usePreset(name string) error {
	preset := config.ParsePreset(name)
	if preset == "" && name != "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
	cfg := a.base
	config.ApplyPreset(&cfg, preset)
	a.cfg = cfg
	return nil
}

// applyFlags overrides config values with explicitly set global flags.
func applyFlags(cfg *config.Config) {
	if flagFPS > 0 {
		cfg.Terminal.Screen.FPS = flagFPS
		cfg.Window.Screen.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.HistoryDB = flagDBPath
	}
	if flagScoresFile != "" {
		cfg.Storage.ScoresFile = flagScoresFile
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
}

// openRecord returns the hi-score record chosen by --record.
func (a *app) openRecord() (invaders.HiScoreRecord, error) {
	switch flagRecord {
	case recordSQLite:
		if a.store != nil {
			return a.store.Record(hiScoreKey), nil
		}
		a.logger.Warn("sqlite record unavailable, using JSON file")
		return storage.NewHiScoreFile(a.cfg.Storage.ScoresFile, a.logger)
	case recordJSON, "":
		return storage.NewHiScoreFile(a.cfg.Storage.ScoresFile, a.logger)
	default:
		return nil, fmt.Errorf("unknown record backend %q (want %s or %s)", flagRecord, recordJSON, recordSQLite)
	}
}

// newAudio opens the sound device, or a silent player when muted.
func (a *app) newAudio() audio.Player {
	return audio.New(a.cfg.Audio, a.logger)
}

// hiScore returns the persisted hi-score for display.
func (a *app) hiScore() int {
	score, err := a.record.Load()
	if err != nil {
		a.logger.Warn("hi-score unavailable", "error", err)
		return 0
	}
	return score
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Error("closing scores database", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// newLogger creates the session logger at --log-level.
func newLogger(toFile bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	if toFile {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			w = io.Discard
		} else {
			w, closer = f, f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	return logger, closer, nil
}

func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
