// Package session connects a running game to its side effects: sound,
// the persisted hi-score, the score history and the session log.
// Every frontend feeds its step results through a Recorder.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invaders"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// Options wires a Recorder. Every field is optional.
type Options struct {
	GameID string
	Store  *storage.Store
	Record invaders.HiScoreRecord
	Audio  audio.Player
	Logger *log.Logger
}

// Recorder reacts to game events. Persistence failures are logged and
// never interrupt play.
type Recorder struct {
	gameID string
	store  *storage.Store
	record invaders.HiScoreRecord
	player audio.Player
	logger *log.Logger
	saved  bool // Current battle already written to history
}

// NewRecorder creates a recorder, filling defaults for missing options.
func NewRecorder(opts Options) *Recorder {
	r := &Recorder{
		gameID: opts.GameID,
		store:  opts.Store,
		record: opts.Record,
		player: opts.Audio,
		logger: opts.Logger,
	}
	if r.player == nil {
		r.player = audio.Nop{}
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	return r
}

// LoadHiScore reads the persisted hi-score. An unreadable record counts as 0.
func (r *Recorder) LoadHiScore() int {
	if r.record == nil {
		return 0
	}
	score, err := r.record.Load()
	if err != nil {
		r.logger.Warn("hi-score unavailable", "error", err)
		return 0
	}
	return score
}

// Handle processes the events of one frame.
func (r *Recorder) Handle(result core.StepResult) {
	audio.PlayEvents(r.player, result.Events)

	st := result.State
	for _, e := range result.Events {
		switch e {
		case core.EventStarted:
			r.saved = false
			r.logger.Info("battle started", "lives", st.Lives)
		case core.EventLifeLost:
			r.logger.Info("life lost", "lives", st.Lives, "score", st.Score)
		case core.EventLevelCleared:
			r.logger.Info("level cleared", "level", st.Level, "score", st.Score)
		case core.EventHiScore:
			r.saveHiScore(st.HiScore)
		case core.EventGameOver:
			r.logger.Info("game over", "score", st.Score, "level", st.Level)
			r.saveHistory(st)
		}
	}
}

// Abandon records a battle that ends without a game over, on quit or
// when the playfield is rebuilt. Inactive games are ignored.
func (r *Recorder) Abandon(st core.GameState) {
	if !st.Active || r.saved {
		return
	}
	r.logger.Info("battle abandoned", "score", st.Score, "level", st.Level)
	r.saveHistory(st)
}

// Close releases the audio device.
func (r *Recorder) Close() {
	r.player.Close()
}

func (r *Recorder) saveHiScore(score int) {
	if r.record == nil {
		return
	}
	if err := r.record.Save(score); err != nil {
		r.logger.Error("saving hi-score", "score", score, "error", err)
	}
}

// saveHistory adds the battle to the score history once.
func (r *Recorder) saveHistory(st core.GameState) {
	if r.saved {
		return
	}
	r.saved = true
	if r.store == nil || st.Score <= 0 {
		return
	}
	if _, err := r.store.SaveScore(r.gameID, st.Score, st.Level); err != nil {
		r.logger.Error("saving score", "score", st.Score, "error", err)
	}
}
