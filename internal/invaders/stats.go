package invaders

// Stats tracks the scoring and progression counters of a session.
//
// Score and level reset on every new game. MaxScore survives restarts for
// as long as the process runs; HiScore is loaded from and saved to a
// HiScoreRecord by the frontend.
type Stats struct {
	Score    int
	MaxScore int
	HiScore  int
	Lives    int
	Level    int
}

// NewStats returns stats for a session whose persisted best is hiScore.
func NewStats(lives, hiScore int) Stats {
	s := Stats{HiScore: hiScore}
	s.Reset(lives)
	return s
}

// Reset starts a new game. MaxScore and HiScore are kept.
func (s *Stats) Reset(lives int) {
	s.Score = 0
	s.Lives = lives
	s.Level = 1
}

// AddKills awards points for destroyed aliens and raises the ceilings.
// It reports whether the persisted hi-score was beaten.
func (s *Stats) AddKills(kills, points int) bool {
	if kills <= 0 {
		return false
	}
	s.Score += kills * points
	if s.Score > s.MaxScore {
		s.MaxScore = s.Score
	}
	if s.Score > s.HiScore {
		s.HiScore = s.Score
		return true
	}
	return false
}

// LoseLife removes one life and reports whether any remain.
func (s *Stats) LoseLife() bool {
	if s.Lives > 0 {
		s.Lives--
	}
	return s.Lives > 0
}

// NextLevel advances the level counter.
func (s *Stats) NextLevel() {
	s.Level++
}

// HiScoreRecord is a durable store for the single best score.
type HiScoreRecord interface {
	Load() (int, error)
	Save(score int) error
}
