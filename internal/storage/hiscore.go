package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/invaders"
)

// scoreDoc is the on-disk layout of the hi-score file.
type scoreDoc struct {
	HiScore int `json:"hi_score"`
}

// HiScoreFile keeps the hi-score in a small JSON document.
type HiScoreFile struct {
	path   string
	logger *log.Logger
}

// NewHiScoreFile returns a record stored at path. A leading ~ is expanded.
func NewHiScoreFile(path string, logger *log.Logger) (*HiScoreFile, error) {
	p, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &HiScoreFile{path: p, logger: logger}, nil
}

// Path returns the resolved file path.
func (f *HiScoreFile) Path() string {
	return f.path
}

// Load reads the hi-score. A missing, empty, malformed or negative record yields 0
// and is replaced by a fresh default document; a failed rewrite is logged.
func (f *HiScoreFile) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		f.logger.Debug("hi-score file missing, creating", "path", f.path)
		f.reset()
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		f.logger.Warn("hi-score file empty, resetting", "path", f.path)
		f.reset()
		return 0, nil
	}

	var doc scoreDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		f.logger.Warn("hi-score file malformed, resetting", "path", f.path, "error", err)
		f.reset()
		return 0, nil
	}
	if doc.HiScore < 0 {
		f.logger.Warn("hi-score negative, resetting", "path", f.path, "hi_score", doc.HiScore)
		f.reset()
		return 0, nil
	}
	return doc.HiScore, nil
}

// reset writes a zero record. Write failures are logged, not returned.
func (f *HiScoreFile) reset() {
	if err := f.Save(0); err != nil {
		f.logger.Error("cannot write default hi-score file", "error", err)
	}
}

// Save writes the hi-score as an indented JSON document.
func (f *HiScoreFile) Save(score int) error {
	data, err := json.MarshalIndent(scoreDoc{HiScore: score}, "", "    ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode hi-score: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", f.path, err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", f.path, err)
	}
	return nil
}

var _ invaders.HiScoreRecord = (*HiScoreFile)(nil)
