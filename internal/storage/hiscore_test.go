package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestHiScoreFile(t *testing.T) (*HiScoreFile, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	f, err := NewHiScoreFile(filepath.Join(t.TempDir(), "scores.json"), log.New(&buf))
	if err != nil {
		t.Fatalf("NewHiScoreFile() failed: %v", err)
	}
	return f, &buf
}

func TestHiScoreFileRoundTrip(t *testing.T) {
	f, _ := newTestHiScoreFile(t)

	if err := f.Save(50); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != 50 {
		t.Errorf("Load() = %d, expected 50", got)
	}

	data, _ := os.ReadFile(f.Path())
	if string(data) != "{\n    \"hi_score\": 50\n}" {
		t.Errorf("unexpected file layout: %q", data)
	}
}

func TestHiScoreFileRecovery(t *testing.T) {
	tests := []struct {
		name    string
		content *string
	}{
		{"missing", nil},
		{"empty", ptr("")},
		{"whitespace", ptr("  \n")},
		{"malformed", ptr(`{"hi_score": "lots"`)},
		{"wrong type", ptr(`{"hi_score": "lots of points"}`)},
		{"negative", ptr(`{"hi_score": -40}`)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := newTestHiScoreFile(t)
			if tc.content != nil {
				if err := os.WriteFile(f.Path(), []byte(*tc.content), 0o600); err != nil {
					t.Fatalf("WriteFile failed: %v", err)
				}
			}

			got, err := f.Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if got != 0 {
				t.Errorf("Load() = %d, expected 0", got)
			}

			// A fresh default document replaces the bad one
			data, err := os.ReadFile(f.Path())
			if err != nil {
				t.Fatalf("default file not written: %v", err)
			}
			if string(data) != "{\n    \"hi_score\": 0\n}" {
				t.Errorf("unexpected default file: %q", data)
			}
		})
	}
}

func TestHiScoreFileUnknownKeysIgnored(t *testing.T) {
	f, _ := newTestHiScoreFile(t)
	os.WriteFile(f.Path(), []byte(`{"hi_score": 1250, "player": "ace"}`), 0o600)

	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != 1250 {
		t.Errorf("Load() = %d, expected 1250", got)
	}
}

func TestHiScoreFileUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the parent directory should be
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := NewHiScoreFile(filepath.Join(blocker, "scores.json"), log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewHiScoreFile() failed: %v", err)
	}

	if err := f.Save(10); err == nil {
		t.Error("Save() should fail when the directory cannot be created")
	}
	if _, err := f.Load(); err == nil {
		t.Error("Load() should report a read error that is not a missing file")
	}
}

func ptr(s string) *string { return &s }
