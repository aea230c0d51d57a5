package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewSSHServerNeedsScoresDatabase(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultSSHServerConfig()
	cfg.DBPath = filepath.Join(blocker, "scores.db")
	cfg.HostKeyPath = filepath.Join(dir, "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err == nil {
		srv.Shutdown()
		t.Fatal("expected an error when the scores database cannot be opened")
	}
}
