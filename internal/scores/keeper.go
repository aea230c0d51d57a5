// Package scores keeps the running score of a session and the best score
// across sessions.
package scores

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrNoStore is returned when a Keeper is built without a store.
var ErrNoStore = errors.New("scores: no high score store")

// HighScoreStore persists the best score under a key.
type HighScoreStore interface {
	HighScore(key string) (int, error)
	SetHighScore(key string, score int) (int, error)
}

// Keeper tracks the current score and the high score. The high score is
// written through to the store each time the current score passes it.
type Keeper struct {
	store  HighScoreStore
	key    string
	logger *log.Logger

	score int
	high  int
}

// NewKeeper loads the stored high score for key. Use NewMemoryStore when
// scores should not outlive the process.
func NewKeeper(store HighScoreStore, key string, logger *log.Logger) (*Keeper, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	high, err := store.HighScore(key)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot load high score: %w", err)
	}
	return &Keeper{store: store, key: key, logger: logger, high: high}, nil
}

// Add increases the score and returns the new total. Negative amounts are
// ignored so the score never decreases within a session.
func (k *Keeper) Add(points int) int {
	if points <= 0 {
		return k.score
	}
	k.score += points
	if k.score > k.high {
		k.high = k.score
		k.persist()
	}
	return k.score
}

func (k *Keeper) persist() {
	stored, err := k.store.SetHighScore(k.key, k.high)
	if err != nil {
		k.logger.Warn("cannot persist high score", "score", k.high, "err", err)
		return
	}
	// Another session sharing the key may hold a better score
	if stored > k.high {
		k.high = stored
	}
}

// Score returns the current score.
func (k *Keeper) Score() int {
	return k.score
}

// Reset zeroes the current score. The high score is kept.
func (k *Keeper) Reset() {
	k.score = 0
}

// High returns the best score seen.
func (k *Keeper) High() int {
	return k.high
}
