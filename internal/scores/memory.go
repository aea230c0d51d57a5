package scores

import "sync"

// MemoryStore is a HighScoreStore that lives as long as the process.
type MemoryStore struct {
	mu   sync.Mutex
	high map[string]int
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{high: make(map[string]int)}
}

// HighScore returns the best score stored under key, or 0.
func (m *MemoryStore) HighScore(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.high[key], nil
}

// SetHighScore keeps score if it beats the stored one and returns the best.
func (m *MemoryStore) SetHighScore(key string, score int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.high[key] {
		m.high[key] = score
	}
	return m.high[key], nil
}
