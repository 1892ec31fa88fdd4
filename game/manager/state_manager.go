package manager

import (
	log "github.com/sirupsen/logrus"
)

// HighscoreStore persists the single highscore value.
type HighscoreStore interface {
	LoadHighscore() (int, error)
	SaveHighscore(score int) error
}

// StateManager tracks the running score and the all-time highscore.
type StateManager struct {
	store     HighscoreStore
	score     int
	highScore int
}

// NewStateManager loads the stored highscore. A missing store, a read error or a
// negative value all start from zero.
func NewStateManager(store HighscoreStore) *StateManager {
	sm := &StateManager{store: store}
	if store == nil {
		return sm
	}

	high, err := store.LoadHighscore()
	if err != nil {
		log.WithError(err).Warn("highscore unavailable, starting from 0")
		return sm
	}
	if high > 0 {
		sm.highScore = high
	}
	return sm
}

// AddScore awards points and persists a new highscore when it is exceeded.
func (sm *StateManager) AddScore(points int) {
	sm.score += points
	if sm.score > sm.highScore {
		sm.highScore = sm.score
		sm.persist()
	}
}

// Penalize removes points, never dropping below zero.
func (sm *StateManager) Penalize(points int) {
	sm.score -= points
	if sm.score < 0 {
		sm.score = 0
	}
}

func (sm *StateManager) persist() {
	if sm.store == nil {
		return
	}
	if err := sm.store.SaveHighscore(sm.highScore); err != nil {
		log.WithError(err).WithField("highscore", sm.highScore).Warn("could not persist highscore")
	}
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}
