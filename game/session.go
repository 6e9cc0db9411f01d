package game

import (
	"time"

	"snake-minigame/game/types"

	"github.com/google/uuid"
)

// Session is the context of one started game, including which minigame it
// belongs to.
type Session struct {
	ID        uuid.UUID
	Game      types.GameType
	StartTime time.Time
	Restarts  int
	Score     int
}

func newSession(game types.GameType) *Session {
	return &Session{
		ID:        uuid.New(),
		Game:      game,
		StartTime: time.Now(),
	}
}

// ElapsedTime returns the session duration in seconds.
func (s *Session) ElapsedTime() float64 {
	return time.Since(s.StartTime).Seconds()
}
