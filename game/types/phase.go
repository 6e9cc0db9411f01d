package types

// Phase is the lifecycle state of a snake session.
type Phase int

const (
	NotStarted Phase = iota
	WaitPlayer
	Playing
	GameOver
	Win
	ExitModal
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case WaitPlayer:
		return "wait_player"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	case Win:
		return "win"
	case ExitModal:
		return "exit_modal"
	default:
		return "unknown"
	}
}

// GameType identifies a minigame hosted by the arcade.
type GameType int

const (
	Snake GameType = iota
)

func (g GameType) String() string {
	switch g {
	case Snake:
		return "Snake"
	default:
		return "Unknown"
	}
}
