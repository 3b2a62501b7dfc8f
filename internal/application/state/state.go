package state

import "fmt"

// GameState represents the kind of mode the game is in
type GameState int

const (
	StateMenu GameState = iota
	StateLevel
	StateGameOver
	StateWin
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateLevel:
		return "Level"
	case StateGameOver:
		return "GameOver"
	case StateWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Mode is the active game mode. Level is the zero-based level index and only
// meaningful in StateLevel.
type Mode struct {
	State GameState
	Level int
}

var (
	MainMenu = Mode{State: StateMenu}
	GameOver = Mode{State: StateGameOver}
	Win      = Mode{State: StateWin}
)

// InLevel returns the mode for the level at index i
func InLevel(i int) Mode {
	return Mode{State: StateLevel, Level: i}
}

// IsLevel reports whether the mode is one of the playable levels
func (m Mode) IsLevel() bool {
	return m.State == StateLevel
}

// String names the mode the way the menus do: MainMenu, Level1, ..., GameOver, Win
func (m Mode) String() string {
	switch m.State {
	case StateMenu:
		return "MainMenu"
	case StateLevel:
		return fmt.Sprintf("Level%d", m.Level+1)
	default:
		return m.State.String()
	}
}

// Event drives mode transitions
type Event int

const (
	EventNone Event = iota
	EventConfirm
	EventSkip
	EventVictory
	EventDeath
	EventQuit
)

// String returns the string representation of the event
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventConfirm:
		return "Confirm"
	case EventSkip:
		return "Skip"
	case EventVictory:
		return "Victory"
	case EventDeath:
		return "Death"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Next is the transition function. Pairs without a rule leave the mode unchanged.
// Quit is handled by the caller and never changes the mode.
func Next(m Mode, e Event, levelCount int) Mode {
	switch m.State {
	case StateMenu:
		if e == EventConfirm && levelCount > 0 {
			return InLevel(0)
		}
	case StateLevel:
		switch e {
		case EventVictory:
			if m.Level+1 < levelCount {
				return InLevel(m.Level + 1)
			}
			return Win
		case EventSkip:
			if m.Level+1 < levelCount {
				return InLevel(m.Level + 1)
			}
			return MainMenu
		case EventDeath:
			return GameOver
		}
	case StateGameOver, StateWin:
		if e == EventConfirm {
			return MainMenu
		}
	}
	return m
}
