package engine

import (
	"strings"
	"unicode"
)

// NewState validates and normalizes a target. The target is lowercased so
// every membership check happens in one case.
func NewState(target string, lives int) (State, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if !strings.ContainsFunc(target, unicode.IsLetter) {
		return State{}, ErrEmptyTarget
	}
	if lives < 1 || lives > DefaultLives {
		return State{}, ErrInvalidLives
	}
	return State{Target: target, Guessed: map[rune]bool{}, Lives: lives}, nil
}

func ContainsEvent(events []Event, eventType EventType) bool {
	for _, event := range events {
		if event.Type == eventType {
			return true
		}
	}
	return false
}

// DeriveStatus checks the win condition before the loss condition: a win
// depends only on letter coverage, so exhausted lives never override it.
func DeriveStatus(s State) Status {
	if allRevealed(s) {
		return StatusWon
	}
	if s.Lives <= 0 {
		return StatusLost
	}
	return StatusPlaying
}

func allRevealed(s State) bool {
	for _, r := range s.Target {
		if unicode.IsLetter(r) && !s.Guessed[r] {
			return false
		}
	}
	return true
}

func cloneGuessed(m map[rune]bool) map[rune]bool {
	out := make(map[rune]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
