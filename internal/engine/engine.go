package engine

import (
	"errors"
	"strings"
	"unicode"
)

var ErrEmptyTarget = errors.New("target has no letters")
var ErrInvalidLives = errors.New("invalid life count")
var ErrInvalidGuess = errors.New("guess must be a single letter")
var ErrDuplicateGuess = errors.New("letter already guessed")
var ErrUnsupportedCommand = errors.New("unsupported command")
var ErrGameCompleted = errors.New("game already completed")

// DefaultLives is the fixed error budget for a standard game.
const DefaultLives = 6

// Placeholder hides unguessed letters in the mask.
const Placeholder = '_'

type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

type CommandType string

const (
	CmdGuessLetter CommandType = "GuessLetter"
	CmdTimeout     CommandType = "Timeout"
)

type Command struct {
	Type   CommandType
	Letter rune
}

type EventType string

const (
	EvtLetterCorrect EventType = "LetterCorrect"
	EvtLetterWrong   EventType = "LetterWrong"
	EvtLifeLost      EventType = "LifeLost"
	EvtGameWon       EventType = "GameWon"
	EvtGameLost      EventType = "GameLost"
)

type Event struct {
	Type   EventType
	Letter rune
}

// State is one in-progress game. Target is lowercase and never mutated;
// Guessed holds only lowercase letters; Lives never increases.
type State struct {
	Target  string
	Guessed map[rune]bool
	Lives   int
}

/*
	CmdGuessLetter -> EvtLetterCorrect [-> EvtGameWon]
	               -> EvtLetterWrong -> EvtLifeLost [-> EvtGameLost]
	CmdTimeout     -> EvtLifeLost [-> EvtGameLost]

	A timeout is a guaranteed miss: no letter was offered in time, so a
	life is burned without touching the guessed set.
*/

func Apply(s State, cmd Command) ([]Event, State, error) {

	if DeriveStatus(s) != StatusPlaying {
		return nil, s, ErrGameCompleted
	}

	newState := s

	switch cmd.Type {
	case CmdGuessLetter:
		letter := unicode.ToLower(cmd.Letter)
		if letter < 'a' || letter > 'z' {
			return nil, s, ErrInvalidGuess
		}
		if s.Guessed[letter] {
			return nil, s, ErrDuplicateGuess
		}

		newState.Guessed = cloneGuessed(s.Guessed)
		newState.Guessed[letter] = true

		if strings.ContainsRune(s.Target, letter) {
			events := []Event{{Type: EvtLetterCorrect, Letter: letter}}
			if allRevealed(newState) {
				events = append(events, Event{Type: EvtGameWon})
			}
			return events, newState, nil
		}

		newState.Lives--
		events := []Event{
			{Type: EvtLetterWrong, Letter: letter},
			{Type: EvtLifeLost},
		}
		if newState.Lives == 0 {
			events = append(events, Event{Type: EvtGameLost})
		}
		return events, newState, nil

	case CmdTimeout:
		newState.Lives--
		events := []Event{{Type: EvtLifeLost}}
		if newState.Lives == 0 {
			events = append(events, Event{Type: EvtGameLost})
		}
		return events, newState, nil

	default:
		return nil, s, ErrUnsupportedCommand
	}
}

// Reduce rebuilds a State by replaying an event log against a fresh game.
// Terminal status is derived from the result, so EvtGameWon/EvtGameLost
// carry no state of their own.
func Reduce(target string, lives int, events []Event) (State, error) {
	s, err := NewState(target, lives)
	if err != nil {
		return State{}, err
	}
	for _, event := range events {
		switch event.Type {
		case EvtLetterCorrect, EvtLetterWrong:
			s.Guessed[event.Letter] = true
		case EvtLifeLost:
			s.Lives--
		}
	}
	return s, nil
}

// Mask renders the target with unguessed letters hidden. Spaces and any
// other non-letter runes pass through verbatim, so the mask always has
// the same length as the target.
func Mask(s State) string {
	var b strings.Builder
	b.Grow(len(s.Target))
	for _, r := range s.Target {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
		case s.Guessed[r]:
			b.WriteRune(r)
		default:
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}
