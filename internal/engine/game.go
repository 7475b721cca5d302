package engine

import (
	"slices"
	"unicode"
)

type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
	OutcomeTimeout Outcome = "timeout"
)

// RoundResult is the per-turn snapshot handed back to the caller after a
// guess or timeout is processed.
type RoundResult struct {
	Outcome  Outcome
	Letter   rune // zero on timeout
	LifeLost bool
	Mask     string
	Lives    int
	Status   Status
}

// Game owns the state of exactly one game and keeps the event log as it
// grows. It is not safe for concurrent use; one instance serves one
// player, one game.
type Game struct {
	state  State
	events []Event
}

// New starts a game with the default six lives.
func New(target string) (*Game, error) {
	return NewGame(target, DefaultLives)
}

func NewGame(target string, lives int) (*Game, error) {
	s, err := NewState(target, lives)
	if err != nil {
		return nil, err
	}
	return &Game{state: s}, nil
}

// SubmitGuess processes a single letter. Case is folded before any set
// membership check. Duplicate and invalid guesses leave the state (and
// the life count) untouched.
func (g *Game) SubmitGuess(letter rune) (RoundResult, error) {
	events, next, err := Apply(g.state, Command{Type: CmdGuessLetter, Letter: letter})
	if err != nil {
		return RoundResult{}, err
	}
	g.state = next
	g.events = append(g.events, events...)

	res := g.snapshot()
	res.Letter = unicode.ToLower(letter)
	if ContainsEvent(events, EvtLetterCorrect) {
		res.Outcome = OutcomeCorrect
	} else {
		res.Outcome = OutcomeWrong
		res.LifeLost = true
	}
	return res, nil
}

// SubmitTimeout burns a life for a turn where no guess arrived in time.
func (g *Game) SubmitTimeout() (RoundResult, error) {
	events, next, err := Apply(g.state, Command{Type: CmdTimeout})
	if err != nil {
		return RoundResult{}, err
	}
	g.state = next
	g.events = append(g.events, events...)

	res := g.snapshot()
	res.Outcome = OutcomeTimeout
	res.LifeLost = true
	return res, nil
}

func (g *Game) snapshot() RoundResult {
	return RoundResult{
		Mask:   Mask(g.state),
		Lives:  g.state.Lives,
		Status: DeriveStatus(g.state),
	}
}

func (g *Game) Mask() string { return Mask(g.state) }

func (g *Game) Status() Status { return DeriveStatus(g.state) }

func (g *Game) Lives() int { return g.state.Lives }

// Target reveals the answer; callers show it only on a terminal screen.
func (g *Game) Target() string { return g.state.Target }

// Guessed returns every letter tried so far, sorted.
func (g *Game) Guessed() []rune {
	out := make([]rune, 0, len(g.state.Guessed))
	for r := range g.state.Guessed {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Events returns a copy of the event log accumulated so far.
func (g *Game) Events() []Event {
	return slices.Clone(g.events)
}
