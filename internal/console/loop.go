package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wordgame/internal/engine"
	"wordgame/internal/words"
)

var ErrInputClosed = errors.New("input stream closed")

// GuessTimeout is the fixed per-guess deadline.
const GuessTimeout = 15 * time.Second

const quitToken = "quit"

// Loop is the interactive front end. It owns the deadline and all I/O;
// the engine only ever sees a guess or a timeout signal.
type Loop struct {
	reader  *lineReader
	out     io.Writer
	source  words.Source
	log     *zap.Logger
	timeout time.Duration
}

func New(source words.Source, in io.Reader, out io.Writer, log *zap.Logger) *Loop {
	return &Loop{
		reader:  newLineReader(in),
		out:     out,
		source:  source,
		log:     log,
		timeout: GuessTimeout,
	}
}

// Run plays games until the player quits, declines another round, or the
// input stream closes mid-game.
func (l *Loop) Run() error {
	l.printWelcome()
	for {
		quit, err := l.playGame()
		if err != nil || quit {
			return err
		}
		again, ok := l.promptPlayAgain()
		if !again || !ok {
			break
		}
	}
	l.printf("\nThanks for playing!\n")
	return nil
}

// playGame runs one full game. quit is true when the player typed the
// quit token; an error means the session cannot continue.
func (l *Loop) playGame() (quit bool, err error) {
	difficulty, quit, err := l.promptDifficulty()
	if quit || err != nil {
		return quit, err
	}

	target, err := l.source.PickTarget(difficulty)
	if err != nil {
		return false, fmt.Errorf("pick target: %w", err)
	}

	game, err := engine.New(target)
	if err != nil {
		return false, fmt.Errorf("new game: %w", err)
	}

	log := l.log.With(
		zap.String("game_id", uuid.NewString()),
		zap.String("difficulty", string(difficulty)),
	)
	log.Info("game started",
		zap.Int("target_len", len(game.Target())),
		zap.Int("lives", game.Lives()),
	)

	for game.Status() == engine.StatusPlaying {
		l.printBoard(game)

		line, ok, timedOut := l.reader.ReadLineTimeout(l.timeout)
		if !ok {
			return false, ErrInputClosed
		}

		if timedOut {
			res, err := game.SubmitTimeout()
			if err != nil {
				return false, err
			}
			l.printf("\nTime's up! You lose a life. (%d left)\n", res.Lives)
			log.Debug("timeout", zap.Int("lives", res.Lives))
			continue
		}

		token := strings.ToLower(strings.TrimSpace(line))
		if token == quitToken {
			l.printf("\nThanks for playing!\n")
			log.Info("player quit")
			return true, nil
		}
		if len(token) != 1 {
			l.printf("Please enter exactly one letter.\n")
			continue
		}

		res, err := game.SubmitGuess(rune(token[0]))
		switch {
		case errors.Is(err, engine.ErrInvalidGuess):
			l.printf("Please enter exactly one letter.\n")
			continue
		case errors.Is(err, engine.ErrDuplicateGuess):
			l.printf("You already tried %q. No life lost.\n", token)
			continue
		case err != nil:
			return false, err
		}

		if res.Outcome == engine.OutcomeCorrect {
			l.printf("Letter found!\n")
		} else {
			l.printf("Sorry, %q is not in the answer. (%d lives left)\n", token, res.Lives)
		}
		log.Debug("guess",
			zap.String("letter", string(res.Letter)),
			zap.String("outcome", string(res.Outcome)),
			zap.Int("lives", res.Lives),
		)
	}

	l.printResult(game)
	log.Info("game finished",
		zap.String("status", string(game.Status())),
		zap.Int("lives", game.Lives()),
	)
	return false, nil
}

func (l *Loop) promptDifficulty() (d words.Difficulty, quit bool, err error) {
	for {
		l.printf("\nChoose difficulty:\n")
		l.printf("  1. Basic (single words)\n")
		l.printf("  2. Intermediate (phrases)\n")
		l.printf("Your choice: ")

		line, ok := l.reader.ReadLine()
		if !ok {
			return "", false, ErrInputClosed
		}
		if strings.EqualFold(strings.TrimSpace(line), quitToken) {
			l.printf("\nThanks for playing!\n")
			return "", true, nil
		}

		d, err := words.ParseDifficulty(line)
		if err != nil {
			l.printf("Invalid choice, try \"basic\" or \"intermediate\".\n")
			continue
		}
		return d, false, nil
	}
}

// promptPlayAgain returns ok=false when the stream closed, which ends
// the session the same way declining does.
func (l *Loop) promptPlayAgain() (again, ok bool) {
	for {
		l.printf("\nPlay again? (y/n): ")
		line, ok := l.reader.ReadLine()
		if !ok {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		}
		l.printf("Please answer \"y\" or \"n\".\n")
	}
}

func (l *Loop) printWelcome() {
	l.printf("%s\n", rule)
	l.printf("WELCOME TO HANGMAN\n")
	l.printf("%s\n", rule)
	l.printf("Guess the hidden word or phrase letter by letter.\n")
	l.printf("You have %d lives and %d seconds per guess.\n",
		engine.DefaultLives, int(GuessTimeout.Seconds()))
	l.printf("Type %q at any prompt to exit.\n", quitToken)
}

func (l *Loop) printBoard(game *engine.Game) {
	l.printf("\n%s\n", rule)
	l.printf("Lives:   %d/%d\n", game.Lives(), engine.DefaultLives)
	l.printf("Word:    %s\n", spacedMask(game.Mask()))
	l.printf("Guessed: %s\n", guessedList(game.Guessed()))
	l.printf("%s\n", rule)
	l.printf("You have %d seconds. Your guess: ", int(l.timeout.Seconds()))
}

func (l *Loop) printResult(game *engine.Game) {
	l.printf("\n%s\n", rule)
	if game.Status() == engine.StatusWon {
		l.printf("CONGRATULATIONS, YOU WON!\n")
		l.printf("You guessed: %s\n", game.Target())
	} else {
		l.printf("GAME OVER!\n")
		l.printf("The answer was: %s\n", game.Target())
	}
	l.printf("%s\n", rule)
}

func (l *Loop) printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}
