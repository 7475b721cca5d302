package console

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wordgame/internal/words"
)

type fixedSource struct {
	target string
}

func (s fixedSource) PickTarget(words.Difficulty) (string, error) {
	return s.target, nil
}

// blockingReader never returns, standing in for a player who walks away.
type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}

func newTestLoop(target string, input io.Reader) (*Loop, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(fixedSource{target: target}, input, out, zap.NewNop()), out
}

func TestRun_WinAndDecline(t *testing.T) {
	input := strings.NewReader("basic\ng\no\nn\n")
	loop, out := newTestLoop("go", input)

	require.NoError(t, loop.Run())

	assert.Contains(t, out.String(), "CONGRATULATIONS, YOU WON!")
	assert.Contains(t, out.String(), "You guessed: go")
	assert.Contains(t, out.String(), "Play again?")
}

func TestRun_QuitAtDifficultyPrompt(t *testing.T) {
	input := strings.NewReader("QUIT\n")
	loop, out := newTestLoop("go", input)

	require.NoError(t, loop.Run())
	assert.Contains(t, out.String(), "Thanks for playing!")
	assert.NotContains(t, out.String(), "Your guess")
}

func TestRun_QuitMidGame(t *testing.T) {
	input := strings.NewReader("basic\ng\nquit\n")
	loop, out := newTestLoop("go", input)

	require.NoError(t, loop.Run())
	assert.Contains(t, out.String(), "Letter found!")
	assert.Contains(t, out.String(), "Thanks for playing!")
	assert.NotContains(t, out.String(), "GAME OVER")
}

func TestRun_InvalidAndDuplicateGuessesCostNothing(t *testing.T) {
	input := strings.NewReader("basic\n42\nc\nc\na\nt\nn\n")
	loop, out := newTestLoop("cat", input)

	require.NoError(t, loop.Run())

	assert.Contains(t, out.String(), "Please enter exactly one letter.")
	assert.Contains(t, out.String(), `You already tried "c". No life lost.`)
	assert.Contains(t, out.String(), "CONGRATULATIONS, YOU WON!")
	// Full lives on the last board: nothing along the way cost a life.
	assert.Contains(t, out.String(), "Lives:   6/6")
	assert.NotContains(t, out.String(), "Lives:   5/6")
}

func TestRun_BadDifficultyReprompts(t *testing.T) {
	input := strings.NewReader("expert\nIntermediate\nquit\n")
	loop, out := newTestLoop("hello world", input)

	require.NoError(t, loop.Run())
	assert.Contains(t, out.String(), "Invalid choice")
	assert.Contains(t, out.String(), "_ _ _ _ _")
}

func TestRun_InputClosedMidGameIsFatal(t *testing.T) {
	input := strings.NewReader("basic\n")
	loop, _ := newTestLoop("go", input)

	err := loop.Run()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestPlayGame_TimeoutsExhaustLives(t *testing.T) {
	input := io.MultiReader(strings.NewReader("basic\n"), blockingReader{})
	loop, out := newTestLoop("go", input)
	loop.timeout = 5 * time.Millisecond

	quit, err := loop.playGame()
	require.NoError(t, err)
	assert.False(t, quit)

	assert.Contains(t, out.String(), "Time's up!")
	assert.Contains(t, out.String(), "GAME OVER!")
	assert.Contains(t, out.String(), "The answer was: go")
}

func TestSpacedMask(t *testing.T) {
	assert.Equal(t, "_ a _", spacedMask("_a_"))
	assert.Equal(t, "c a t", spacedMask("cat"))
	assert.Equal(t, "_ _   _ _", spacedMask("__ __"))
	assert.Equal(t, "", spacedMask(""))
}

func TestGuessedList(t *testing.T) {
	assert.Equal(t, "(none yet)", guessedList(nil))
	assert.Equal(t, "a, b, z", guessedList([]rune{'a', 'b', 'z'}))
}
