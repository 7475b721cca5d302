package words

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")
var ErrEmptyPool = errors.New("no entries for difficulty")

type Difficulty string

const (
	Basic        Difficulty = "basic"
	Intermediate Difficulty = "intermediate"
)

// ParseDifficulty accepts the menu tokens case-insensitively, plus the
// numeric shortcuts shown next to them.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "1":
		return Basic, nil
	case "intermediate", "2":
		return Intermediate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Source hands out a target for a requested difficulty. Seeding is the
// caller's problem; tests inject a fixed list or a fixed rng.
type Source interface {
	PickTarget(d Difficulty) (string, error)
}

// ListSource picks uniformly from per-difficulty pools.
type ListSource struct {
	basic        []string
	intermediate []string
	rng          *rand.Rand
}

func NewListSource(basic, intermediate []string, rng *rand.Rand) *ListSource {
	return &ListSource{basic: basic, intermediate: intermediate, rng: rng}
}

// Default uses the built-in vocabulary.
func Default(rng *rand.Rand) *ListSource {
	return NewListSource(basicWords, intermediatePhrases, rng)
}

func (s *ListSource) PickTarget(d Difficulty) (string, error) {
	var pool []string
	switch d {
	case Basic:
		pool = s.basic
	case Intermediate:
		pool = s.intermediate
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: %q", ErrEmptyPool, d)
	}
	return pool[s.rng.Intn(len(pool))], nil
}

// FromFile builds a source from a plain-text word list. One entry per
// line; entries containing spaces become phrases, the rest single words.
func FromFile(path string, rng *rand.Rand) (*ListSource, error) {
	basic, intermediate, err := LoadLists(path)
	if err != nil {
		return nil, err
	}
	return NewListSource(basic, intermediate, rng), nil
}

// LoadLists parses a word file into the two pools. Blank lines and lines
// starting with '#' are skipped; entries are lowercased.
func LoadLists(path string) (basic, intermediate []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.ToLower(strings.TrimSpace(sc.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.ContainsRune(line, ' ') {
			intermediate = append(intermediate, line)
		} else {
			basic = append(basic, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return basic, intermediate, nil
}
