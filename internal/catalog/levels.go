package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a CEFR proficiency band.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

var ErrUnknownLevel = errors.New("unknown CEFR level")

var levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// Levels returns all six levels in ascending order.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// ParseLevel accepts a level name in any case, e.g. "b2".
func ParseLevel(s string) (Level, error) {
	candidate := Level(strings.ToUpper(strings.TrimSpace(s)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l Level) Valid() bool {
	return l.Index() >= 0
}

// Index is the ordinal position of l (A1 = 0), or -1 if l is not a level.
func (l Level) Index() int {
	for i, candidate := range levels {
		if candidate == l {
			return i
		}
	}
	return -1
}

// Next steps one band up, saturating at C2.
func (l Level) Next() Level {
	i := l.Index()
	if i < 0 || i == len(levels)-1 {
		return l
	}
	return levels[i+1]
}

// Prev steps one band down, saturating at A1.
func (l Level) Prev() Level {
	i := l.Index()
	if i <= 0 {
		return l
	}
	return levels[i-1]
}

func (l Level) String() string {
	return string(l)
}
