package model

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects which member of a duplicate set is retained.
type Strategy int

const (
	// KeepFirst retains the earliest discovered path.
	KeepFirst Strategy = iota
	// KeepShortestPath retains the path with the fewest characters,
	// falling back to discovery order on ties.
	KeepShortestPath
)

// DefaultStrategy is used by the remove command when none is given.
const DefaultStrategy = KeepShortestPath

// ErrUnknownStrategy is returned for strategy names or values outside the closed set.
var ErrUnknownStrategy = errors.New("unknown strategy")

var strategyNames = map[Strategy]string{
	KeepFirst:        "keep_first",
	KeepShortestPath: "keep_shortest_path",
}

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{KeepFirst, KeepShortestPath}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy converts a CLI/config name such as "keep_first" into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	for _, strategy := range Strategies() {
		if strategyNames[strategy] == normalized {
			return strategy, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
