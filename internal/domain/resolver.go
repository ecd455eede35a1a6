package domain

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	m "dupes.dev/pkg/dupes/internal/model"
)

// ErrEmptySet is returned when resolving a set without members.
var ErrEmptySet = errors.New("duplicate set has no paths")

// Resolve decides which member of set to keep. It never touches the
// filesystem and never modifies set.Paths.
func Resolve(set m.DuplicateSet, strategy m.Strategy) (m.Resolution, error) {
	if len(set.Paths) == 0 {
		return m.Resolution{}, ErrEmptySet
	}

	ordered := slices.Clone(set.Paths)

	switch strategy {
	case m.KeepFirst:
	case m.KeepShortestPath:
		slices.SortStableFunc(ordered, func(a, b m.Path) int {
			return cmp.Compare(utf8.RuneCountInString(string(a)), utf8.RuneCountInString(string(b)))
		})
	default:
		return m.Resolution{}, fmt.Errorf("%w: %s", m.ErrUnknownStrategy, strategy)
	}

	return m.Resolution{
		Fingerprint: set.Fingerprint,
		Keep:        ordered[0],
		Remove:      ordered[1:],
	}, nil
}
