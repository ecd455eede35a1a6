package model

import "slices"

// DefaultExclusions are the directory names pruned on every scan.
// User supplied names are added to these, never substituted for them.
var DefaultExclusions = []string{".git", "node_modules", "__pycache__"}

// ExclusionSet holds directory base names that are never descended into.
type ExclusionSet struct {
	names map[string]struct{}
	order []string
}

// NewExclusionSet returns the default exclusions extended with extra names.
// Blank and repeated names are ignored.
func NewExclusionSet(extra ...string) ExclusionSet {
	set := ExclusionSet{names: make(map[string]struct{}, len(DefaultExclusions)+len(extra))}

	for _, name := range slices.Concat(DefaultExclusions, extra) {
		if name == "" {
			continue
		}

		if _, ok := set.names[name]; ok {
			continue
		}

		set.names[name] = struct{}{}
		set.order = append(set.order, name)
	}

	return set
}

// Contains reports whether a directory with the given base name is excluded.
func (e ExclusionSet) Contains(name string) bool {
	_, ok := e.names[name]
	return ok
}

// Names returns the excluded names, defaults first.
func (e ExclusionSet) Names() []string {
	return slices.Clone(e.order)
}
