package domain

import (
	"iter"

	m "dupes.dev/pkg/dupes/internal/model"
)

// GroupDuplicates folds hashed files into duplicate sets. Paths keep their
// discovery order and sets are ordered by the first time their fingerprint
// was seen. Fingerprints seen only once are dropped.
func GroupDuplicates(files iter.Seq[m.HashedFile]) []m.DuplicateSet {
	var order []m.Fingerprint

	groups := make(map[m.Fingerprint][]m.Path)

	for file := range files {
		if _, seen := groups[file.Fingerprint]; !seen {
			order = append(order, file.Fingerprint)
		}

		groups[file.Fingerprint] = append(groups[file.Fingerprint], file.Path)
	}

	sets := make([]m.DuplicateSet, 0)

	for _, fingerprint := range order {
		paths := groups[fingerprint]
		if len(paths) < 2 {
			continue
		}

		sets = append(sets, m.DuplicateSet{Fingerprint: fingerprint, Paths: paths})
	}

	return sets
}
