package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dupes.dev/pkg/dupes/internal/model"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		paths      []m.Path
		strategy   m.Strategy
		wantKeep   m.Path
		wantRemove []m.Path
	}{
		{
			name:       "keep first",
			paths:      []m.Path{"/r/long/name.txt", "/r/a.txt", "/r/b.txt"},
			strategy:   m.KeepFirst,
			wantKeep:   "/r/long/name.txt",
			wantRemove: []m.Path{"/r/a.txt", "/r/b.txt"},
		},
		{
			name:       "shortest path",
			paths:      []m.Path{"/r/long/name.txt", "/r/a.txt", "/r/bb.txt"},
			strategy:   m.KeepShortestPath,
			wantKeep:   "/r/a.txt",
			wantRemove: []m.Path{"/r/bb.txt", "/r/long/name.txt"},
		},
		{
			name:       "shortest path tie keeps discovery order",
			paths:      []m.Path{"/r/b/y.txt", "/r/a/x.txt", "/r/c/z.txt"},
			strategy:   m.KeepShortestPath,
			wantKeep:   "/r/b/y.txt",
			wantRemove: []m.Path{"/r/a/x.txt", "/r/c/z.txt"},
		},
		{
			name:       "length counts characters",
			paths:      []m.Path{"/r/ééé", "/r/abcd"},
			strategy:   m.KeepShortestPath,
			wantKeep:   "/r/ééé",
			wantRemove: []m.Path{"/r/abcd"},
		},
		{
			name:       "single member",
			paths:      []m.Path{"/r/only"},
			strategy:   m.KeepShortestPath,
			wantKeep:   "/r/only",
			wantRemove: []m.Path{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := m.DuplicateSet{Fingerprint: "fp", Paths: tt.paths}
			original := append([]m.Path(nil), tt.paths...)

			got, err := Resolve(set, tt.strategy)
			require.NoError(t, err)

			assert.Equal(t, m.Fingerprint("fp"), got.Fingerprint)
			assert.Equal(t, tt.wantKeep, got.Keep)
			assert.Equal(t, tt.wantRemove, got.Remove)
			assert.NotContains(t, got.Remove, got.Keep)
			assert.Equal(t, original, set.Paths)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	_, err := Resolve(m.DuplicateSet{Fingerprint: "fp"}, m.KeepFirst)
	require.ErrorIs(t, err, ErrEmptySet)

	_, err = Resolve(m.DuplicateSet{Fingerprint: "fp", Paths: []m.Path{"a", "b"}}, m.Strategy(42))
	require.ErrorIs(t, err, m.ErrUnknownStrategy)
}
