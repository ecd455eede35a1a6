package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Strategy
		wantErr bool
	}{
		{"keep first", "keep_first", KeepFirst, false},
		{"keep shortest path", "keep_shortest_path", KeepShortestPath, false},
		{"mixed case and spaces", "  KEEP_First ", KeepFirst, false},
		{"empty", "", 0, true},
		{"unknown", "keep_newest", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownStrategy))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "keep_first", KeepFirst.String())
	assert.Equal(t, "keep_shortest_path", KeepShortestPath.String())
	assert.Equal(t, "Strategy(7)", Strategy(7).String())
	assert.Equal(t, KeepShortestPath, DefaultStrategy)
}

func TestParseHashAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    HashAlgorithm
		wantErr bool
	}{
		{"", HashMD5, false},
		{"md5", HashMD5, false},
		{"SHA1", HashSHA1, false},
		{"sha256", HashSHA256, false},
		{"xxh3", HashXXH3, false},
		{"crc32", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHashAlgorithm(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownHashAlgorithm)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewExclusionSet(t *testing.T) {
	t.Run("defaults always present", func(t *testing.T) {
		set := NewExclusionSet()

		for _, name := range DefaultExclusions {
			assert.True(t, set.Contains(name), name)
		}

		assert.False(t, set.Contains("src"))
	})

	t.Run("extra names are appended", func(t *testing.T) {
		set := NewExclusionSet("build", "", ".git", "vendor")

		assert.Equal(t, []string{".git", "node_modules", "__pycache__", "build", "vendor"}, set.Names())
		assert.True(t, set.Contains("build"))
		assert.True(t, set.Contains("node_modules"))
	})

	t.Run("names copy is detached", func(t *testing.T) {
		set := NewExclusionSet()
		names := set.Names()
		names[0] = "mutated"

		assert.True(t, set.Contains(".git"))
		assert.False(t, set.Contains("mutated"))
	})
}

func TestRemovalSummary_Add(t *testing.T) {
	var summary RemovalSummary

	for _, state := range []ActionState{Planned, Reported, Removed, Removed, Linked, RemovedLinkFailed, RemovalFailed} {
		summary.Add(Action{State: state})
	}

	assert.Equal(t, 1, summary.Reported)
	assert.Equal(t, 2, summary.Removed)
	assert.Equal(t, 1, summary.Linked)
	assert.Equal(t, 1, summary.RemovedLinkFailed)
	assert.Equal(t, 1, summary.RemovalFailed)
	assert.Equal(t, 4, summary.Deleted())
}

func TestActionState_String(t *testing.T) {
	assert.Equal(t, "linked", Linked.String())
	assert.Equal(t, "removal failed", RemovalFailed.String())
	assert.Equal(t, "unknown", ActionState(42).String())
}
