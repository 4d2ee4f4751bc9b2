package casting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextMatricule(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		existing  []string
		want      string
	}{
		{
			name:      "first of an initial",
			firstName: "Jane",
			existing:  nil,
			want:      "Man-PMMJ01",
		},
		{
			name:      "increments within the initial",
			firstName: "Jane",
			existing:  []string{"Man-PMMJ01", "Man-PMMJ02"},
			want:      "Man-PMMJ03",
		},
		{
			name:      "other initials do not interfere",
			firstName: "Alice",
			existing:  []string{"Man-PMMJ07"},
			want:      "Man-PMMA01",
		},
		{
			name:      "gaps are not refilled",
			firstName: "Jane",
			existing:  []string{"Man-PMMJ05"},
			want:      "Man-PMMJ06",
		},
		{
			name:      "accented initial folds to ASCII",
			firstName: "Élodie",
			existing:  nil,
			want:      "Man-PMME01",
		},
		{
			name:      "unrelated usernames are ignored",
			firstName: "Jane",
			existing:  []string{"admin", "Man-PMMJXX", "Man-PMMJ02"},
			want:      "Man-PMMJ03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextMatricule("Man-PMM", tt.firstName, tt.existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextMatricule_SameInitialSequence(t *testing.T) {
	// Two applicants with the same name promoted in sequence must get
	// distinct usernames.
	existing := []string{}

	first, err := NextMatricule("Man-PMM", "Jane", existing)
	require.NoError(t, err)

	second, err := NextMatricule("Man-PMM", "Jane", append(existing, first))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, "Man-PMMJ01", first)
	assert.Equal(t, "Man-PMMJ02", second)
}

func TestNextMatricule_Exhausted(t *testing.T) {
	_, err := NextMatricule("Man-PMM", "Jane", []string{"Man-PMMJ99"})
	assert.ErrorIs(t, err, ErrMatriculeExhausted)
}

func TestInitialPassword(t *testing.T) {
	year := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		lastName string
		want     string
	}{
		{"Doe", "doe2026"},
		{"Dupré", "dupre2026"},
		{"D'Angelo", "dangelo2026"},
		{"Le Gall", "legall2026"},
		{"François-Xavier", "francoisxavier2026"},
	}

	for _, tt := range tests {
		t.Run(tt.lastName, func(t *testing.T) {
			assert.Equal(t, tt.want, InitialPassword(tt.lastName, year))
		})
	}
}
