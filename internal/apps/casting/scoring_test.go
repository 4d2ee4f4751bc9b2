package casting

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pmmagency/agency-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func makeRoster(n int) []models.JuryMember {
	roster := make([]models.JuryMember, 0, n)
	for i := 0; i < n; i++ {
		roster = append(roster, models.JuryMember{ID: uuid.New(), Name: "Juror"})
	}
	return roster
}

func TestSummarize(t *testing.T) {
	j1 := models.JuryMember{ID: uuid.New(), Name: "J1"}
	j2 := models.JuryMember{ID: uuid.New(), Name: "J2"}
	j3 := models.JuryMember{ID: uuid.New(), Name: "J3"}
	roster := []models.JuryMember{j1, j2, j3}

	t.Run("partial votes", func(t *testing.T) {
		scores := ScoreSheet{
			j1.ID.String(): {Overall: 8},
			j2.ID.String(): {Overall: 6},
		}

		summary := Summarize(scores, roster)

		assert.Equal(t, 7.0, summary.Average)
		assert.Equal(t, 2, summary.Votes)
		require.Len(t, summary.MissingJuries, 1)
		assert.Equal(t, j3.ID, summary.MissingJuries[0].ID)
		assert.False(t, summary.FullyScored)
	})

	t.Run("all votes in", func(t *testing.T) {
		scores := ScoreSheet{
			j1.ID.String(): {Overall: 8},
			j2.ID.String(): {Overall: 6},
			j3.ID.String(): {Overall: 9},
		}

		summary := Summarize(scores, roster)

		assert.InDelta(t, 23.0/3.0, summary.Average, 1e-9)
		assert.Equal(t, 3, summary.Votes)
		assert.Empty(t, summary.MissingJuries)
		assert.True(t, summary.FullyScored)
	})

	t.Run("no votes", func(t *testing.T) {
		summary := Summarize(ScoreSheet{}, roster)

		assert.Equal(t, 0.0, summary.Average)
		assert.Equal(t, 0, summary.Votes)
		assert.Len(t, summary.MissingJuries, 3)
		assert.False(t, summary.FullyScored)
	})

	t.Run("empty roster is never fully scored", func(t *testing.T) {
		scores := ScoreSheet{
			j1.ID.String(): {Overall: 10},
			j2.ID.String(): {Overall: 10},
		}

		summary := Summarize(scores, nil)

		assert.False(t, summary.FullyScored)
		assert.Equal(t, 2, summary.Votes)
		assert.Equal(t, 10.0, summary.Average)
	})
}

func appWithScores(name string, overall ...float64) CastingApplication {
	sheet := ScoreSheet{}
	for _, v := range overall {
		sheet[uuid.NewString()] = ScoreRecord{Overall: v}
	}
	return CastingApplication{
		ID:        uuid.New(),
		FirstName: name,
		LastName:  "Test",
		Scores:    datatypes.NewJSONType(sheet),
	}
}

func TestRank(t *testing.T) {
	t.Run("orders by average descending", func(t *testing.T) {
		apps := []CastingApplication{
			appWithScores("low", 4, 5),
			appWithScores("high", 9, 8),
			appWithScores("mid", 7),
		}

		ranked := Rank(apps, makeRoster(2))

		require.Len(t, ranked, 3)
		assert.Equal(t, "high", ranked[0].Application.FirstName)
		assert.Equal(t, "mid", ranked[1].Application.FirstName)
		assert.Equal(t, "low", ranked[2].Application.FirstName)
	})

	t.Run("unscored applications are excluded, not ranked last", func(t *testing.T) {
		apps := []CastingApplication{
			appWithScores("unscored"),
			appWithScores("scored", 3),
		}

		ranked := Rank(apps, makeRoster(2))

		require.Len(t, ranked, 1)
		assert.Equal(t, "scored", ranked[0].Application.FirstName)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		apps := []CastingApplication{
			appWithScores("first", 7),
			appWithScores("second", 7),
			appWithScores("third", 7),
		}

		ranked := Rank(apps, makeRoster(1))

		require.Len(t, ranked, 3)
		assert.Equal(t, "first", ranked[0].Application.FirstName)
		assert.Equal(t, "second", ranked[1].Application.FirstName)
		assert.Equal(t, "third", ranked[2].Application.FirstName)
	})

	t.Run("fully scored filter", func(t *testing.T) {
		j1 := models.JuryMember{ID: uuid.New(), Name: "J1"}
		roster := []models.JuryMember{j1}

		full := CastingApplication{
			ID:     uuid.New(),
			Scores: datatypes.NewJSONType(ScoreSheet{j1.ID.String(): {Overall: 6}}),
		}
		partial := appWithScores("partial", 9)

		ranked := FullyScoredOnly(Rank([]CastingApplication{full, partial}, roster))

		require.Len(t, ranked, 1)
		assert.Equal(t, full.ID, ranked[0].Application.ID)
	})
}
