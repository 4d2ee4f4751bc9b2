package casting

import (
	"sort"

	"github.com/pmmagency/agency-backend/internal/models"
)

// ScoreSummary is the ranking-ready aggregate of one application's scores.
type ScoreSummary struct {
	// Average is the exact arithmetic mean of all overall scores. It is
	// only meaningful when Votes > 0; callers filter unscored
	// applications out of ranked views instead of ranking them at zero.
	Average       float64             `json:"average"`
	Votes         int                 `json:"votes"`
	MissingJuries []models.JuryMember `json:"missing_juries"`
	// FullyScored is true when every roster member has voted and the
	// roster is non-empty. An empty roster never counts as fully scored.
	FullyScored bool `json:"fully_scored"`
}

// Summarize aggregates a score sheet against the current jury roster.
func Summarize(scores ScoreSheet, roster []models.JuryMember) ScoreSummary {
	summary := ScoreSummary{
		Votes:         len(scores),
		MissingJuries: []models.JuryMember{},
	}

	if len(scores) > 0 {
		var total float64
		for _, rec := range scores {
			total += rec.Overall
		}
		summary.Average = total / float64(len(scores))
	}

	for _, member := range roster {
		if _, voted := scores[member.ID.String()]; !voted {
			summary.MissingJuries = append(summary.MissingJuries, member)
		}
	}

	summary.FullyScored = len(roster) > 0 && len(summary.MissingJuries) == 0
	return summary
}

// RankedApplication pairs an application with its aggregate for ranked views.
type RankedApplication struct {
	Application CastingApplication `json:"application"`
	Summary     ScoreSummary       `json:"summary"`
}

// Rank returns applications with at least one score, sorted by average
// descending. The sort is stable so ties keep their input order.
// Applications with zero scores are excluded entirely.
func Rank(apps []CastingApplication, roster []models.JuryMember) []RankedApplication {
	ranked := make([]RankedApplication, 0, len(apps))
	for _, app := range apps {
		sheet := app.ScoreSheetValue()
		if len(sheet) == 0 {
			continue
		}
		ranked = append(ranked, RankedApplication{
			Application: app,
			Summary:     Summarize(sheet, roster),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Summary.Average > ranked[j].Summary.Average
	})
	return ranked
}

// FullyScoredOnly filters a ranked list down to fully scored applications.
func FullyScoredOnly(ranked []RankedApplication) []RankedApplication {
	out := make([]RankedApplication, 0, len(ranked))
	for _, r := range ranked {
		if r.Summary.FullyScored {
			out = append(out, r)
		}
	}
	return out
}
