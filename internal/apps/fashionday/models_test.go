package fashionday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventCastingOpen(t *testing.T) {
	opens := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	ends := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		event Event
		at    time.Time
		want  bool
	}{
		{
			name:  "no window configured",
			event: Event{},
			at:    opens,
			want:  false,
		},
		{
			name:  "before opening",
			event: Event{CastingOpens: &opens, CastingEnds: &ends},
			at:    opens.Add(-time.Hour),
			want:  false,
		},
		{
			name:  "inside window",
			event: Event{CastingOpens: &opens, CastingEnds: &ends},
			at:    opens.Add(2 * time.Hour),
			want:  true,
		},
		{
			name:  "after closing",
			event: Event{CastingOpens: &opens, CastingEnds: &ends},
			at:    ends.Add(time.Minute),
			want:  false,
		},
		{
			name:  "open ended",
			event: Event{CastingOpens: &opens},
			at:    opens.AddDate(1, 0, 0),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.CastingOpen(tt.at))
		})
	}
}
