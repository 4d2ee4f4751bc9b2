package magazine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Fashion Week 2026", "fashion-week-2026"},
		{"  Trimmed  Title  ", "trimmed-title"},
		{"Déjà vu!", "d-j-vu"},
		{"UPPER case", "upper-case"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}
