package casting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownStatus(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, KnownStatus(s), s)
	}

	assert.False(t, KnownStatus(""))
	assert.False(t, KnownStatus("nouveau"))
	assert.False(t, KnownStatus("Pending"))
}
