package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"filebase/internal/core/domain"
)

func TestChangeTracker(t *testing.T) {
	t.Parallel()

	var tracker domain.ChangeTracker

	assert.False(t, tracker.Dirty())

	tracker.MarkDirty()
	assert.True(t, tracker.Dirty())

	// marking again is a no-op
	tracker.MarkDirty()
	assert.True(t, tracker.Dirty())

	tracker.MarkClean()
	assert.False(t, tracker.Dirty())
}
