package filter

import (
	"testing"
	"time"

	"go-sarkari-tracker/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestToday_UsesLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC is already the next day in India
	now := time.Date(2026, 2, 24, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-02-25", Today(now, ist))
	assert.Equal(t, "2026-02-24", Today(now, time.UTC))
	assert.Equal(t, "2026-02-24", Today(now, nil))
}

func TestIsWithinRetention(t *testing.T) {
	today := "2026-03-31"
	base := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	daysAgo := func(n int) models.Job {
		return models.Job{AddedOn: models.Day(base.AddDate(0, 0, -n))}
	}

	assert.True(t, IsWithinRetention(daysAgo(0), today, 45))
	assert.True(t, IsWithinRetention(daysAgo(44), today, 45))
	assert.False(t, IsWithinRetention(daysAgo(45), today, 45), "cutoff itself is not strictly after")
	assert.False(t, IsWithinRetention(daysAgo(46), today, 45))
	assert.False(t, IsWithinRetention(models.Job{}, today, 45), "missing added_on is treated as very old")
}
