package filter

import (
	"time"

	"go-sarkari-tracker/internal/models"
)

// DefaultRetentionDays is how long a job stays in history after first sight.
const DefaultRetentionDays = 45

// Today is the civil date of now in loc, as stored in added_on.
func Today(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return models.Day(now)
}

// Cutoff is the last civil date that is already outside the window.
func Cutoff(today string, days int) time.Time {
	d, err := time.Parse(models.DateLayout, today)
	if err != nil {
		d, _ = time.Parse(models.DateLayout, models.SentinelDate)
	}
	return d.AddDate(0, 0, -days)
}

// IsWithinRetention keeps a job only while added_on is strictly after the cutoff.
func IsWithinRetention(job models.Job, today string, days int) bool {
	return job.AddedDay().After(Cutoff(today, days))
}
