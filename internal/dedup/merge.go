package dedup

import (
	"go-sarkari-tracker/internal/filter"
	"go-sarkari-tracker/internal/models"
)

type MergeResult struct {
	// Jobs is the new history, newest first.
	Jobs []models.Job
	// Added are the fresh jobs that were not in history, in feed order.
	Added      []models.Job
	Duplicates int
	Expired    int
}

// Merge prepends unseen fresh jobs to history and drops everything that has
// fallen out of the retention window. Neither input is modified.
func Merge(history, fresh []models.Job, today string, retentionDays int) MergeResult {
	seen := make(map[string]struct{}, len(history)+len(fresh))
	for _, job := range history {
		seen[job.Link] = struct{}{}
	}

	var res MergeResult
	for _, job := range fresh {
		if _, ok := seen[job.Link]; ok {
			res.Duplicates++
			continue
		}
		seen[job.Link] = struct{}{}
		res.Added = append(res.Added, job)
	}

	combined := make([]models.Job, 0, len(res.Added)+len(history))
	combined = append(combined, res.Added...)
	combined = append(combined, history...)

	res.Jobs = make([]models.Job, 0, len(combined))
	for _, job := range combined {
		if !filter.IsWithinRetention(job, today, retentionDays) {
			res.Expired++
			continue
		}
		job.IsNew = job.IsNewOn(today)
		res.Jobs = append(res.Jobs, job)
	}
	return res
}
