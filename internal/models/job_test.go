package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJob_AddedDay(t *testing.T) {
	j := Job{AddedOn: "2026-02-25"}
	assert.Equal(t, time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC), j.AddedDay())

	// missing and garbage both fall back to the sentinel
	for _, v := range []string{"", "25/02/2026", "yesterday"} {
		j := Job{AddedOn: v}
		assert.Equal(t, 1970, j.AddedDay().Year(), "added_on=%q", v)
	}
}

func TestJob_IsNewOn(t *testing.T) {
	j := Job{AddedOn: "2026-02-25"}
	assert.True(t, j.IsNewOn("2026-02-25"))
	assert.False(t, j.IsNewOn("2026-02-26"))
	assert.False(t, Job{}.IsNewOn(""))
}
