package dedup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-sarkari-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "jobs.json"), zaptest.NewLogger(t))

	jobs, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "jobs.json"), zaptest.NewLogger(t))
	want := []models.Job{
		{Title: "WB Police", Link: "https://x/1", Category: models.CategoryWB, LastDate: "25-02-2026", AddedOn: "2026-02-02", IsNew: true},
		{Title: "UPSC", Link: "https://x/2", Category: models.CategoryCentral, LastDate: models.NoLastDate, AddedOn: "2026-01-30"},
		{Title: "Other", Link: "https://x/3", Category: models.CategoryOther, LastDate: "1/2/26", AddedOn: "2026-01-01"},
	}

	require.NoError(t, s.Save(want))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SaveIsPrettyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	s := NewStore(path, zaptest.NewLogger(t))

	require.NoError(t, s.Save([]models.Job{{Title: "T", Link: "L", Category: models.CategoryWB, LastDate: "x", AddedOn: "2026-01-01"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "[\n  {\n    \"title\": \"T\","), text)
	for _, key := range []string{`"link"`, `"category"`, `"last_date"`, `"added_on"`, `"is_new"`} {
		assert.Contains(t, text, key)
	}
}

func TestStore_SaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	s := NewStore(path, zaptest.NewLogger(t))

	require.NoError(t, s.Save(nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title": `), 0644))
	s := NewStore(path, zaptest.NewLogger(t))

	_, err := s.Load()
	assert.Error(t, err)
}

func TestStore_Lock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	first := NewStore(path, zaptest.NewLogger(t))
	second := NewStore(path, zaptest.NewLogger(t))

	unlock, err := first.Lock()
	require.NoError(t, err)

	_, err = second.Lock()
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, unlock())

	unlock2, err := second.Lock()
	require.NoError(t, err)
	require.NoError(t, unlock2())
}
