package dedup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-sarkari-tracker/internal/models"
	"go-sarkari-tracker/utils"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// ErrLocked means another run holds the history lock.
var ErrLocked = errors.New("history is locked by another run")

// Store persists the job history as one pretty-printed JSON array.
// The whole file is read at start and replaced at the end of a run.
type Store struct {
	filePath string
	lock     *flock.Flock
	log      *zap.Logger
}

func NewStore(path string, log *zap.Logger) *Store {
	return &Store{
		filePath: path,
		lock:     flock.New(path + ".lock"),
		log:      log,
	}
}

func (s *Store) Path() string {
	return s.filePath
}

// Lock takes the exclusive run lock without waiting.
func (s *Store) Lock() (unlock func() error, err error) {
	if dir := filepath.Dir(s.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	ok, err := s.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", s.lock.Path(), err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, s.lock.Path())
	}
	return s.lock.Unlock, nil
}

// Load reads the history. A missing file is the bootstrap case and yields
// an empty history; malformed JSON is an error.
func (s *Store) Load() ([]models.Job, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("📋 No history yet, starting empty", zap.String("path", s.filePath))
			return []models.Job{}, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.log.Warn("⚠️ History file is empty, starting empty", zap.String("path", s.filePath))
		return []models.Job{}, nil
	}

	var jobs []models.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", s.filePath, err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	s.log.Info("📋 Loaded history", zap.Int("jobs", len(jobs)))
	return jobs, nil
}

// Save replaces the history file wholesale.
func (s *Store) Save(jobs []models.Job) error {
	if jobs == nil {
		jobs = []models.Job{}
	}
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	data = append(data, '\n')

	if err := utils.WriteFileAtomic(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	s.log.Info("💾 Saved history", zap.Int("jobs", len(jobs)), zap.String("path", s.filePath))
	return nil
}
