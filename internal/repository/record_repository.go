package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"college-hub/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnknownCategory = errors.New("unknown form category")
	ErrIndexOutOfRange = errors.New("record index out of range")
)

const timestampLayout = "2006-01-02 15:04:05"

// categoryFiles maps each form category to its backing JSON array file.
var categoryFiles = map[models.FormCategory]string{
	models.CategoryContact:      "submissions.json",
	models.CategoryAdmission:    "admissions.json",
	models.CategoryRegistration: "registrations.json",
}

// statusCategories are the categories whose records carry a review status.
var statusCategories = map[models.FormCategory]bool{
	models.CategoryContact:   true,
	models.CategoryAdmission: true,
}

// RecordRepository persists form records as one pretty-printed JSON array
// per category. The backing file is the sole source of truth and is fully
// rewritten on every mutation. A per-category mutex serializes the
// read-mutate-write cycle, so concurrent requests against the same
// category cannot lose updates.
type RecordRepository struct {
	dataDir string
	logger  *zap.Logger
	mu      map[models.FormCategory]*sync.Mutex
	now     func() time.Time
}

func NewRecordRepository(dataDir string, logger *zap.Logger) *RecordRepository {
	mu := make(map[models.FormCategory]*sync.Mutex, len(categoryFiles))
	for category := range categoryFiles {
		mu[category] = &sync.Mutex{}
	}
	return &RecordRepository{
		dataDir: dataDir,
		logger:  logger,
		mu:      mu,
		now:     time.Now,
	}
}

// Append stores a new record, stamping it with a stable id, the submission
// time, and a Pending status for contact and admission categories.
func (r *RecordRepository) Append(category models.FormCategory, record models.Record) error {
	lock, ok := r.mu[category]
	if !ok {
		return ErrUnknownCategory
	}
	lock.Lock()
	defer lock.Unlock()

	records, err := r.read(category)
	if err != nil {
		return err
	}

	record["id"] = uuid.New().String()
	record["timestamp"] = r.now().Format(timestampLayout)
	if statusCategories[category] {
		record["status"] = models.StatusPending
	}

	records = append(records, record)
	return r.write(category, records)
}

// List returns the full contents of a category file, or an empty slice
// when the file does not exist yet.
func (r *RecordRepository) List(category models.FormCategory) ([]models.Record, error) {
	lock, ok := r.mu[category]
	if !ok {
		return nil, ErrUnknownCategory
	}
	lock.Lock()
	defer lock.Unlock()

	return r.read(category)
}

// UpdateStatus sets the review status of the record at the given position.
// Stale indices from a client that listed before a concurrent delete fail
// with ErrIndexOutOfRange and leave the file untouched.
func (r *RecordRepository) UpdateStatus(category models.FormCategory, index int, status string) error {
	lock, ok := r.mu[category]
	if !ok {
		return ErrUnknownCategory
	}
	lock.Lock()
	defer lock.Unlock()

	records, err := r.read(category)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return ErrIndexOutOfRange
	}

	records[index]["status"] = status
	return r.write(category, records)
}

// Delete removes the record at the given position.
func (r *RecordRepository) Delete(category models.FormCategory, index int) error {
	lock, ok := r.mu[category]
	if !ok {
		return ErrUnknownCategory
	}
	lock.Lock()
	defer lock.Unlock()

	records, err := r.read(category)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return ErrIndexOutOfRange
	}

	records = append(records[:index], records[index+1:]...)
	return r.write(category, records)
}

func (r *RecordRepository) path(category models.FormCategory) string {
	return filepath.Join(r.dataDir, categoryFiles[category])
}

func (r *RecordRepository) read(category models.FormCategory) ([]models.Record, error) {
	data, err := os.ReadFile(r.path(category))
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Record{}, nil
		}
		return nil, fmt.Errorf("read %s records: %w", category, err)
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s records: %w", category, err)
	}
	return records, nil
}

func (r *RecordRepository) write(category models.FormCategory, records []models.Record) error {
	data, err := marshalPretty(records)
	if err != nil {
		return fmt.Errorf("encode %s records: %w", category, err)
	}
	if err := os.WriteFile(r.path(category), data, 0o644); err != nil {
		return fmt.Errorf("write %s records: %w", category, err)
	}
	return nil
}

// marshalPretty renders two-space indented JSON with non-ASCII text kept
// unescaped, matching the files the admin dashboard reads by hand.
func marshalPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
