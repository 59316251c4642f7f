package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"college-hub/internal/models"
	"college-hub/internal/repository"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrNoData means the requested category has nothing to export.
var ErrNoData = errors.New("no data to export")

// exportCategories maps the URL category names of the admin dashboard to
// store categories.
var exportCategories = map[string]models.FormCategory{
	"contact":       models.CategoryContact,
	"admissions":    models.CategoryAdmission,
	"registrations": models.CategoryRegistration,
}

// ExportService renders a form category as a downloadable table. The
// header row is the sorted union of all keys across records, so uneven
// form fields still line up.
type ExportService struct {
	records *repository.RecordRepository
	logger  *zap.Logger
}

func NewExportService(records *repository.RecordRepository, logger *zap.Logger) *ExportService {
	return &ExportService{
		records: records,
		logger:  logger,
	}
}

// CSV renders a category as UTF-8 CSV with a byte-order mark, which keeps
// Excel from mangling non-ASCII names.
func (s *ExportService) CSV(category string) ([]byte, error) {
	records, err := s.load(category)
	if err != nil {
		return nil, err
	}
	keys := unionKeys(records)

	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF")
	w := csv.NewWriter(&buf)

	if err := w.Write(keys); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range records {
		row := make([]string, len(keys))
		for i, key := range keys {
			if value, ok := record[key]; ok {
				row[i] = renderValue(value)
			}
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX renders a category as a single-sheet spreadsheet with the same
// union-of-keys layout as CSV.
func (s *ExportService) XLSX(category string) ([]byte, error) {
	records, err := s.load(category)
	if err != nil {
		return nil, err
	}
	keys := unionKeys(records)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, key := range keys {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("build xlsx header: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, key); err != nil {
			return nil, fmt.Errorf("build xlsx header: %w", err)
		}
	}
	for rowIdx, record := range records {
		for col, key := range keys {
			value, ok := record[key]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("build xlsx row: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, renderValue(value)); err != nil {
				return nil, fmt.Errorf("build xlsx row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ExportService) load(category string) ([]models.Record, error) {
	storeCategory, ok := exportCategories[category]
	if !ok {
		return nil, ErrNoData
	}
	records, err := s.records.List(storeCategory)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}
	return records, nil
}

func unionKeys(records []models.Record) []string {
	seen := map[string]bool{}
	for _, record := range records {
		for key := range record {
			seen[key] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func renderValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		// Nested objects come back from json.Unmarshal as maps or slices.
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
