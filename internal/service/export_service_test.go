package service

import (
	"bytes"
	"strings"
	"testing"

	"college-hub/internal/models"
	"college-hub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newTestExportService(t *testing.T) (*ExportService, *repository.RecordRepository) {
	t.Helper()
	repo := repository.NewRecordRepository(t.TempDir(), zap.NewNop())
	return NewExportService(repo, zap.NewNop()), repo
}

func TestExportCSV(t *testing.T) {
	t.Run("admission records with sorted union header", func(t *testing.T) {
		s, repo := newTestExportService(t)
		require.NoError(t, repo.Append(models.CategoryAdmission, models.Record{"name": "A"}))

		data, err := s.CSV("admissions")
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(data, []byte("\xEF\xBB\xBF")), "export should start with a BOM")

		lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(data), "\xEF\xBB\xBF")), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "id,name,status,timestamp", lines[0])
		assert.Contains(t, lines[1], ",A,Pending,")
	})

	t.Run("uneven fields still line up", func(t *testing.T) {
		s, repo := newTestExportService(t)
		require.NoError(t, repo.Append(models.CategoryRegistration, models.Record{"name": "A", "event": "Fest"}))
		require.NoError(t, repo.Append(models.CategoryRegistration, models.Record{"name": "B", "phone": "123"}))

		data, err := s.CSV("registrations")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(data), "\xEF\xBB\xBF")), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "event,id,name,phone,timestamp", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "Fest,"))
		assert.True(t, strings.HasPrefix(lines[2], ","), "missing event renders empty")
	})

	t.Run("empty category reports no data", func(t *testing.T) {
		s, _ := newTestExportService(t)
		_, err := s.CSV("admissions")
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("unknown category reports no data", func(t *testing.T) {
		s, _ := newTestExportService(t)
		_, err := s.CSV("nonsense")
		assert.ErrorIs(t, err, ErrNoData)
	})
}

func TestExportXLSX(t *testing.T) {
	s, repo := newTestExportService(t)
	require.NoError(t, repo.Append(models.CategoryContact, models.Record{"name": "A", "message": "hello"}))

	data, err := s.XLSX("contact")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "id", header)

	name, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "A", name)
}

func TestRenderValue(t *testing.T) {
	assert.Equal(t, "text", renderValue("text"))
	assert.Equal(t, "42", renderValue(float64(42)))
	assert.Equal(t, "3.5", renderValue(3.5))
	assert.Equal(t, "true", renderValue(true))
	assert.Equal(t, "", renderValue(nil))
	assert.Equal(t, `{"a":"b"}`, renderValue(map[string]any{"a": "b"}))
}
