package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContentRepository(t *testing.T) {
	t.Run("round trip pretty-prints the blob", func(t *testing.T) {
		repo := NewContentRepository(t.TempDir(), zap.NewNop())

		require.NoError(t, repo.Save([]byte(`{"hero":{"title":"Welcome"}}`)))

		blob, err := repo.Load()
		require.NoError(t, err)
		assert.Contains(t, string(blob), "\"hero\"")
		assert.Contains(t, string(blob), "  ", "saved blob should be indented")
	})

	t.Run("invalid JSON is rejected", func(t *testing.T) {
		repo := NewContentRepository(t.TempDir(), zap.NewNop())
		assert.Error(t, repo.Save([]byte("{broken")))
	})

	t.Run("missing file surfaces an error", func(t *testing.T) {
		repo := NewContentRepository(t.TempDir(), zap.NewNop())
		_, err := repo.Load()
		assert.Error(t, err)
	})
}
