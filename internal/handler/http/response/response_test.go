package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationRoundsUpTotalPages(t *testing.T) {
	meta := Pagination(1, 20, 41)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(41), meta.Total)

	meta = Pagination(1, 20, 0)
	assert.Equal(t, 0, meta.TotalPages)

	meta = Pagination(2, 0, 10)
	assert.Equal(t, 0, meta.TotalPages)
}

func TestSuccessWithMetaEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, []string{"a", "b"}, Pagination(1, 20, 2))

	require.Equal(t, 200, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	meta, ok := body["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), meta["page"])
	assert.Equal(t, float64(2), meta["total"])
	assert.Equal(t, float64(1), meta["total_pages"])
}
