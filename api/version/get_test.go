package version

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauiplayer/radio-api/api/types"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	prevVersion, prevCommit := Version, GitCommit
	Version, GitCommit = "1.2.3", "abc123"
	t.Cleanup(func() { Version, GitCommit = prevVersion, prevCommit })

	router := gin.New()
	RegisterRoutes(router, &types.Dependencies{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	expected := map[string]interface{}{
		"name":    "Radio API",
		"version": "1.2.3",
		"commit":  "abc123",
		"status":  "running",
	}
	for key, value := range expected {
		assert.Equal(t, value, response[key], "Key: %s", key)
	}
}
