package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brunofarias/zapboard/internal/constants"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestAIHandler_UnconfiguredServiceReturns503(t *testing.T) {
	handler := NewAIHandler(nil)

	body, err := json.Marshal(map[string]string{
		"template": "Olá {{contact_name}}",
		"style":    "formal",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(constants.ContextKeyUserID, uint64(1))
	c.Request = httptest.NewRequest(http.MethodPost, "/api/ai/improve-template", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.ImproveTemplate(c)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAIHandler_RejectsMissingTemplate(t *testing.T) {
	handler := NewAIHandler(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(constants.ContextKeyUserID, uint64(1))
	c.Request = httptest.NewRequest(http.MethodPost, "/api/ai/improve-template", bytes.NewReader([]byte(`{}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.ImproveTemplate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
