package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"thematic-analysis-backend/internal/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// withUser stands in for the auth middleware
func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeAPIError(w *httptest.ResponseRecorder) handlers.APIError {
	var apiErr handlers.APIError
	_ = json.Unmarshal(w.Body.Bytes(), &apiErr)
	return apiErr
}
