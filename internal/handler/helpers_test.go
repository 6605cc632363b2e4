package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/library-api/internal/middleware"
	"github.com/snnyvrz/library-api/internal/repository"
	"github.com/snnyvrz/library-api/internal/service"
	"github.com/snnyvrz/library-api/internal/validation"
	"gorm.io/gorm"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Setup()

	r := gin.New()
	r.Use(
		middleware.RequestLogger(zerolog.Nop()),
		ErrorHandler(),
		middleware.Recovery(),
	)
	r.NoRoute(NoRoute)

	return r
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	r := newEngine()

	authorRepo := repository.NewGormAuthorRepository(db)
	bookRepo := repository.NewGormBookRepository(db)

	NewAuthorHandler(service.NewAuthorService(authorRepo)).RegisterRoutes(r.Group(""))
	NewBookHandler(service.NewBookService(bookRepo, authorRepo)).RegisterRoutes(r.Group(""))

	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) ErrorResponse {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d (body: %s)", status, w.Code, w.Body.String())
	}

	resp := decode[ErrorResponse](t, w)
	if resp.Error == nil {
		t.Fatalf("expected error envelope, got %s", w.Body.String())
	}
	if resp.Error.Status != status {
		t.Fatalf("expected error.status %d, got %d", status, resp.Error.Status)
	}
	if message != "" && resp.Error.Message != message {
		t.Fatalf("expected message %q, got %q", message, resp.Error.Message)
	}
	if resp.Data != nil {
		t.Fatalf("expected null data, got %v", resp.Data)
	}

	return resp
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
