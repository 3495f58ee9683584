package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gamereview/backend/internal/database"
	"gamereview/backend/internal/models"
	"gamereview/backend/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notFoundMessage = "This record does not exist in our database. Please try again."

// setupAPI points the handlers at a fresh in-memory database holding Game#1 and User#1.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, db.Create(&models.Game{Title: "Celeste", Genre: "Platformer", Platform: "PC", Price: 19.99}).Error)
	require.NoError(t, db.Create(&models.User{Name: "Ada"}).Error)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return router.New()
}

func do(r http.Handler, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(r http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	return do(r, method, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func doMultipart(t *testing.T, r http.Handler, method, path string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	require.NoError(t, mw.Close())
	return do(r, method, path, &body, mw.FormDataContentType())
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func createReview(t *testing.T, r http.Handler, score, comment string) map[string]any {
	t.Helper()
	w := doForm(r, http.MethodPost, "/reviews", url.Values{
		"score":   {score},
		"comment": {comment},
		"game_id": {"1"},
		"user_id": {"1"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[map[string]any](t, w)
}

func TestIndex(t *testing.T) {
	r := setupAPI(t)

	w := do(r, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Index for Game/Review/User API", w.Body.String())
}

func TestPing(t *testing.T) {
	r := setupAPI(t)

	w := do(r, http.MethodGet, "/ping", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decode[map[string]string](t, w)["message"])
}
