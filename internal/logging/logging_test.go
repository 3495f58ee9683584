package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	Setup("debug")
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	Setup("not-a-level")
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestMiddlewareLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hook := test.NewGlobal()
	defer hook.Reset()

	r := gin.New()
	r.Use(Middleware())
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	cases := []struct {
		path  string
		level log.Level
	}{
		{"/ok", log.InfoLevel},
		{"/missing", log.WarnLevel},
		{"/boom", log.ErrorLevel},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			hook.Reset()
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tc.level, entry.Level)
			assert.Equal(t, tc.path, entry.Data["path"])
			assert.Equal(t, http.MethodGet, entry.Data["method"])
		})
	}
}
