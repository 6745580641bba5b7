package plot

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	testTimes = []float64{-0.05, -0.01, 0, 0.01, 0.05}
	testFlux  = []float64{1, 0.995, 0.989, 0.995, 1}
)

func TestRender_SVGHasAxisLabels(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, testTimes, testFlux, Options{Format: "svg"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, XLabel)
	assert.Contains(t, out, YLabel)
}

func TestRender_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testTimes, testFlux, Options{Format: "png", WidthIn: 3, HeightIn: 2}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, []float64{0, 1}, []float64{1}, Options{}))
	assert.Error(t, Render(&buf, nil, nil, Options{}))
	assert.Error(t, Render(&buf, testTimes, testFlux, Options{Format: "bmp"}))
}

func TestSave_FormatFromExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "curve.png")
	require.NoError(t, Save(path, testTimes, testFlux, Options{}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType("PNG"))
	assert.Equal(t, "application/pdf", ContentType("pdf"))
	assert.Equal(t, "image/svg+xml", ContentType("svg"))
}

func TestViewerRouter(t *testing.T) {
	router, err := NewViewerRouter(testTimes, testFlux, Options{Title: "Demo"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>Demo</title>")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plot.svg", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), XLabel)
}

func TestViewerRouter_EscapesTitle(t *testing.T) {
	router, err := NewViewerRouter(testTimes, testFlux, Options{Title: `<script>alert("x")</script>`})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	body := w.Body.String()
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	o, err := Options{Title: "t", WidthIn: -1, Format: ".PNG"}.withDefaults()
	require.NoError(t, err)
	assert.Equal(t, "t", o.Title)
	assert.Equal(t, 6.4, o.WidthIn)
	assert.Equal(t, 4.8, o.HeightIn)
	assert.Equal(t, "png", o.Format)

	o, err = Options{WidthIn: 3}.withDefaults()
	require.NoError(t, err)
	assert.Equal(t, 3.0, o.WidthIn)
	assert.Equal(t, "svg", o.Format)
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, "127.0.0.1:0", http.NotFoundHandler())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
