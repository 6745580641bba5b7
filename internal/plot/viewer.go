package plot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const viewerPage = `<!doctype html>
<html><head><title>%s</title></head>
<body style="margin:0;display:flex;justify-content:center">
<img src="/plot.svg" alt="light curve">
</body></html>`

// NewViewerRouter returns a gin router serving a single rendered plot.
// The image is rendered once up front; a render error is returned here
// rather than on the first request.
func NewViewerRouter(times, flux []float64, opts Options) (*gin.Engine, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	opts.Format = "svg"

	var buf bytes.Buffer
	if err := Render(&buf, times, flux, opts); err != nil {
		return nil, err
	}
	image := buf.Bytes()

	title := opts.Title
	if title == "" {
		title = "Light curve"
	}
	page := []byte(fmt.Sprintf(viewerPage, html.EscapeString(title)))

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
	router.GET("/plot.svg", func(c *gin.Context) {
		c.Data(http.StatusOK, ContentType("svg"), image)
	})
	return router, nil
}

// Serve runs handler on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Viewer] Serving plot on http://localhost%s (Ctrl-C to close)", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Printf("[Viewer] Closing")
	return srv.Shutdown(shutdownCtx)
}
