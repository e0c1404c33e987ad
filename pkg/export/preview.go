// This file implements a local preview server for the generated bundle.
// It serves files with no-cache headers so edits show up on reload.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

// DefaultPreviewPort is the first port the preview server tries.
const DefaultPreviewPort = 9000

// Range of ports to probe when the default is taken.
const (
	PreviewPortRangeStart = 9000
	PreviewPortRangeEnd   = 9100
)

// PreviewServer serves a generated bundle locally for previewing.
type PreviewServer struct {
	bundlePath string
	port       int
	server     *http.Server
}

// NewPreviewServer creates a preview server for the bundle at bundlePath.
func NewPreviewServer(bundlePath string, port int) *PreviewServer {
	return &PreviewServer{
		bundlePath: bundlePath,
		port:       port,
	}
}

// Start starts the preview server and blocks until stopped.
func (p *PreviewServer) Start() error {
	if _, err := os.Stat(p.bundlePath); os.IsNotExist(err) {
		return fmt.Errorf("bundle path does not exist: %s", p.bundlePath)
	}
	for _, name := range []string{"index.html", "style.css"} {
		if _, err := os.Stat(filepath.Join(p.bundlePath, name)); os.IsNotExist(err) {
			return fmt.Errorf("no %s in bundle %s (run --export-bundle first)", name, p.bundlePath)
		}
	}

	mux := http.NewServeMux()
	fs := http.FileServer(http.Dir(p.bundlePath))
	mux.Handle("/", noCacheMiddleware(fs))
	mux.HandleFunc("/__preview__/status", p.statusHandler)

	p.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", p.port),
		Handler: mux,
	}

	return p.server.ListenAndServe()
}

// StartWithGracefulShutdown starts the server and shuts it down cleanly on
// SIGINT/SIGTERM.
func (p *PreviewServer) StartWithGracefulShutdown() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := p.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-stop:
		fmt.Fprintln(os.Stderr, "\nShutting down preview server...")
		return p.Stop()
	case err := <-errChan:
		return err
	}
}

// Stop gracefully stops the preview server.
func (p *PreviewServer) Stop() error {
	if p.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.server.Shutdown(ctx)
}

// Port returns the port the server is configured for.
func (p *PreviewServer) Port() int {
	return p.port
}

// URL returns the local URL of the preview server.
func (p *PreviewServer) URL() string {
	return fmt.Sprintf("http://localhost:%d", p.port)
}

// statusHandler reports the bundle state as JSON.
func (p *PreviewServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	status := struct {
		Status      string `json:"status"`
		Port        int    `json:"port"`
		BundlePath  string `json:"bundle_path"`
		HasIndex    bool   `json:"has_index"`
		HasStyle    bool   `json:"has_style"`
		Breakpoints int    `json:"breakpoints"`
	}{
		Status:     "running",
		Port:       p.port,
		BundlePath: p.bundlePath,
	}

	if _, err := os.Stat(filepath.Join(p.bundlePath, "index.html")); err == nil {
		status.HasIndex = true
	}
	if _, err := os.Stat(filepath.Join(p.bundlePath, "style.css")); err == nil {
		status.HasStyle = true
	}
	if data, err := os.ReadFile(filepath.Join(p.bundlePath, "data", "meta.json")); err == nil {
		var meta Meta
		if json.Unmarshal(data, &meta) == nil {
			status.Breakpoints = meta.Breakpoints
		}
	}

	json.NewEncoder(w).Encode(status)
}

// noCacheMiddleware adds headers to prevent browser caching.
func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		// CORS headers so development tooling can hit the status endpoint.
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// FindAvailablePort finds an available port in the given range.
func FindAvailablePort(start, end int) (int, error) {
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}
