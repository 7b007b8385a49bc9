package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// Handler serves the embedded single-page frontend. index.html is picked up
// for the root path by http.FileServer.
func Handler() (http.Handler, error) {
	root, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to mount static assets: %w", err)
	}
	return http.FileServer(http.FS(root)), nil
}
