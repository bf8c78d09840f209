// Package web serves the embedded browser client for the movie catalog.
package web

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed index.html app.js styles.css
var assets embed.FS

// RegisterRoutes mounts the browser client on the given router.
func RegisterRoutes(r chi.Router) {
	r.Get("/", serveAsset("index.html", "text/html; charset=utf-8"))
	r.Get("/app.js", serveAsset("app.js", "application/javascript; charset=utf-8"))
	r.Get("/styles.css", serveAsset("styles.css", "text/css; charset=utf-8"))
}

func serveAsset(name, contentType string) http.HandlerFunc {
	data, err := assets.ReadFile(name)
	if err != nil {
		// Embedded files are checked at compile time; this only trips if
		// the embed directive and the route list drift apart.
		panic(err)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	}
}
