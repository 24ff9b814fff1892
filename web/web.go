// Package web embeds the browser forms used to manage students, courses and
// enrollments.
package web

import (
	"bytes"
	"embed"
	"html"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var files embed.FS

// Register serves index.html at / and the remaining assets under /static.
// apiBase is handed to the page so fetch calls honour API_PREFIX.
func Register(r gin.IRoutes, apiBase string) {
	static, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	index, err := fs.ReadFile(static, "index.html")
	if err != nil {
		panic(err)
	}

	index = bytes.ReplaceAll(index, []byte("{{API_BASE}}"), []byte(html.EscapeString(apiBase)))

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	r.StaticFS("/static", http.FS(static))
}
