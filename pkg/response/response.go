package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/course-enrollment-api/pkg/errors"
)

// JSON writes data as the raw response body. Resources and lists are not
// wrapped so browser clients can consume them directly.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error converts err to the common error body. Server errors carry the
// underlying store error in detail.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	body := *appErr
	if body.Status >= http.StatusInternalServerError && body.Err != nil && body.Detail == "" {
		body.Detail = body.Err.Error()
	}
	_ = c.Error(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(body.Status, &body)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

// Attachment streams a generated file.
func Attachment(c *gin.Context, filename, contentType string, content []byte) {
	c.Header("Cache-Control", "no-store")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, content)
}
