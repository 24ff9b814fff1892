package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/course-enrollment-api/pkg/errors"
)

func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, appErrors.Validation(err, "invalid "+name)
	}
	return id, nil
}

func invalidPayload(err error) error {
	return appErrors.Validation(err, "invalid payload")
}
