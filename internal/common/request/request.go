// Package request holds the gin helpers shared by every feature handler.
package request

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"trading-platform-backend/internal/common/errors"
	"trading-platform-backend/internal/common/validation"
)

// Validatable is implemented by payloads that carry checks gin binding tags cannot express.
type Validatable interface {
	Validate() error
}

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// BindJSON decodes the body into dst, runs binding tags and then dst.Validate
// when dst implements Validatable. message becomes the top-level error message.
func BindJSON(c *gin.Context, dst interface{}, message string) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return validation.FromBindError(err, message)
	}
	if v, ok := dst.(Validatable); ok {
		if err := v.Validate(); err != nil {
			if appErr, ok := errors.AsAppError(err); ok {
				appErr.Message = message
				return appErr
			}
			return errors.NewValidationErrors(message, []errors.FieldError{{Field: "body", Reason: err.Error()}})
		}
	}
	return nil
}

// Fail attaches err to the context for the error middleware to render.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
}
