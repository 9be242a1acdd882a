package server

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindMessages maps a struct field to its per-tag error text.
type bindMessages map[string]map[string]string

type questionURI struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

// bindURI renders the 404 page when the path id is not a positive integer.
func bindURI(c *gin.Context, req any) bool {
	if err := c.ShouldBindUri(req); err != nil {
		renderNotFound(c)
		return false
	}
	return true
}

func bindQuestionID(c *gin.Context) (uint, bool) {
	var uri questionURI
	if !bindURI(c, &uri) {
		return 0, false
	}
	return uri.ID, true
}

// resolveFieldErrors returns one message per failing field, keyed by the
// struct field name. The bool is false when err is not a validation error.
func resolveFieldErrors(err error, messages bindMessages, fallback string) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make(map[string]string, len(verrs))
	for _, verr := range verrs {
		field := verr.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, seen := out[field]; seen {
			continue
		}
		msg := fallback
		if fieldMsgs, ok := messages[field]; ok {
			if m, ok := fieldMsgs[verr.Tag()]; ok {
				msg = m
			}
		}
		out[field] = msg
	}
	return out, true
}
