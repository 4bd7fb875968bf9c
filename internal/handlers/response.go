package handlers

import (
	"errors"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RespondError writes a JSON error body with a single "error" message.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// validationErrors converts binding failures into a field-to-message map keyed
// by the JSON field name. Non-validator errors (malformed JSON, wrong types)
// collapse into a single "request" entry.
func validationErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["request"] = "invalid request body"
		return out
	}

	for _, fe := range verrs {
		out[jsonFieldName(fe.Field())] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}

// jsonFieldName lowercases the first rune of a struct field name, matching
// the camelCase JSON tags on the request types.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
