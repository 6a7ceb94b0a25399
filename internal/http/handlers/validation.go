package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingErrors turns a ShouldBindJSON failure into the field-error map the
// API returns with 422.
func bindingErrors(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			name := strings.ToLower(fe.Field())
			fields[name] = append(fields[name], fieldMessage(name, fe.Tag()))
		}
		return gin.H{"errors": fields}
	}
	return gin.H{"errors": map[string][]string{"body": {err.Error()}}}
}

func fieldMessage(field, tag string) string {
	switch tag {
	case "required":
		return "The " + field + " field is required."
	case "email":
		return "The " + field + " must be a valid email address."
	case "min":
		return "The " + field + " is too short."
	default:
		return "The " + field + " field is invalid."
	}
}
