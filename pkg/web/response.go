// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// DetailResponse provides the json encoded error body returned by all
// endpoints. The key matches what API clients already parse.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Error wraps a given err into the json error body.
func Error(err error) DetailResponse {
	return DetailResponse{Detail: err.Error()}
}

// GetErrorMsg returns a readable message for the given validation error.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " field value is below minimum"
	case "max":
		return " field value is above maximum"
	}

	return " field is invalid"
}
