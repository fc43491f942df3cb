// Package apierr defines the error taxonomy every endpoint maps onto.
package apierr

import "net/http"

// Error is one entry of the taxonomy. Status doubles as the "error" field
// of the JSON envelope, Message as its "message" field.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	BadRequest    = &Error{Status: http.StatusBadRequest, Message: "Bad Request"}
	NotFound      = &Error{Status: http.StatusNotFound, Message: "Resource Not Found"}
	Unprocessable = &Error{Status: http.StatusUnprocessableEntity, Message: "Unprocessable"}
	Internal      = &Error{Status: http.StatusInternalServerError, Message: "Internal Server Error"}
)

// Response is the JSON body every failed request returns.
type Response struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Response() Response {
	return Response{Success: false, Error: e.Status, Message: e.Message}
}
