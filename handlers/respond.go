package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"railway-booking/services"
)

// errorStatus maps the service error taxonomy onto HTTP status codes:
// validation and conflict/guard errors are the caller's fault, missing
// records are 404, anything else is a store fault.
func errorStatus(err error) int {
	var validation services.ValidationError
	var conflict services.ConflictError
	var notFound services.NotFoundError

	switch {
	case errors.As(err, &validation), errors.As(err, &conflict):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError converts a service error into the JSON error envelope.
// Store faults are logged server-side and surfaced with a generic
// message only.
func respondError(c *gin.Context, err error, generic string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", generic, err)
		c.JSON(status, gin.H{"error": generic})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
