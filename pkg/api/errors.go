package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/mailguard/pkg/nlp"
	"github.com/codeready-toolchain/mailguard/pkg/services"
)

// mapServiceError writes the HTTP error response for a service-layer error.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, nlp.ErrUnavailable) {
		// Masking cannot proceed without the recognizer; failing the
		// request is safer than classifying unmasked text.
		c.JSON(http.StatusBadGateway, gin.H{"error": "entity recognition service unavailable"})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
