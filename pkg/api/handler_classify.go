package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// classifyEmailHandler handles POST /classify_email.
// Masks PII in the submitted email body, classifies the masked text, and
// returns the original body, the masked entities, the masked body, and the
// category.
func (s *Server) classifyEmailHandler(c *gin.Context) {
	// 1. Bind HTTP request
	var req ClassifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_body field is required"})
		return
	}

	// 2. Call service
	result, err := s.classification.Process(c.Request.Context(), *req.EmailBody)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// 3. Return response
	c.JSON(http.StatusOK, &ClassifyEmailResponse{
		InputEmailBody:       result.InputEmailBody,
		ListOfMaskedEntities: toMaskedEntities(result.Entities),
		MaskedEmail:          result.MaskedEmail,
		CategoryOfTheEmail:   result.Category,
	})
}
