package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/contact"
)

// SubmitContact accepts a contact form enquiry
func (h *Handlers) SubmitContact(c *gin.Context) {
	var req contact.Enquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.RecordContact("invalid")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	receipt, err := h.contact.Submit(c.Request.Context(), req)
	if err != nil {
		var verr *contact.ValidationError
		switch {
		case errors.As(err, &verr):
			h.metrics.RecordContact("invalid")
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "validation failed",
				"fields": verr.Fields,
			})
		case errors.Is(err, contact.ErrForward):
			h.metrics.RecordContact("failed")
			_ = c.Error(err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to submit enquiry"})
		default:
			h.metrics.RecordContact("failed")
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	h.metrics.RecordContact("accepted")
	c.JSON(http.StatusAccepted, receipt)
}
