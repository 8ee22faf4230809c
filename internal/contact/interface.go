package contact

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/joshu-sajeev/contactrelay/internal/dto"
)

// ContactServiceInterface defines the contract for contact form business logic.
type ContactServiceInterface interface {
	CheckConfigured() error
	Submit(ctx context.Context, sub *dto.ContactSubmission) error
}

// ContactHandlerInterface defines the contract for HTTP request handlers.
type ContactHandlerInterface interface {
	Submit(c *gin.Context)
	Describe(c *gin.Context)
}
