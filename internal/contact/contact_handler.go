package contact

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joshu-sajeev/contactrelay/common"
	"github.com/joshu-sajeev/contactrelay/internal/config"
	"github.com/joshu-sajeev/contactrelay/internal/dto"
	"github.com/joshu-sajeev/contactrelay/middleware"
)

type ContactHandler struct {
	service ContactServiceInterface
	now     func() time.Time
}

func NewContactHandler(s ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: s, now: time.Now}
}

var _ ContactHandlerInterface = (*ContactHandler)(nil)

// Submit handles contact form submissions.
// It rejects the request early when the server has no SMTP credentials,
// binds the JSON or urlencoded body, delegates validation and delivery
// to the ContactService, and returns HTTP 200 once the email is sent.
func (h *ContactHandler) Submit(c *gin.Context) {
	if err := h.service.CheckConfigured(); err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	var req dto.ContactSubmission
	if !middleware.Bind(c, &req) {
		c.Abort()
		return
	}

	if err := h.service.Submit(c.Request.Context(), &req); err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, dto.SubmitResponse{
		Success:   true,
		Message:   "Form submitted successfully!",
		Timestamp: common.Timestamp(h.now()),
	})
}

// Describe returns the field contract of the contact endpoint.
func (h *ContactHandler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, dto.EndpointInfo{
		Message:        "Contact Form API Endpoint",
		Method:         http.MethodPost,
		ContentType:    "application/json",
		RequiredFields: config.RequiredFields,
		OptionalFields: config.OptionalFields,
	})
}
