package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hyperlinqai/tulip-foundation/services/mail-relay/internal/mailer"
)

// FallbackRecipient catches applications when no recipient is configured.
const FallbackRecipient = "volunteer@tulipfoundation.org"

type VolunteerHandler struct {
	sender    mailer.Sender
	recipient string
}

func NewVolunteerHandler(sender mailer.Sender, recipient string) *VolunteerHandler {
	if recipient == "" {
		recipient = FallbackRecipient
	}
	return &VolunteerHandler{sender: sender, recipient: recipient}
}

type applicationBody struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Reason    string `json:"reason" binding:"required"`
}

func (h *VolunteerHandler) SendApplication(c *gin.Context) {
	var body applicationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body", "error": err.Error()})
		return
	}

	html, text, err := mailer.RenderVolunteerEmail(mailer.Application{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
		Reason:    body.Reason,
	})
	if err != nil {
		log.Printf("[relay] render: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to render application email", "error": err.Error()})
		return
	}

	msg := mailer.Message{
		To:      h.recipient,
		Subject: "New Volunteer Application: " + body.FirstName + " " + body.LastName,
		Text:    text,
		HTML:    html,
	}
	if err := h.sender.Send(msg); err != nil {
		log.Printf("[relay] send: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to send application email", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *VolunteerHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "mail relay is running"})
}
