package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/service"
)

type DonationHandler struct {
	svc *service.DonationSvc
}

func NewDonationHandler(svc *service.DonationSvc) *DonationHandler {
	return &DonationHandler{svc: svc}
}

type createIntentBody struct {
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description"`
}

func (h *DonationHandler) CreateIntent(c *gin.Context) {
	var body createIntentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Amount < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be at least 1"})
		return
	}

	intent, err := h.svc.CreateIntent(c.Request.Context(), body.Amount, body.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"intent_id":     intent.ID,
		"client_secret": intent.ClientSecret,
	})
}

type submitDonationBody struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Designation string `json:"designation"`
	IsAnonymous bool   `json:"is_anonymous"`
	PaymentID   string `json:"payment_id"`
}

// Submit runs after the widget confirmed the charge. A store failure at
// this point never reaches the donor: the money moved, so the response
// is a confirmation either way.
func (h *DonationHandler) Submit(c *gin.Context) {
	var body submitDonationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := service.SubmitInput{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		Amount:      body.Amount,
		Designation: body.Designation,
		IsAnonymous: body.IsAnonymous,
		PaymentID:   body.PaymentID,
	}
	if errs := service.ValidateSubmission(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	d := h.svc.Submit(c.Request.Context(), in)
	c.JSON(http.StatusCreated, gin.H{
		"first_name":   d.FirstName,
		"last_name":    d.LastName,
		"amount":       d.Amount,
		"designation":  d.Designation,
		"is_anonymous": d.IsAnonymous,
		"payment_id":   d.PaymentID,
	})
}
