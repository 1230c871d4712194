package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/repository"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/service"
)

type AdminHandler struct {
	svc *service.AdminSvc
}

func NewAdminHandler(svc *service.AdminSvc) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) ListRegistrations(c *gin.Context) {
	regs, err := h.svc.Registrations(c.Request.Context(), c.Query("q"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrations": regs})
}

func (h *AdminHandler) ListDonations(c *gin.Context) {
	dons, err := h.svc.Donations(c.Request.Context(), c.Query("q"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": dons})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	st, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

type statusBody struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminHandler) UpdatePaymentStatus(c *gin.Context) {
	var body statusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reg, err := h.svc.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

func (h *AdminHandler) UpdateDonationStatus(c *gin.Context) {
	var body statusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.svc.UpdateDonationStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *AdminHandler) SendCertificate(c *gin.Context) {
	d, err := h.svc.SendCertificate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Export streams the filtered list as CSV, same filter params as the
// list endpoints so the download matches what the dashboard shows.
func (h *AdminHandler) Export(c *gin.Context) {
	kind := c.Param("kind")
	var buf bytes.Buffer

	switch kind {
	case "registrations":
		regs, err := h.svc.Registrations(c.Request.Context(), c.Query("q"), c.Query("status"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := service.ExportRegistrationsCSV(&buf, regs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	case "donations":
		dons, err := h.svc.Donations(c.Request.Context(), c.Query("q"), c.Query("status"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := service.ExportDonationsCSV(&buf, dons); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown export kind"})
		return
	}

	name := service.ExportFileName(kind, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrBadStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
