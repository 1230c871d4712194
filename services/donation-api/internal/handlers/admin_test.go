package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/repository"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/service"
)

type stubRegStore struct{ regs []domain.Registration }

func (s *stubRegStore) List(ctx context.Context) ([]domain.Registration, error) { return s.regs, nil }
func (s *stubRegStore) ByID(ctx context.Context, id string) (*domain.Registration, error) {
	for i := range s.regs {
		if s.regs[i].ID == id {
			return &s.regs[i], nil
		}
	}
	return nil, repository.ErrNotFound
}
func (s *stubRegStore) Patch(ctx context.Context, id string, fields map[string]any) error {
	for i := range s.regs {
		if s.regs[i].ID != id {
			continue
		}
		if v, ok := fields["payment_status"]; ok {
			s.regs[i].PaymentStatus = v.(string)
		}
		if v, ok := fields["transaction_id"]; ok {
			if v == nil {
				s.regs[i].TransactionID = nil
			} else {
				tx := v.(string)
				s.regs[i].TransactionID = &tx
			}
		}
		return nil
	}
	return repository.ErrNotFound
}

func adminRouter(regs service.RegistrationStore, dons service.DonationStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAdminHandler(service.NewAdminSvc(regs, dons, nil))
	r.GET("/v1/admin/registrations", h.ListRegistrations)
	r.PATCH("/v1/admin/registrations/:id/payment-status", h.UpdatePaymentStatus)
	r.GET("/v1/admin/export/:kind", h.Export)
	return r
}

func TestExport_FilenameAndContentType(t *testing.T) {
	regs := &stubRegStore{regs: []domain.Registration{
		{ID: "r1", Name: "Alice Brown", PaymentStatus: domain.PaymentPaid},
		{ID: "r2", Name: "Bob Green", PaymentStatus: domain.PaymentPending},
	}}
	r := adminRouter(regs, &stubDonStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/export/registrations?status=paid", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	wantName := fmt.Sprintf("registrations-%s.csv", time.Now().Format("2006-01-02"))
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, wantName) {
		t.Errorf("Content-Disposition = %q, want filename %q", cd, wantName)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	// filter applied before serialization
	body := w.Body.String()
	if !strings.Contains(body, "Alice Brown") || strings.Contains(body, "Bob Green") {
		t.Errorf("export should contain only the paid row:\n%s", body)
	}
}

func TestExport_UnknownKind(t *testing.T) {
	r := adminRouter(&stubRegStore{}, &stubDonStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/export/volunteers", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdatePaymentStatus_Endpoint(t *testing.T) {
	regs := &stubRegStore{regs: []domain.Registration{
		{ID: "r1", PaymentStatus: domain.PaymentPending},
	}}
	r := adminRouter(regs, &stubDonStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/registrations/r1/payment-status", strings.NewReader(`{"status":"paid"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"payment_status":"paid"`) {
		t.Errorf("body = %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"transaction_id":"tx_`) {
		t.Errorf("expected synthesized transaction id, body = %s", w.Body.String())
	}
}

func TestUpdatePaymentStatus_UnknownID(t *testing.T) {
	r := adminRouter(&stubRegStore{}, &stubDonStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/registrations/missing/payment-status", strings.NewReader(`{"status":"paid"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
