package service

import "github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"

type DashboardStats struct {
	TotalRegistrations   int   `json:"total_registrations"`
	TotalParticipants    int   `json:"total_participants"`
	PaidRegistrations    int   `json:"paid_registrations"`
	PendingRegistrations int   `json:"pending_registrations"`
	TotalRevenue         int64 `json:"total_revenue"`
	TotalDonations       int   `json:"total_donations"`
	TotalDonationAmount  int64 `json:"total_donation_amount"`
}

// ComputeStats is a pure function of the loaded lists. Revenue counts
// paid registrations only; donation totals count completed only.
func ComputeStats(regs []domain.Registration, dons []domain.Donation) DashboardStats {
	st := DashboardStats{
		TotalRegistrations: len(regs),
		TotalDonations:     len(dons),
	}
	for _, r := range regs {
		st.TotalParticipants += r.AdultCount + r.KidsCount
		switch r.PaymentStatus {
		case domain.PaymentPaid:
			st.PaidRegistrations++
			st.TotalRevenue += r.TotalAmount
		case domain.PaymentPending:
			st.PendingRegistrations++
		}
	}
	for _, d := range dons {
		if d.Status == domain.DonationCompleted {
			st.TotalDonationAmount += d.Amount
		}
	}
	return st
}
