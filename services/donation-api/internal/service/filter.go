package service

import (
	"strings"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
)

// Filtering is plain substring containment, case-insensitive, intersected
// with an exclusive status choice ("" and "all" both mean no status
// filter). Both predicates are order-independent.

func matchesQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func statusWanted(filter, status string) bool {
	return filter == "" || filter == "all" || filter == status
}

func FilterRegistrations(in []domain.Registration, query, status string) []domain.Registration {
	out := make([]domain.Registration, 0, len(in))
	for _, r := range in {
		if !statusWanted(status, r.PaymentStatus) {
			continue
		}
		if !matchesQuery(query, r.Name, r.Email, r.FamilyCategory) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func FilterDonations(in []domain.Donation, query, status string) []domain.Donation {
	out := make([]domain.Donation, 0, len(in))
	for _, d := range in {
		if !statusWanted(status, d.Status) {
			continue
		}
		if !matchesQuery(query, d.FirstName+" "+d.LastName, d.Email, d.Designation) {
			continue
		}
		out = append(out, d)
	}
	return out
}
