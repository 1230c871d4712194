package domain

import "time"

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"

	DonationPending   = "pending"
	DonationCompleted = "completed"

	// Provenance tag stamped on every record the public form inserts.
	DonationTypeOnline = "online"
)

// Registration rows are created by the public registration flow; this
// service only reads them and patches payment_status.
type Registration struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `json:"name"`
	Email          string    `gorm:"index" json:"email"`
	Phone          string    `json:"phone"`
	AdultCount     int       `json:"adult_count"`
	KidsCount      int       `json:"kids_count"`
	FamilyCategory string    `gorm:"index" json:"family_category"`
	TotalAmount    int64     `json:"total_amount"`
	PaymentStatus  string    `gorm:"index" json:"payment_status"` // pending|paid
	TransactionID  *string   `json:"transaction_id"`              // non-null only when paid
	IsTulipParent  bool      `json:"is_tulip_parent"`
	TShirtSizes    []string  `gorm:"serializer:json" json:"t_shirt_sizes"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Donation struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `gorm:"index" json:"email"`
	Amount          int64     `json:"amount"`
	Designation     string    `json:"designation"`
	IsAnonymous     bool      `json:"is_anonymous"`
	PaymentID       string    `gorm:"index" json:"payment_id"`
	DonationType    string    `json:"donation_type"`
	Status          string    `gorm:"index" json:"status"` // pending|completed
	CertificateSent bool      `json:"certificate_sent"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AdminUser struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}
