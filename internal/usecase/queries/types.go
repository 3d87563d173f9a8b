package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OrderView struct {
	OrderID         string    `json:"order_id"`
	OrderDate       time.Time `json:"order_date"`
	AmountCents     int64     `json:"amount_cents"`
	CommissionCents int64     `json:"commission_cents"`
	IsPaid          bool      `json:"is_paid"`
}

type AmbassadorView struct {
	ID                   uuid.UUID   `json:"id"`
	Email                string      `json:"email"`
	Name                 string      `json:"name"`
	Status               string      `json:"status"`
	ReferralCode         string      `json:"referral_code"`
	CouponCode           string      `json:"coupon_code"`
	DiscountPercent      float64     `json:"discount_percent"`
	CommissionRate       float64     `json:"commission_rate"`
	SalesCents           int64       `json:"sales_cents"`
	EarningsCents        int64       `json:"earnings_cents"`
	OrderCount           int32       `json:"order_count"`
	PaymentsPendingCents int64       `json:"payments_pending_cents"`
	PaymentsPaidCents    int64       `json:"payments_paid_cents"`
	RecentOrders         []OrderView `json:"recent_orders"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

type AmbassadorListItem struct {
	ID                   uuid.UUID `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	Status               string    `json:"status"`
	ReferralCode         string    `json:"referral_code"`
	CouponCode           string    `json:"coupon_code"`
	SalesCents           int64     `json:"sales_cents"`
	EarningsCents        int64     `json:"earnings_cents"`
	OrderCount           int32     `json:"order_count"`
	PaymentsPendingCents int64     `json:"payments_pending_cents"`
	PaymentsPaidCents    int64     `json:"payments_paid_cents"`
	CreatedAt            time.Time `json:"created_at"`
}

// ActiveCodeView is one storefront-facing code entry. Every approved
// ambassador contributes two entries, one per code, tagged with its type.
type ActiveCodeView struct {
	AmbassadorID    uuid.UUID `json:"ambassador_id"`
	AmbassadorName  string    `json:"ambassador_name"`
	Code            string    `json:"code"`
	Type            string    `json:"type"` // "coupon" | "referral"
	DiscountPercent float64   `json:"discount_percent"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
