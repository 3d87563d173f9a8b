package response

import (
	"time"

	"ambassador-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	OrderID         string    `json:"orderId"`
	OrderDate       time.Time `json:"orderDate"`
	AmountCents     int64     `json:"amountCents"`
	CommissionCents int64     `json:"commissionCents"`
	IsPaid          bool      `json:"isPaid"`
}

type AmbassadorResponse struct {
	ID                   uuid.UUID       `json:"id"`
	Email                string          `json:"email"`
	Name                 string          `json:"name"`
	Status               string          `json:"status"`
	ReferralCode         string          `json:"referralCode,omitempty"`
	CouponCode           string          `json:"couponCode,omitempty"`
	DiscountPercent      float64         `json:"discountPercent"`
	CommissionRate       float64         `json:"commissionRate"`
	SalesCents           int64           `json:"salesCents"`
	EarningsCents        int64           `json:"earningsCents"`
	OrderCount           int32           `json:"orderCount"`
	PaymentsPendingCents int64           `json:"paymentsPendingCents"`
	PaymentsPaidCents    int64           `json:"paymentsPaidCents"`
	RecentOrders         []OrderResponse `json:"recentOrders"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

type AmbassadorListResponse struct {
	ID                   uuid.UUID `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	Status               string    `json:"status"`
	ReferralCode         string    `json:"referralCode,omitempty"`
	CouponCode           string    `json:"couponCode,omitempty"`
	SalesCents           int64     `json:"salesCents"`
	EarningsCents        int64     `json:"earningsCents"`
	OrderCount           int32     `json:"orderCount"`
	PaymentsPendingCents int64     `json:"paymentsPendingCents"`
	PaymentsPaidCents    int64     `json:"paymentsPaidCents"`
	CreatedAt            time.Time `json:"createdAt"`
}

func FromAmbassadorView(rm *queries.AmbassadorView) *AmbassadorResponse {
	orders := make([]OrderResponse, len(rm.RecentOrders))
	for i, o := range rm.RecentOrders {
		orders[i] = OrderResponse{
			OrderID:         o.OrderID,
			OrderDate:       o.OrderDate,
			AmountCents:     o.AmountCents,
			CommissionCents: o.CommissionCents,
			IsPaid:          o.IsPaid,
		}
	}
	return &AmbassadorResponse{
		ID:                   rm.ID,
		Email:                rm.Email,
		Name:                 rm.Name,
		Status:               rm.Status,
		ReferralCode:         rm.ReferralCode,
		CouponCode:           rm.CouponCode,
		DiscountPercent:      rm.DiscountPercent,
		CommissionRate:       rm.CommissionRate,
		SalesCents:           rm.SalesCents,
		EarningsCents:        rm.EarningsCents,
		OrderCount:           rm.OrderCount,
		PaymentsPendingCents: rm.PaymentsPendingCents,
		PaymentsPaidCents:    rm.PaymentsPaidCents,
		RecentOrders:         orders,
		CreatedAt:            rm.CreatedAt,
		UpdatedAt:            rm.UpdatedAt,
	}
}

func FromAmbassadorListItem(rm *queries.AmbassadorListItem) *AmbassadorListResponse {
	return &AmbassadorListResponse{
		ID:                   rm.ID,
		Email:                rm.Email,
		Name:                 rm.Name,
		Status:               rm.Status,
		ReferralCode:         rm.ReferralCode,
		CouponCode:           rm.CouponCode,
		SalesCents:           rm.SalesCents,
		EarningsCents:        rm.EarningsCents,
		OrderCount:           rm.OrderCount,
		PaymentsPendingCents: rm.PaymentsPendingCents,
		PaymentsPaidCents:    rm.PaymentsPaidCents,
		CreatedAt:            rm.CreatedAt,
	}
}
