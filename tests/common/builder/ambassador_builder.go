//go:build unit || e2e

package builder

import (
	"time"

	domambassador "ambassador-ledger/internal/domain/ambassador"
	reqdto "ambassador-ledger/internal/handler/dto/request"
	"ambassador-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type AmbassadorBuilder struct {
	ID              uuid.UUID
	Email           string
	Name            string
	Status          domambassador.Status
	ReferralCode    string
	CouponCode      string
	DiscountPercent float64
	CommissionRate  float64

	SalesCents           int64
	EarningsCents        int64
	OrderCount           int32
	PaymentsPendingCents int64
	PaymentsPaidCents    int64
	Orders               []domambassador.OrderEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewAmbassadorBuilder() *AmbassadorBuilder {
	now := time.Now()
	return &AmbassadorBuilder{
		ID:              uuid.New(),
		Email:           "diana@example.com",
		Name:            "Diana",
		Status:          domambassador.StatusApproved,
		ReferralCode:    "DIA1234",
		CouponCode:      "DIA1234",
		DiscountPercent: 10,
		CommissionRate:  0.10,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *AmbassadorBuilder) With(mutate func(*AmbassadorBuilder)) *AmbassadorBuilder {
	mutate(b)
	return b
}

func (b *AmbassadorBuilder) WithStatus(s domambassador.Status) *AmbassadorBuilder {
	b.Status = s
	return b
}

func (b *AmbassadorBuilder) WithCodes(referral, coupon string) *AmbassadorBuilder {
	b.ReferralCode = referral
	b.CouponCode = coupon
	return b
}

func (b *AmbassadorBuilder) WithOrder(orderID string, amountCents, commissionCents int64, isPaid bool) *AmbassadorBuilder {
	b.Orders = append(b.Orders, domambassador.OrderEntry{
		OrderID:         orderID,
		OrderDate:       b.CreatedAt,
		AmountCents:     amountCents,
		CommissionCents: commissionCents,
		IsPaid:          isPaid,
	})
	b.SalesCents += amountCents
	b.EarningsCents += commissionCents
	b.OrderCount++
	if isPaid {
		b.PaymentsPaidCents += commissionCents
	} else {
		b.PaymentsPendingCents += commissionCents
	}
	return b
}

// Build methods
func (b *AmbassadorBuilder) BuildDomain() *domambassador.Ambassador {
	email, _ := domambassador.NewEmail(b.Email)
	name, _ := domambassador.NewName(b.Name)
	discount, _ := domambassador.NewDiscountPercent(b.DiscountPercent)
	rate, _ := domambassador.NewCommissionRate(b.CommissionRate)

	return domambassador.Reconstruct(
		b.ID,
		email,
		name,
		b.Status,
		b.ReferralCode,
		b.CouponCode,
		discount,
		rate,
		b.SalesCents,
		b.EarningsCents,
		b.OrderCount,
		b.PaymentsPendingCents,
		b.PaymentsPaidCents,
		b.Orders,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *AmbassadorBuilder) BuildApplicationRequestDTO() reqdto.CreateAmbassadorRequest {
	return reqdto.CreateAmbassadorRequest{
		Email:           b.Email,
		Name:            b.Name,
		DiscountPercent: b.DiscountPercent,
		CommissionRate:  b.CommissionRate,
	}
}

func (b *AmbassadorBuilder) BuildView() *queries.AmbassadorView {
	orders := make([]queries.OrderView, len(b.Orders))
	for i, o := range b.Orders {
		orders[i] = queries.OrderView{
			OrderID:         o.OrderID,
			OrderDate:       o.OrderDate,
			AmountCents:     o.AmountCents,
			CommissionCents: o.CommissionCents,
			IsPaid:          o.IsPaid,
		}
	}
	return &queries.AmbassadorView{
		ID:                   b.ID,
		Email:                b.Email,
		Name:                 b.Name,
		Status:               b.Status.String(),
		ReferralCode:         b.ReferralCode,
		CouponCode:           b.CouponCode,
		DiscountPercent:      b.DiscountPercent,
		CommissionRate:       b.CommissionRate,
		SalesCents:           b.SalesCents,
		EarningsCents:        b.EarningsCents,
		OrderCount:           b.OrderCount,
		PaymentsPendingCents: b.PaymentsPendingCents,
		PaymentsPaidCents:    b.PaymentsPaidCents,
		RecentOrders:         orders,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}
