package response

import (
	"time"

	"ambassador-ledger/internal/usecase/commands"
	"ambassador-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type RedemptionResponse struct {
	AmbassadorID    uuid.UUID `json:"ambassadorId"`
	OrderID         string    `json:"orderId"`
	OrderDate       time.Time `json:"orderDate"`
	AmountCents     int64     `json:"amountCents"`
	CommissionCents int64     `json:"commissionCents"`
}

type ActiveCodeResponse struct {
	AmbassadorID    uuid.UUID `json:"ambassadorId"`
	AmbassadorName  string    `json:"ambassadorName"`
	Code            string    `json:"code"`
	Type            string    `json:"type"`
	DiscountPercent float64   `json:"discountPercent"`
}

func FromRedeemResult(r *commands.RedeemResult) *RedemptionResponse {
	return &RedemptionResponse{
		AmbassadorID:    r.AmbassadorID,
		OrderID:         r.OrderID,
		OrderDate:       r.OrderDate,
		AmountCents:     r.AmountCents,
		CommissionCents: r.CommissionCents,
	}
}

func FromActiveCodeView(rm *queries.ActiveCodeView) *ActiveCodeResponse {
	return &ActiveCodeResponse{
		AmbassadorID:    rm.AmbassadorID,
		AmbassadorName:  rm.AmbassadorName,
		Code:            rm.Code,
		Type:            rm.Type,
		DiscountPercent: rm.DiscountPercent,
	}
}
