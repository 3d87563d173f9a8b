package request

type CreateAmbassadorRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	Name            string  `json:"name" binding:"required"`
	DiscountPercent float64 `json:"discountPercent" binding:"min=0,max=100"`
	CommissionRate  float64 `json:"commissionRate" binding:"min=0,max=1"`
}

type UpdateAmbassadorRequest struct {
	CouponCode      *string  `json:"couponCode,omitempty"`
	DiscountPercent *float64 `json:"discountPercent,omitempty" binding:"omitempty,min=0,max=100"`
	CommissionRate  *float64 `json:"commissionRate,omitempty" binding:"omitempty,min=0,max=1"`
}

type UpdateAmbassadorStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
