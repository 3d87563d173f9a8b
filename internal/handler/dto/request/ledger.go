package request

type RedeemCodeRequest struct {
	Code             string `json:"code" binding:"required"`
	OrderID          string `json:"orderId" binding:"required"`
	OrderAmountCents int64  `json:"orderAmountCents" binding:"required,gt=0"`
}

type SetOrderPaidRequest struct {
	// Pointer so an explicit false binds; a missing or non-boolean value is a
	// validation error.
	IsPaid *bool `json:"isPaid" binding:"required"`
}

type BulkPaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
