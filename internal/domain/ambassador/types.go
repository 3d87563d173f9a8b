package ambassador

import "errors"

var (
	ErrInvalidStatus            = errors.New("invalid ambassador status")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrInvalidBulkPaymentStatus = errors.New("invalid bulk payment status")
)

// Status is the admin-driven lifecycle state of an ambassador application.
type Status string

const (
	StatusNone     Status = "none"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNone, StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// BulkPaymentStatus is the target state of a bulk payment transition over all
// of an ambassador's orders. "waiting" and "pending" are distinct wire values
// with identical behavior; both are accepted because callers use both.
type BulkPaymentStatus string

const (
	BulkStatusPaid    BulkPaymentStatus = "paid"
	BulkStatusWaiting BulkPaymentStatus = "waiting"
	BulkStatusPending BulkPaymentStatus = "pending"
)

func (s BulkPaymentStatus) String() string {
	return string(s)
}

func (s BulkPaymentStatus) IsValid() bool {
	switch s {
	case BulkStatusPaid, BulkStatusWaiting, BulkStatusPending:
		return true
	default:
		return false
	}
}

func NewBulkPaymentStatus(s string) (BulkPaymentStatus, error) {
	status := BulkPaymentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidBulkPaymentStatus
	}
	return status, nil
}
