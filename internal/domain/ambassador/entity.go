package ambassador

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyRedeemed    = errors.New("order already redeemed for this ambassador")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("order id is required")
	ErrInvalidOrderAmount = errors.New("order amount must be positive")
	ErrNotApproved        = errors.New("ambassador is not approved")
)

// OrderEntry is one attributed order in the ambassador's ledger. OrderID is
// unique within one ambassador's order list; cross-ambassador uniqueness is
// not required.
type OrderEntry struct {
	OrderID         string
	OrderDate       time.Time
	AmountCents     int64
	CommissionCents int64
	IsPaid          bool
}

// Ambassador is the aggregate root of the commission ledger. The running
// totals and the order entries move together: paymentsPendingCents plus
// paymentsPaidCents always equals the commission sum over orders.
type Ambassador struct {
	id              uuid.UUID
	email           Email
	name            Name
	status          Status
	referralCode    string
	couponCode      string
	discountPercent DiscountPercent
	commissionRate  CommissionRate

	salesCents           int64
	earningsCents        int64
	orderCount           int32
	paymentsPendingCents int64
	paymentsPaidCents    int64
	orders               []OrderEntry

	createdAt time.Time
	updatedAt time.Time
}

// NewApplication creates a fresh ambassador application in pending status with
// zeroed totals and no codes.
func NewApplication(id uuid.UUID, email, name string, discountPercent, commissionRate float64, now time.Time) (*Ambassador, error) {
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	d, err := NewDiscountPercent(discountPercent)
	if err != nil {
		return nil, err
	}
	r, err := NewCommissionRate(commissionRate)
	if err != nil {
		return nil, err
	}

	return &Ambassador{
		id:              id,
		email:           e,
		name:            n,
		status:          StatusPending,
		discountPercent: d,
		commissionRate:  r,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Reconstruct rebuilds an aggregate from persisted state without validation
// side effects. Repositories own the stored values.
func Reconstruct(
	id uuid.UUID,
	email Email,
	name Name,
	status Status,
	referralCode, couponCode string,
	discountPercent DiscountPercent,
	commissionRate CommissionRate,
	salesCents, earningsCents int64,
	orderCount int32,
	paymentsPendingCents, paymentsPaidCents int64,
	orders []OrderEntry,
	createdAt, updatedAt time.Time,
) *Ambassador {
	return &Ambassador{
		id:                   id,
		email:                email,
		name:                 name,
		status:               status,
		referralCode:         referralCode,
		couponCode:           couponCode,
		discountPercent:      discountPercent,
		commissionRate:       commissionRate,
		salesCents:           salesCents,
		earningsCents:        earningsCents,
		orderCount:           orderCount,
		paymentsPendingCents: paymentsPendingCents,
		paymentsPaidCents:    paymentsPaidCents,
		orders:               orders,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// ChangeStatus applies an admin lifecycle transition. Becoming approved is the
// only transition with a side effect: the referral code is derived once, and
// the coupon code defaults to it when not set by an admin. The derivation is
// guarded by the code fields being empty, so a later rename never regenerates
// the code.
func (a *Ambassador) ChangeStatus(status Status, gen CodeGenerator, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	a.status = status
	a.updatedAt = now

	if status != StatusApproved {
		return nil
	}

	if a.referralCode == "" {
		a.referralCode = gen.Generate(a.name)
		if a.couponCode == "" {
			a.couponCode = a.referralCode
		}
	}
	return nil
}

// UpdateProfile applies admin-settable economics and coupon code. Rate changes
// never touch already-accrued orders; commission is captured per entry at
// redemption time.
func (a *Ambassador) UpdateProfile(couponCode *string, discountPercent, commissionRate *float64, now time.Time) error {
	if couponCode != nil {
		a.couponCode = strings.TrimSpace(*couponCode)
	}
	if discountPercent != nil {
		d, err := NewDiscountPercent(*discountPercent)
		if err != nil {
			return err
		}
		a.discountPercent = d
	}
	if commissionRate != nil {
		r, err := NewCommissionRate(*commissionRate)
		if err != nil {
			return err
		}
		a.commissionRate = r
	}
	a.updatedAt = now
	return nil
}

// MatchesCode reports whether the candidate matches either code,
// case-insensitively.
func (a *Ambassador) MatchesCode(code string) bool {
	return strings.EqualFold(code, a.couponCode) || strings.EqualFold(code, a.referralCode)
}

// CommissionFor computes the commission for an order amount at the current
// rate, rounded to the nearest cent.
func (a *Ambassador) CommissionFor(amountCents int64) int64 {
	return int64(math.Round(float64(amountCents) * a.commissionRate.Value()))
}

// Redeem attributes one order to the ambassador: appends an unpaid order entry
// and rolls the amount and commission into the running totals. Redeeming an
// orderID that is already present returns ErrAlreadyRedeemed and changes
// nothing.
func (a *Ambassador) Redeem(orderID string, amountCents int64, now time.Time) (OrderEntry, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return OrderEntry{}, ErrInvalidOrderID
	}
	if amountCents <= 0 {
		return OrderEntry{}, ErrInvalidOrderAmount
	}
	if a.status != StatusApproved {
		return OrderEntry{}, ErrNotApproved
	}
	for _, o := range a.orders {
		if o.OrderID == orderID {
			return OrderEntry{}, ErrAlreadyRedeemed
		}
	}

	entry := OrderEntry{
		OrderID:         orderID,
		OrderDate:       now,
		AmountCents:     amountCents,
		CommissionCents: a.CommissionFor(amountCents),
		IsPaid:          false,
	}

	a.orders = append(a.orders, entry)
	a.salesCents += entry.AmountCents
	a.earningsCents += entry.CommissionCents
	a.orderCount++
	a.paymentsPendingCents += entry.CommissionCents
	a.updatedAt = now

	return entry, nil
}

// SetOrderPaid flips one order's paid flag and moves its commission between
// the pending and paid totals. Requesting the state the order is already in is
// a no-op; the totals must never be adjusted twice for the same flip.
func (a *Ambassador) SetOrderPaid(orderID string, isPaid bool, now time.Time) (bool, error) {
	for i := range a.orders {
		if a.orders[i].OrderID != orderID {
			continue
		}
		if a.orders[i].IsPaid == isPaid {
			return false, nil
		}

		a.orders[i].IsPaid = isPaid
		if isPaid {
			a.paymentsPendingCents -= a.orders[i].CommissionCents
			a.paymentsPaidCents += a.orders[i].CommissionCents
		} else {
			a.paymentsPaidCents -= a.orders[i].CommissionCents
			a.paymentsPendingCents += a.orders[i].CommissionCents
		}
		a.updatedAt = now
		return true, nil
	}
	return false, ErrOrderNotFound
}

// SetAllOrdersStatus applies a bulk payment transition.
//
// "paid" marks every order paid and moves the current pending total into paid
// as one lump aggregate move. "waiting" and "pending" mark every order unpaid
// but deliberately leave the totals alone; only per-order flips move money
// back. The asymmetry is load-bearing for existing callers and must not be
// made symmetric.
func (a *Ambassador) SetAllOrdersStatus(status BulkPaymentStatus, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidBulkPaymentStatus
	}

	paid := status == BulkStatusPaid
	for i := range a.orders {
		a.orders[i].IsPaid = paid
	}
	if paid {
		a.paymentsPaidCents += a.paymentsPendingCents
		a.paymentsPendingCents = 0
	}
	a.updatedAt = now
	return nil
}

func (a *Ambassador) ID() uuid.UUID                    { return a.id }
func (a *Ambassador) Email() Email                     { return a.email }
func (a *Ambassador) Name() Name                       { return a.name }
func (a *Ambassador) Status() Status                   { return a.status }
func (a *Ambassador) ReferralCode() string             { return a.referralCode }
func (a *Ambassador) CouponCode() string               { return a.couponCode }
func (a *Ambassador) DiscountPercent() DiscountPercent { return a.discountPercent }
func (a *Ambassador) CommissionRate() CommissionRate   { return a.commissionRate }
func (a *Ambassador) SalesCents() int64                { return a.salesCents }
func (a *Ambassador) EarningsCents() int64             { return a.earningsCents }
func (a *Ambassador) OrderCount() int32                { return a.orderCount }
func (a *Ambassador) PaymentsPendingCents() int64      { return a.paymentsPendingCents }
func (a *Ambassador) PaymentsPaidCents() int64         { return a.paymentsPaidCents }
func (a *Ambassador) CreatedAt() time.Time             { return a.createdAt }
func (a *Ambassador) UpdatedAt() time.Time             { return a.updatedAt }

// Orders returns a copy of the order entries.
func (a *Ambassador) Orders() []OrderEntry {
	out := make([]OrderEntry, len(a.orders))
	copy(out, a.orders)
	return out
}
