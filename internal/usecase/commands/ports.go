package commands

import (
	"context"
	"time"

	"ambassador-ledger/internal/domain/ambassador"

	"github.com/google/uuid"
)

// AmbassadorRepository is the write side of the ambassador record store.
// RecordRedemption, SetOrderPaid and SetAllOrdersStatus must each be applied
// as one atomic unit against the backing store; two redemptions or two status
// changes racing for the same ambassador must not lose updates.
type AmbassadorRepository interface {
	Create(ctx context.Context, amb *ambassador.Ambassador) error
	FindByID(ctx context.Context, id uuid.UUID) (*ambassador.Ambassador, error)
	FindByEmail(ctx context.Context, email string) (*ambassador.Ambassador, error)
	FindApprovedByCode(ctx context.Context, code string) (*ambassador.Ambassador, error)
	SaveStatus(ctx context.Context, amb *ambassador.Ambassador) error
	SaveProfile(ctx context.Context, amb *ambassador.Ambassador) error

	// RecordRedemption appends the order entry and rolls its amount and
	// commission into the aggregates. A duplicate (ambassadorID, orderID)
	// reports KindConflict and leaves the ledger untouched.
	RecordRedemption(ctx context.Context, ambassadorID uuid.UUID, entry ambassador.OrderEntry) error

	// SetOrderPaid flips one order's paid flag and moves its commission
	// between the pending and paid totals. Returns false without error when
	// the order is already in the requested state.
	SetOrderPaid(ctx context.Context, ambassadorID uuid.UUID, orderID string, isPaid bool) (bool, error)

	SetAllOrdersStatus(ctx context.Context, ambassadorID uuid.UUID, status ambassador.BulkPaymentStatus) error
}

type ApplicationNotice struct {
	AmbassadorID uuid.UUID `json:"ambassador_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// ApplicationNotifier announces a new ambassador application to
// administrators. Dispatch is best-effort and at-most-once; failures are
// logged by the caller and never fail the submission.
type ApplicationNotifier interface {
	NotifyApplicationSubmitted(ctx context.Context, notice ApplicationNotice) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
