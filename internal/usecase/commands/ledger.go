package commands

import (
	"context"
	"errors"
	"time"

	"ambassador-ledger/internal/domain/ambassador"
	reqdto "ambassador-ledger/internal/handler/dto/request"
	"ambassador-ledger/internal/infra"
	"ambassador-ledger/internal/pkg/clock"
	"ambassador-ledger/internal/pkg/errs"
	"ambassador-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrAmbassadorNotFound      = errs.New("ambassador not found")
	ErrCodeNotFound            = errs.New("no approved ambassador for code")
	ErrOrderNotFound           = errs.New("order not found")
	ErrAlreadyRedeemed         = errs.New("order already redeemed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrStorageUnavailable      = errs.New("storage unavailable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type RedeemResult struct {
	AmbassadorID    uuid.UUID `json:"ambassador_id"`
	OrderID         string    `json:"order_id"`
	OrderDate       time.Time `json:"order_date"`
	AmountCents     int64     `json:"amount_cents"`
	CommissionCents int64     `json:"commission_cents"`
}

type LedgerCommands interface {
	RedeemCode(ctx context.Context, req reqdto.RedeemCodeRequest) (*RedeemResult, error)
	SetOrderPaid(ctx context.Context, ambassadorID uuid.UUID, orderID string, isPaid bool) (*queries.AmbassadorView, error)
	SetAllOrdersStatus(ctx context.Context, ambassadorID uuid.UUID, status string) (*queries.AmbassadorView, error)
}

type ledgerCommandsImpl struct {
	ambassadorRepo    AmbassadorRepository
	ambassadorQueries queries.AmbassadorQueries
	clock             clock.Clock
}

func NewLedgerCommands(
	ambassadorRepo AmbassadorRepository,
	ambassadorQueries queries.AmbassadorQueries,
	clock clock.Clock,
) LedgerCommands {
	return &ledgerCommandsImpl{
		ambassadorRepo:    ambassadorRepo,
		ambassadorQueries: ambassadorQueries,
		clock:             clock,
	}
}

// RedeemCode resolves the coupon/referral code to an approved ambassador and
// accrues commission for the order. The commission rate is the one stored on
// the ambassador at redemption time; later rate changes never retroactively
// affect accrued orders.
func (l *ledgerCommandsImpl) RedeemCode(ctx context.Context, req reqdto.RedeemCodeRequest) (*RedeemResult, error) {
	amb, err := l.ambassadorRepo.FindApprovedByCode(ctx, req.Code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, l.mapStorageErr(err)
	}

	entry, err := amb.Redeem(req.OrderID, req.OrderAmountCents, l.clock.Now())
	if err != nil {
		if errors.Is(err, ambassador.ErrAlreadyRedeemed) {
			return nil, ErrAlreadyRedeemed
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := l.ambassadorRepo.RecordRedemption(ctx, amb.ID(), entry); err != nil {
		// A concurrent redemption of the same order wins the insert race.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrAlreadyRedeemed
		}
		return nil, l.mapStorageErr(err)
	}

	return &RedeemResult{
		AmbassadorID:    amb.ID(),
		OrderID:         entry.OrderID,
		OrderDate:       entry.OrderDate,
		AmountCents:     entry.AmountCents,
		CommissionCents: entry.CommissionCents,
	}, nil
}

func (l *ledgerCommandsImpl) SetOrderPaid(ctx context.Context, ambassadorID uuid.UUID, orderID string, isPaid bool) (*queries.AmbassadorView, error) {
	if _, err := l.ambassadorRepo.SetOrderPaid(ctx, ambassadorID, orderID, isPaid); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, l.mapStorageErr(err)
	}

	return l.snapshotAfterWrite(ctx, ambassadorID)
}

func (l *ledgerCommandsImpl) SetAllOrdersStatus(ctx context.Context, ambassadorID uuid.UUID, status string) (*queries.AmbassadorView, error) {
	bulkStatus, err := ambassador.NewBulkPaymentStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := l.ambassadorRepo.SetAllOrdersStatus(ctx, ambassadorID, bulkStatus); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAmbassadorNotFound
		}
		return nil, l.mapStorageErr(err)
	}

	return l.snapshotAfterWrite(ctx, ambassadorID)
}

// Read-after-write: callers get the full ambassador snapshot from the read
// store after the transition commits.
func (l *ledgerCommandsImpl) snapshotAfterWrite(ctx context.Context, ambassadorID uuid.UUID) (*queries.AmbassadorView, error) {
	view, err := l.ambassadorQueries.GetAmbassador(ctx, ambassadorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (l *ledgerCommandsImpl) mapStorageErr(err error) error {
	if infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, ErrStorageUnavailable)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
