package repository

import (
	"context"
	"errors"
	"log/slog"

	"ambassador-ledger/internal/domain/ambassador"
	"ambassador-ledger/internal/infra"
	"ambassador-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AmbassadorRepository struct {
	db *pgxpool.Pool
}

func NewAmbassadorRepository(db *pgxpool.Pool) *AmbassadorRepository {
	return &AmbassadorRepository{db: db}
}

const insertAmbassadorSQL = `
INSERT INTO ambassadors (
	id, email, name, status, referral_code, coupon_code,
	discount_percent, commission_rate,
	sales_cents, earnings_cents, order_count,
	payments_pending_cents, payments_paid_cents,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

func (r *AmbassadorRepository) Create(ctx context.Context, amb *ambassador.Ambassador) error {
	_, err := r.db.Exec(ctx, insertAmbassadorSQL,
		amb.ID(),
		amb.Email().Value(),
		amb.Name().Value(),
		amb.Status().String(),
		amb.ReferralCode(),
		amb.CouponCode(),
		pgconv.Float64ToNumeric(amb.DiscountPercent().Value()),
		pgconv.Float64ToNumeric(amb.CommissionRate().Value()),
		amb.SalesCents(),
		amb.EarningsCents(),
		amb.OrderCount(),
		amb.PaymentsPendingCents(),
		amb.PaymentsPaidCents(),
		amb.CreatedAt(),
		amb.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create ambassador", err)
	}
	return nil
}

const selectAmbassadorSQL = `
SELECT id, email, name, status, referral_code, coupon_code,
	discount_percent, commission_rate,
	sales_cents, earnings_cents, order_count,
	payments_pending_cents, payments_paid_cents,
	created_at, updated_at
FROM ambassadors`

func (r *AmbassadorRepository) FindByID(ctx context.Context, id uuid.UUID) (*ambassador.Ambassador, error) {
	return r.hydrate(ctx, selectAmbassadorSQL+` WHERE id = $1`, id)
}

func (r *AmbassadorRepository) FindByEmail(ctx context.Context, email string) (*ambassador.Ambassador, error) {
	return r.hydrate(ctx, selectAmbassadorSQL+` WHERE email = lower($1)`, email)
}

// FindApprovedByCode resolves a candidate code case-insensitively against
// either the coupon or the referral code of approved ambassadors. When
// duplicate codes exist across ambassadors the oldest record wins; the
// tie-break is deliberate so resolution stays deterministic.
func (r *AmbassadorRepository) FindApprovedByCode(ctx context.Context, code string) (*ambassador.Ambassador, error) {
	query := selectAmbassadorSQL + `
WHERE status = 'approved'
	AND $1 <> ''
	AND (lower(coupon_code) = lower($1) OR lower(referral_code) = lower($1))
ORDER BY created_at, id
LIMIT 1`
	return r.hydrate(ctx, query, code)
}

func (r *AmbassadorRepository) SaveStatus(ctx context.Context, amb *ambassador.Ambassador) error {
	tag, err := r.db.Exec(ctx, `
UPDATE ambassadors
SET status = $2, referral_code = $3, coupon_code = $4, updated_at = $5
WHERE id = $1`,
		amb.ID(), amb.Status().String(), amb.ReferralCode(), amb.CouponCode(), amb.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update ambassador status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ambassador not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AmbassadorRepository) SaveProfile(ctx context.Context, amb *ambassador.Ambassador) error {
	tag, err := r.db.Exec(ctx, `
UPDATE ambassadors
SET coupon_code = $2, discount_percent = $3, commission_rate = $4, updated_at = $5
WHERE id = $1`,
		amb.ID(),
		amb.CouponCode(),
		pgconv.Float64ToNumeric(amb.DiscountPercent().Value()),
		pgconv.Float64ToNumeric(amb.CommissionRate().Value()),
		amb.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update ambassador profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ambassador not found", nil, infra.KindNotFound)
	}
	return nil
}

// RecordRedemption appends the order row and rolls its amount and commission
// into the aggregates in one transaction. The (ambassador_id, order_id)
// primary key is the idempotency guard: a duplicate insert affects zero rows
// and the ledger stays untouched.
func (r *AmbassadorRepository) RecordRedemption(ctx context.Context, ambassadorID uuid.UUID, entry ambassador.OrderEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin redemption transaction", err)
	}
	defer r.rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
INSERT INTO ambassador_orders (ambassador_id, order_id, order_date, amount_cents, commission_cents, is_paid)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (ambassador_id, order_id) DO NOTHING`,
		ambassadorID, entry.OrderID, entry.OrderDate, entry.AmountCents, entry.CommissionCents, entry.IsPaid)
	if err != nil {
		return infra.WrapRepoErr("failed to insert order entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order already redeemed", nil, infra.KindConflict)
	}

	tag, err = tx.Exec(ctx, `
UPDATE ambassadors
SET sales_cents = sales_cents + $2,
	earnings_cents = earnings_cents + $3,
	order_count = order_count + 1,
	payments_pending_cents = payments_pending_cents + $3,
	updated_at = $4
WHERE id = $1`,
		ambassadorID, entry.AmountCents, entry.CommissionCents, entry.OrderDate)
	if err != nil {
		return infra.WrapRepoErr("failed to accrue commission", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ambassador not found", nil, infra.KindNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit redemption", err)
	}
	return nil
}

// SetOrderPaid flips one order keyed by (ambassador_id, order_id) and moves
// its commission between the pending and paid totals in the same transaction.
// The filtered update makes the flip idempotent: a same-state request touches
// zero rows and no aggregate is adjusted.
func (r *AmbassadorRepository) SetOrderPaid(ctx context.Context, ambassadorID uuid.UUID, orderID string, isPaid bool) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, infra.WrapRepoErr("failed to begin payment transaction", err)
	}
	defer r.rollback(ctx, tx)

	var commissionCents int64
	err = tx.QueryRow(ctx, `
UPDATE ambassador_orders
SET is_paid = $3
WHERE ambassador_id = $1 AND order_id = $2 AND is_paid <> $3
RETURNING commission_cents`,
		ambassadorID, orderID, isPaid).Scan(&commissionCents)

	if pgconv.IsNoRows(err) {
		// Either the order is already in the requested state or it does not
		// exist; only the latter is an error.
		var exists bool
		err = tx.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM ambassador_orders WHERE ambassador_id = $1 AND order_id = $2)`,
			ambassadorID, orderID).Scan(&exists)
		if err != nil {
			return false, infra.WrapRepoErr("failed to check order existence", err)
		}
		if !exists {
			return false, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
		}
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to update order payment state", err)
	}

	delta := commissionCents
	if !isPaid {
		delta = -commissionCents
	}
	_, err = tx.Exec(ctx, `
UPDATE ambassadors
SET payments_pending_cents = payments_pending_cents - $2,
	payments_paid_cents = payments_paid_cents + $2,
	updated_at = now()
WHERE id = $1`,
		ambassadorID, delta)
	if err != nil {
		return false, infra.WrapRepoErr("failed to adjust payment totals", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, infra.WrapRepoErr("failed to commit payment transition", err)
	}
	return true, nil
}

// SetAllOrdersStatus applies the bulk transition. "paid" moves the pending
// total into paid as one lump derived from the aggregate columns at the
// instant of the call; "waiting"/"pending" flip the order rows only and leave
// the totals alone.
func (r *AmbassadorRepository) SetAllOrdersStatus(ctx context.Context, ambassadorID uuid.UUID, status ambassador.BulkPaymentStatus) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin bulk payment transaction", err)
	}
	defer r.rollback(ctx, tx)

	var tag pgconn.CommandTag
	if status == ambassador.BulkStatusPaid {
		tag, err = tx.Exec(ctx, `
UPDATE ambassadors
SET payments_paid_cents = payments_paid_cents + payments_pending_cents,
	payments_pending_cents = 0,
	updated_at = now()
WHERE id = $1`, ambassadorID)
	} else {
		tag, err = tx.Exec(ctx, `UPDATE ambassadors SET updated_at = now() WHERE id = $1`, ambassadorID)
	}
	if err != nil {
		return infra.WrapRepoErr("failed to apply bulk payment totals", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ambassador not found", nil, infra.KindNotFound)
	}

	_, err = tx.Exec(ctx, `UPDATE ambassador_orders SET is_paid = $2 WHERE ambassador_id = $1`,
		ambassadorID, status == ambassador.BulkStatusPaid)
	if err != nil {
		return infra.WrapRepoErr("failed to flip order payment flags", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit bulk payment transition", err)
	}
	return nil
}

func (r *AmbassadorRepository) hydrate(ctx context.Context, query string, arg any) (*ambassador.Ambassador, error) {
	var (
		id                   uuid.UUID
		emailStr, nameStr    string
		statusStr            string
		referralCode         string
		couponCode           string
		discountNum, rateNum pgtype.Numeric
		salesCents           int64
		earningsCents        int64
		orderCount           int32
		paymentsPending      int64
		paymentsPaid         int64
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&id, &emailStr, &nameStr, &statusStr, &referralCode, &couponCode,
		&discountNum, &rateNum,
		&salesCents, &earningsCents, &orderCount,
		&paymentsPending, &paymentsPaid,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ambassador not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ambassador", err)
	}

	orders, err := r.loadOrders(ctx, id)
	if err != nil {
		return nil, err
	}

	email, err := ambassador.NewEmail(emailStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored email", err)
	}
	name, err := ambassador.NewName(nameStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored name", err)
	}
	discountVal, err := pgconv.Float64FromNumeric(discountNum)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored discount percent", err)
	}
	rateVal, err := pgconv.Float64FromNumeric(rateNum)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored commission rate", err)
	}
	discount, err := ambassador.NewDiscountPercent(discountVal)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored discount percent", err)
	}
	rate, err := ambassador.NewCommissionRate(rateVal)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored commission rate", err)
	}

	return ambassador.Reconstruct(
		id, email, name, ambassador.Status(statusStr),
		referralCode, couponCode, discount, rate,
		salesCents, earningsCents, orderCount,
		paymentsPending, paymentsPaid,
		orders,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *AmbassadorRepository) loadOrders(ctx context.Context, ambassadorID uuid.UUID) ([]ambassador.OrderEntry, error) {
	rows, err := r.db.Query(ctx, `
SELECT order_id, order_date, amount_cents, commission_cents, is_paid
FROM ambassador_orders
WHERE ambassador_id = $1
ORDER BY order_date, order_id`, ambassadorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order entries", err)
	}
	defer rows.Close()

	var orders []ambassador.OrderEntry
	for rows.Next() {
		var (
			entry     ambassador.OrderEntry
			orderDate pgtype.Timestamptz
		)
		if err := rows.Scan(&entry.OrderID, &orderDate, &entry.AmountCents, &entry.CommissionCents, &entry.IsPaid); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order entry", err)
		}
		entry.OrderDate = pgconv.TimeFromPgtype(orderDate)
		orders = append(orders, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order entries", err)
	}
	return orders, nil
}

func (r *AmbassadorRepository) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err.Error())
	}
}
