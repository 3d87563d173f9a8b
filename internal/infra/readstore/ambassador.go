package readstore

import (
	"context"
	"time"

	"ambassador-ledger/internal/infra"
	"ambassador-ledger/internal/pkg/pgconv"
	"ambassador-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"
)

// recentOrderLimit caps the order entries embedded in a detail view; the full
// history stays queryable through the orders table itself.
const recentOrderLimit = 50

type AmbassadorReadStore struct {
	db *pgxpool.Pool
}

func NewAmbassadorReadStore(db *pgxpool.Pool) *AmbassadorReadStore {
	return &AmbassadorReadStore{db: db}
}

type ambassadorRow struct {
	ID                   uuid.UUID
	Email                string
	Name                 string
	Status               string
	ReferralCode         string
	CouponCode           string
	SalesCents           int64
	EarningsCents        int64
	OrderCount           int32
	PaymentsPendingCents int64
	PaymentsPaidCents    int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

const selectAmbassadorViewSQL = `
SELECT id, email, name, status, referral_code, coupon_code,
	discount_percent, commission_rate,
	sales_cents, earnings_cents, order_count,
	payments_pending_cents, payments_paid_cents,
	created_at, updated_at
FROM ambassadors`

func (r *AmbassadorReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.AmbassadorView, error) {
	var (
		row                  ambassadorRow
		discountNum, rateNum pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, selectAmbassadorViewSQL+` WHERE id = $1`, id).Scan(
		&row.ID, &row.Email, &row.Name, &row.Status, &row.ReferralCode, &row.CouponCode,
		&discountNum, &rateNum,
		&row.SalesCents, &row.EarningsCents, &row.OrderCount,
		&row.PaymentsPendingCents, &row.PaymentsPaidCents,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ambassador not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ambassador view", err)
	}

	view := &queries.AmbassadorView{}
	if err := copier.Copy(view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map ambassador row", err)
	}
	if view.DiscountPercent, err = pgconv.Float64FromNumeric(discountNum); err != nil {
		return nil, infra.WrapRepoErr("invalid stored discount percent", err)
	}
	if view.CommissionRate, err = pgconv.Float64FromNumeric(rateNum); err != nil {
		return nil, infra.WrapRepoErr("invalid stored commission rate", err)
	}

	if view.RecentOrders, err = r.recentOrders(ctx, id); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *AmbassadorReadStore) ListViews(ctx context.Context) ([]*queries.AmbassadorListItem, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, email, name, status, referral_code, coupon_code,
	sales_cents, earnings_cents, order_count,
	payments_pending_cents, payments_paid_cents,
	created_at
FROM ambassadors
ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ambassadors", err)
	}
	defer rows.Close()

	var items []*queries.AmbassadorListItem
	for rows.Next() {
		var row ambassadorRow
		if err := rows.Scan(
			&row.ID, &row.Email, &row.Name, &row.Status, &row.ReferralCode, &row.CouponCode,
			&row.SalesCents, &row.EarningsCents, &row.OrderCount,
			&row.PaymentsPendingCents, &row.PaymentsPaidCents,
			&row.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ambassador list row", err)
		}

		item := &queries.AmbassadorListItem{}
		if err := copier.Copy(item, &row); err != nil {
			return nil, infra.WrapRepoErr("failed to map ambassador list row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ambassador list", err)
	}
	return items, nil
}

// ListApprovedCodes emits two entries per approved ambassador, the coupon code
// first, tagged with its type.
func (r *AmbassadorReadStore) ListApprovedCodes(ctx context.Context) ([]*queries.ActiveCodeView, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, name, coupon_code, referral_code, discount_percent
FROM ambassadors
WHERE status = 'approved'
ORDER BY created_at, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved codes", err)
	}
	defer rows.Close()

	var views []*queries.ActiveCodeView
	for rows.Next() {
		var (
			id                  uuid.UUID
			name, coupon, refer string
			discountNum         pgtype.Numeric
		)
		if err := rows.Scan(&id, &name, &coupon, &refer, &discountNum); err != nil {
			return nil, infra.WrapRepoErr("failed to scan approved code row", err)
		}
		discount, err := pgconv.Float64FromNumeric(discountNum)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored discount percent", err)
		}

		views = append(views,
			&queries.ActiveCodeView{
				AmbassadorID:    id,
				AmbassadorName:  name,
				Code:            coupon,
				Type:            "coupon",
				DiscountPercent: discount,
			},
			&queries.ActiveCodeView{
				AmbassadorID:    id,
				AmbassadorName:  name,
				Code:            refer,
				Type:            "referral",
				DiscountPercent: discount,
			},
		)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate approved codes", err)
	}
	return views, nil
}

func (r *AmbassadorReadStore) recentOrders(ctx context.Context, ambassadorID uuid.UUID) ([]queries.OrderView, error) {
	rows, err := r.db.Query(ctx, `
SELECT order_id, order_date, amount_cents, commission_cents, is_paid
FROM ambassador_orders
WHERE ambassador_id = $1
ORDER BY order_date DESC, order_id DESC
LIMIT $2`, ambassadorID, recentOrderLimit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load recent orders", err)
	}
	defer rows.Close()

	orders := make([]queries.OrderView, 0, recentOrderLimit)
	for rows.Next() {
		var o queries.OrderView
		if err := rows.Scan(&o.OrderID, &o.OrderDate, &o.AmountCents, &o.CommissionCents, &o.IsPaid); err != nil {
			return nil, infra.WrapRepoErr("failed to scan recent order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate recent orders", err)
	}
	return orders, nil
}
