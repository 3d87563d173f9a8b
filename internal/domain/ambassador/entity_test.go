//go:build unit

package ambassador_test

import (
	"testing"
	"time"

	"ambassador-ledger/internal/domain/ambassador"
	"ambassador-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerReconciles(t *testing.T, a *ambassador.Ambassador) {
	t.Helper()

	var sum int64
	for _, o := range a.Orders() {
		sum += o.CommissionCents
	}
	assert.Equal(t, sum, a.PaymentsPendingCents()+a.PaymentsPaidCents(),
		"paymentsPending + paymentsPaid must equal the commission sum over orders")
}

func TestNewApplication(t *testing.T) {
	now := time.Now()

	t.Run("starts pending with zeroed totals and no codes", func(t *testing.T) {
		a, err := ambassador.NewApplication(uuid.New(), "Diana@Example.com", "Diana", 10, 0.10, now)
		require.NoError(t, err)

		assert.Equal(t, ambassador.StatusPending, a.Status())
		assert.Equal(t, "diana@example.com", a.Email().Value())
		assert.Empty(t, a.ReferralCode())
		assert.Empty(t, a.CouponCode())
		assert.Zero(t, a.SalesCents())
		assert.Zero(t, a.OrderCount())
		ledgerReconciles(t, a)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name            string
			email, ambName  string
			discount, rate  float64
			errIs           error
		}{
			{name: "bad email", email: "not-an-email", ambName: "Diana", discount: 10, rate: 0.1, errIs: ambassador.ErrInvalidEmail},
			{name: "empty name", email: "d@example.com", ambName: "  ", discount: 10, rate: 0.1, errIs: ambassador.ErrEmptyName},
			{name: "rate above 1", email: "d@example.com", ambName: "Diana", discount: 10, rate: 1.5, errIs: ambassador.ErrInvalidCommissionRate},
			{name: "negative rate", email: "d@example.com", ambName: "Diana", discount: 10, rate: -0.1, errIs: ambassador.ErrInvalidCommissionRate},
			{name: "discount above 100", email: "d@example.com", ambName: "Diana", discount: 120, rate: 0.1, errIs: ambassador.ErrInvalidDiscountPercent},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ambassador.NewApplication(uuid.New(), tc.email, tc.ambName, tc.discount, tc.rate, now)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestChangeStatus(t *testing.T) {
	now := time.Now()
	gen := &ambassador.FixedCodeGenerator{Code: "DIA4821"}

	t.Run("approval derives referral code and defaults coupon code", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().
			WithStatus(ambassador.StatusPending).
			WithCodes("", "").
			BuildDomain()

		require.NoError(t, a.ChangeStatus(ambassador.StatusApproved, gen, now))

		assert.Equal(t, ambassador.StatusApproved, a.Status())
		assert.Equal(t, "DIA4821", a.ReferralCode())
		assert.Equal(t, "DIA4821", a.CouponCode())
	})

	t.Run("approval keeps an admin-set coupon code", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().
			WithStatus(ambassador.StatusPending).
			WithCodes("", "SUMMER10").
			BuildDomain()

		require.NoError(t, a.ChangeStatus(ambassador.StatusApproved, gen, now))

		assert.Equal(t, "DIA4821", a.ReferralCode())
		assert.Equal(t, "SUMMER10", a.CouponCode())
	})

	t.Run("re-approval never regenerates an existing code", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().
			WithStatus(ambassador.StatusRejected).
			WithCodes("DIA1111", "DIA1111").
			BuildDomain()

		require.NoError(t, a.ChangeStatus(ambassador.StatusApproved, &ambassador.FixedCodeGenerator{Code: "DIA9999"}, now))

		assert.Equal(t, "DIA1111", a.ReferralCode())
		assert.Equal(t, "DIA1111", a.CouponCode())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().BuildDomain()
		assert.ErrorIs(t, a.ChangeStatus(ambassador.Status("banana"), gen, now), ambassador.ErrInvalidStatus)
	})
}

func TestRedeem(t *testing.T) {
	now := time.Now()

	t.Run("accrues commission at the stored rate", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().BuildDomain() // rate 0.10

		entry, err := a.Redeem("order-1", 10000, now)
		require.NoError(t, err)

		assert.Equal(t, int64(1000), entry.CommissionCents)
		assert.False(t, entry.IsPaid)
		assert.Equal(t, int64(10000), a.SalesCents())
		assert.Equal(t, int64(1000), a.EarningsCents())
		assert.Equal(t, int32(1), a.OrderCount())
		assert.Equal(t, int64(1000), a.PaymentsPendingCents())
		ledgerReconciles(t, a)
	})

	t.Run("same orderID twice does not double-credit", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().BuildDomain()

		_, err := a.Redeem("order-1", 10000, now)
		require.NoError(t, err)
		_, err = a.Redeem("order-1", 10000, now)
		assert.ErrorIs(t, err, ambassador.ErrAlreadyRedeemed)

		assert.Equal(t, int64(10000), a.SalesCents())
		assert.Equal(t, int32(1), a.OrderCount())
		assert.Equal(t, int64(1000), a.PaymentsPendingCents())
		ledgerReconciles(t, a)
	})

	t.Run("unapproved ambassador cannot accrue", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().WithStatus(ambassador.StatusPending).BuildDomain()
		_, err := a.Redeem("order-1", 10000, now)
		assert.ErrorIs(t, err, ambassador.ErrNotApproved)
	})

	t.Run("input validation", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().BuildDomain()

		_, err := a.Redeem("  ", 10000, now)
		assert.ErrorIs(t, err, ambassador.ErrInvalidOrderID)

		_, err = a.Redeem("order-1", 0, now)
		assert.ErrorIs(t, err, ambassador.ErrInvalidOrderAmount)

		_, err = a.Redeem("order-1", -500, now)
		assert.ErrorIs(t, err, ambassador.ErrInvalidOrderAmount)
	})

	t.Run("commission rounds to the nearest cent", func(t *testing.T) {
		b := builder.NewAmbassadorBuilder()
		b.CommissionRate = 0.15
		a := b.BuildDomain()

		entry, err := a.Redeem("order-1", 333, now)
		require.NoError(t, err)
		assert.Equal(t, int64(50), entry.CommissionCents) // 49.95 rounds up
		ledgerReconciles(t, a)
	})
}

func TestSetOrderPaid(t *testing.T) {
	now := time.Now()

	t.Run("moves commission between pending and paid", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().
			WithOrder("order-1", 10000, 1000, false).
			BuildDomain()

		changed, err := a.SetOrderPaid("order-1", true, now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, int64(0), a.PaymentsPendingCents())
		assert.Equal(t, int64(1000), a.PaymentsPaidCents())
		ledgerReconciles(t, a)

		changed, err = a.SetOrderPaid("order-1", false, now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, int64(1000), a.PaymentsPendingCents())
		assert.Equal(t, int64(0), a.PaymentsPaidCents())
		ledgerReconciles(t, a)
	})

	t.Run("re-applying paid twice adjusts totals only once", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().
			WithOrder("order-1", 10000, 1000, false).
			BuildDomain()

		changed, err := a.SetOrderPaid("order-1", true, now)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = a.SetOrderPaid("order-1", true, now)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, int64(1000), a.PaymentsPaidCents())
		ledgerReconciles(t, a)
	})

	t.Run("unknown order", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().BuildDomain()
		_, err := a.SetOrderPaid("missing", true, now)
		assert.ErrorIs(t, err, ambassador.ErrOrderNotFound)
	})
}

func TestSetAllOrdersStatus(t *testing.T) {
	now := time.Now()

	t.Run("paid moves the pending total as a lump sum", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().
			WithOrder("order-1", 10000, 100, false).
			WithOrder("order-2", 5000, 50, false).
			WithOrder("order-3", 5000, 50, true).
			BuildDomain()
		require.Equal(t, int64(150), a.PaymentsPendingCents())
		require.Equal(t, int64(50), a.PaymentsPaidCents())

		require.NoError(t, a.SetAllOrdersStatus(ambassador.BulkStatusPaid, now))

		assert.Equal(t, int64(0), a.PaymentsPendingCents())
		assert.Equal(t, int64(200), a.PaymentsPaidCents())
		for _, o := range a.Orders() {
			assert.True(t, o.IsPaid)
		}
		ledgerReconciles(t, a)
	})

	t.Run("waiting flips orders unpaid but leaves totals alone", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().
			WithOrder("order-1", 10000, 1000, true).
			BuildDomain()

		require.NoError(t, a.SetAllOrdersStatus(ambassador.BulkStatusWaiting, now))

		for _, o := range a.Orders() {
			assert.False(t, o.IsPaid)
		}
		// The asymmetry is deliberate: totals do not move back.
		assert.Equal(t, int64(0), a.PaymentsPendingCents())
		assert.Equal(t, int64(1000), a.PaymentsPaidCents())
	})

	t.Run("pending behaves exactly like waiting", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().
			WithOrder("order-1", 10000, 1000, true).
			BuildDomain()

		require.NoError(t, a.SetAllOrdersStatus(ambassador.BulkStatusPending, now))

		for _, o := range a.Orders() {
			assert.False(t, o.IsPaid)
		}
		assert.Equal(t, int64(0), a.PaymentsPendingCents())
		assert.Equal(t, int64(1000), a.PaymentsPaidCents())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		a := builder.NewAmbassadorBuilder().BuildDomain()
		assert.ErrorIs(t, a.SetAllOrdersStatus(ambassador.BulkPaymentStatus("settled"), now), ambassador.ErrInvalidBulkPaymentStatus)
	})
}

func TestMatchesCode(t *testing.T) {
	a := builder.NewAmbassadorBuilder().WithCodes("DIA1234", "SUMMER10").BuildDomain()

	assert.True(t, a.MatchesCode("dia1234"))
	assert.True(t, a.MatchesCode("summer10"))
	assert.True(t, a.MatchesCode("Summer10"))
	assert.False(t, a.MatchesCode("DIA9999"))
}
