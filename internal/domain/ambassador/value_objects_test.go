//go:build unit

package ambassador_test

import (
	"regexp"
	"testing"

	"ambassador-ledger/internal/domain/ambassador"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes to lower case", func(t *testing.T) {
		e, err := ambassador.NewEmail("  Diana@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "diana@example.com", e.Value())
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, s := range []string{"", "diana", "diana@", "@example.com", "diana@example"} {
			_, err := ambassador.NewEmail(s)
			assert.ErrorIs(t, err, ambassador.ErrInvalidEmail, s)
		}
	})
}

func TestNewCommissionRate(t *testing.T) {
	for _, v := range []float64{0, 0.1, 0.5, 1} {
		_, err := ambassador.NewCommissionRate(v)
		assert.NoError(t, err)
	}
	for _, v := range []float64{-0.01, 1.01, 30} {
		_, err := ambassador.NewCommissionRate(v)
		assert.ErrorIs(t, err, ambassador.ErrInvalidCommissionRate)
	}
}

func TestNewDiscountPercent(t *testing.T) {
	for _, v := range []float64{0, 10, 100} {
		_, err := ambassador.NewDiscountPercent(v)
		assert.NoError(t, err)
	}
	for _, v := range []float64{-1, 100.5} {
		_, err := ambassador.NewDiscountPercent(v)
		assert.ErrorIs(t, err, ambassador.ErrInvalidDiscountPercent)
	}
}

func TestRandomCodeGenerator(t *testing.T) {
	gen := ambassador.NewRandomCodeGenerator()
	codePattern := regexp.MustCompile(`^[A-Z]{3}\d{4}$`)

	t.Run("uses the first three letters of the name", func(t *testing.T) {
		name, err := ambassador.NewName("Diana")
		require.NoError(t, err)

		for range 20 {
			code := gen.Generate(name)
			assert.Regexp(t, codePattern, code)
			assert.Equal(t, "DIA", code[:3])
		}
	})

	t.Run("skips non-letters and pads short names", func(t *testing.T) {
		name, err := ambassador.NewName("J. R.")
		require.NoError(t, err)
		assert.Equal(t, "JRX", gen.Generate(name)[:3])

		name, err = ambassador.NewName("Al")
		require.NoError(t, err)
		assert.Equal(t, "ALX", gen.Generate(name)[:3])
	})
}
