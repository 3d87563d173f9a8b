package pgconv

import (
	"database/sql"
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidNumericValue = errors.New("invalid numeric value in pgtype.Numeric")

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	return uuid.UUID(pu.Bytes)
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func Float64FromNumeric(pn pgtype.Numeric) (float64, error) {
	if !pn.Valid {
		return 0, ErrInvalidNumericValue
	}

	value, err := pn.Float64Value()
	if err != nil {
		return 0, ErrInvalidNumericValue
	}

	return value.Float64, nil
}

func Float64ToNumeric(f float64) pgtype.Numeric {
	var n pgtype.Numeric
	// Scan through the string form to keep the decimal representation exact
	// for the rates and percentages stored here (at most 4 fractional digits).
	if err := n.Scan(big.NewFloat(f).Text('f', -1)); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
