package queries

import (
	"context"

	"ambassador-ledger/internal/infra"
	"ambassador-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAmbassadorNotFound = errs.New("ambassador not found")
)

type AmbassadorQueries interface {
	GetAmbassador(ctx context.Context, id uuid.UUID) (*AmbassadorView, error)
	ListAmbassadors(ctx context.Context) ([]*AmbassadorListItem, error)
	ListActiveCodes(ctx context.Context) ([]*ActiveCodeView, error)
}

type AmbassadorReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*AmbassadorView, error)
	ListViews(ctx context.Context) ([]*AmbassadorListItem, error)
	ListApprovedCodes(ctx context.Context) ([]*ActiveCodeView, error)
}

type ambassadorQueriesImpl struct {
	readStore AmbassadorReadStore
}

func NewAmbassadorQueries(readStore AmbassadorReadStore) AmbassadorQueries {
	return &ambassadorQueriesImpl{
		readStore: readStore,
	}
}

func (q *ambassadorQueriesImpl) GetAmbassador(ctx context.Context, id uuid.UUID) (*AmbassadorView, error) {
	view, err := q.readStore.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAmbassadorNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *ambassadorQueriesImpl) ListAmbassadors(ctx context.Context) ([]*AmbassadorListItem, error) {
	return q.readStore.ListViews(ctx)
}

func (q *ambassadorQueriesImpl) ListActiveCodes(ctx context.Context) ([]*ActiveCodeView, error) {
	return q.readStore.ListApprovedCodes(ctx)
}
