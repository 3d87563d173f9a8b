package commands

import (
	"context"
	"log/slog"

	"ambassador-ledger/internal/domain/ambassador"
	reqdto "ambassador-ledger/internal/handler/dto/request"
	"ambassador-ledger/internal/infra"
	"ambassador-ledger/internal/pkg/clock"
	"ambassador-ledger/internal/pkg/errs"
	"ambassador-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail = errs.New("email already registered")
)

type AmbassadorCommands interface {
	CreateAmbassador(ctx context.Context, req reqdto.CreateAmbassadorRequest) (*queries.AmbassadorView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.AmbassadorView, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req reqdto.UpdateAmbassadorRequest) (*queries.AmbassadorView, error)
}

type ambassadorCommandsImpl struct {
	ambassadorRepo    AmbassadorRepository
	ambassadorQueries queries.AmbassadorQueries
	notifier          ApplicationNotifier
	codeGen           ambassador.CodeGenerator
	clock             clock.Clock
}

func NewAmbassadorCommands(
	ambassadorRepo AmbassadorRepository,
	ambassadorQueries queries.AmbassadorQueries,
	notifier ApplicationNotifier,
	codeGen ambassador.CodeGenerator,
	clock clock.Clock,
) AmbassadorCommands {
	return &ambassadorCommandsImpl{
		ambassadorRepo:    ambassadorRepo,
		ambassadorQueries: ambassadorQueries,
		notifier:          notifier,
		codeGen:           codeGen,
		clock:             clock,
	}
}

func (a *ambassadorCommandsImpl) CreateAmbassador(ctx context.Context, req reqdto.CreateAmbassadorRequest) (*queries.AmbassadorView, error) {
	amb, err := ambassador.NewApplication(
		uuid.New(),
		req.Email,
		req.Name,
		req.DiscountPercent,
		req.CommissionRate,
		a.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	// Early duplicate check for a clean error; the unique constraint on email
	// stays the authoritative guard under concurrent submissions.
	if _, err := a.ambassadorRepo.FindByEmail(ctx, amb.Email().Value()); err == nil {
		return nil, ErrDuplicateEmail
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, a.mapStorageErr(err)
	}

	if err := a.ambassadorRepo.Create(ctx, amb); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, a.mapStorageErr(err)
	}

	a.notifyApplicationSubmitted(ctx, amb)

	view, err := a.ambassadorQueries.GetAmbassador(ctx, amb.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (a *ambassadorCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.AmbassadorView, error) {
	newStatus, err := ambassador.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	amb, err := a.findAmbassador(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := amb.ChangeStatus(newStatus, a.codeGen, a.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := a.ambassadorRepo.SaveStatus(ctx, amb); err != nil {
		return nil, a.mapStorageErr(err)
	}

	view, err := a.ambassadorQueries.GetAmbassador(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (a *ambassadorCommandsImpl) UpdateProfile(ctx context.Context, id uuid.UUID, req reqdto.UpdateAmbassadorRequest) (*queries.AmbassadorView, error) {
	amb, err := a.findAmbassador(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := amb.UpdateProfile(req.CouponCode, req.DiscountPercent, req.CommissionRate, a.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := a.ambassadorRepo.SaveProfile(ctx, amb); err != nil {
		return nil, a.mapStorageErr(err)
	}

	view, err := a.ambassadorQueries.GetAmbassador(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (a *ambassadorCommandsImpl) findAmbassador(ctx context.Context, id uuid.UUID) (*ambassador.Ambassador, error) {
	amb, err := a.ambassadorRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAmbassadorNotFound
		}
		return nil, a.mapStorageErr(err)
	}
	return amb, nil
}

// Fire-and-forget: the admin notification must never fail or delay the
// application submission itself.
func (a *ambassadorCommandsImpl) notifyApplicationSubmitted(ctx context.Context, amb *ambassador.Ambassador) {
	notice := ApplicationNotice{
		AmbassadorID: amb.ID(),
		Email:        amb.Email().Value(),
		Name:         amb.Name().Value(),
		SubmittedAt:  amb.CreatedAt(),
	}

	go func(ctx context.Context) {
		if err := a.notifier.NotifyApplicationSubmitted(ctx, notice); err != nil {
			slog.Warn("failed to notify admins of new ambassador application",
				"ambassador_id", notice.AmbassadorID, "error", err.Error())
		}
	}(context.WithoutCancel(ctx))
}

func (a *ambassadorCommandsImpl) mapStorageErr(err error) error {
	if infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, ErrStorageUnavailable)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
