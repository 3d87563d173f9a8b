//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"ambassador-ledger/internal/domain/ambassador"
	reqdto "ambassador-ledger/internal/handler/dto/request"
	"ambassador-ledger/internal/infra"
	"ambassador-ledger/internal/pkg/clock"
	"ambassador-ledger/internal/pkg/errs"
	"ambassador-ledger/internal/usecase/commands"
	"ambassador-ledger/tests/common/builder"
	commandsmock "ambassador-ledger/tests/mock/commands"
	queriesmock "ambassador-ledger/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRepo    *commandsmock.MockAmbassadorRepository
	mockQueries *queriesmock.MockAmbassadorQueries
	clock       *clock.MockClock
	commands    commands.LedgerCommands
}

func (s *LedgerCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockAmbassadorRepository(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAmbassadorQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewLedgerCommands(s.mockRepo, s.mockQueries, s.clock)
}

func (s *LedgerCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerCommandsSuite(t *testing.T) {
	suite.Run(t, new(LedgerCommandsTestSuite))
}

func (s *LedgerCommandsTestSuite) TestRedeemCode() {
	req := reqdto.RedeemCodeRequest{
		Code:             "DIA1234",
		OrderID:          "order-1",
		OrderAmountCents: 10000,
	}

	s.Run("success: accrues commission at the stored rate", func() {
		amb := builder.NewAmbassadorBuilder().BuildDomain()
		s.mockRepo.EXPECT().FindApprovedByCode(gomock.Any(), "DIA1234").
			Return(amb, nil).Times(1)
		s.mockRepo.EXPECT().RecordRedemption(gomock.Any(), amb.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entry ambassador.OrderEntry) error {
				s.Equal("order-1", entry.OrderID)
				s.Equal(int64(10000), entry.AmountCents)
				s.Equal(int64(1000), entry.CommissionCents)
				s.False(entry.IsPaid)
				return nil
			}).Times(1)

		result, err := s.commands.RedeemCode(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(amb.ID(), result.AmbassadorID)
		s.Equal(int64(1000), result.CommissionCents)
		s.Equal(s.clock.Now(), result.OrderDate)
	})

	s.Run("error: unknown or unapproved code", func() {
		s.mockRepo.EXPECT().FindApprovedByCode(gomock.Any(), "DIA1234").
			Return(nil, infra.WrapRepoErr("ambassador not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.RedeemCode(context.Background(), req)

		s.ErrorIs(err, commands.ErrCodeNotFound)
	})

	s.Run("error: order already redeemed in the loaded snapshot", func() {
		amb := builder.NewAmbassadorBuilder().
			WithOrder("order-1", 10000, 1000, false).
			BuildDomain()
		s.mockRepo.EXPECT().FindApprovedByCode(gomock.Any(), "DIA1234").
			Return(amb, nil).Times(1)

		_, err := s.commands.RedeemCode(context.Background(), req)

		s.ErrorIs(err, commands.ErrAlreadyRedeemed)
	})

	s.Run("error: concurrent redemption loses the insert race", func() {
		amb := builder.NewAmbassadorBuilder().BuildDomain()
		s.mockRepo.EXPECT().FindApprovedByCode(gomock.Any(), "DIA1234").
			Return(amb, nil).Times(1)
		s.mockRepo.EXPECT().RecordRedemption(gomock.Any(), amb.ID(), gomock.Any()).
			Return(infra.WrapRepoErr("order already redeemed", nil, infra.KindConflict)).Times(1)

		_, err := s.commands.RedeemCode(context.Background(), req)

		s.ErrorIs(err, commands.ErrAlreadyRedeemed)
	})

	s.Run("error: storage unavailable surfaces as 503-class sentinel", func() {
		s.mockRepo.EXPECT().FindApprovedByCode(gomock.Any(), "DIA1234").
			Return(nil, infra.WrapRepoErr("connect timeout", errs.New("dial timeout"), infra.KindUnavailable)).Times(1)

		_, err := s.commands.RedeemCode(context.Background(), req)

		s.ErrorIs(err, commands.ErrStorageUnavailable)
	})
}

func (s *LedgerCommandsTestSuite) TestSetOrderPaid() {
	b := builder.NewAmbassadorBuilder().WithOrder("order-1", 10000, 1000, false)

	s.Run("success: returns the snapshot after the flip", func() {
		view := b.BuildView()
		s.mockRepo.EXPECT().SetOrderPaid(gomock.Any(), b.ID, "order-1", true).
			Return(true, nil).Times(1)
		s.mockQueries.EXPECT().GetAmbassador(gomock.Any(), b.ID).
			Return(view, nil).Times(1)

		got, err := s.commands.SetOrderPaid(context.Background(), b.ID, "order-1", true)

		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("success: same-state no-op still returns the snapshot", func() {
		view := b.BuildView()
		s.mockRepo.EXPECT().SetOrderPaid(gomock.Any(), b.ID, "order-1", false).
			Return(false, nil).Times(1)
		s.mockQueries.EXPECT().GetAmbassador(gomock.Any(), b.ID).
			Return(view, nil).Times(1)

		_, err := s.commands.SetOrderPaid(context.Background(), b.ID, "order-1", false)

		s.NoError(err)
	})

	s.Run("error: unknown order", func() {
		s.mockRepo.EXPECT().SetOrderPaid(gomock.Any(), b.ID, "missing", true).
			Return(false, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.SetOrderPaid(context.Background(), b.ID, "missing", true)

		s.ErrorIs(err, commands.ErrOrderNotFound)
	})
}

func (s *LedgerCommandsTestSuite) TestSetAllOrdersStatus() {
	b := builder.NewAmbassadorBuilder()

	s.Run("success: bulk paid", func() {
		view := b.BuildView()
		s.mockRepo.EXPECT().SetAllOrdersStatus(gomock.Any(), b.ID, ambassador.BulkStatusPaid).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetAmbassador(gomock.Any(), b.ID).
			Return(view, nil).Times(1)

		_, err := s.commands.SetAllOrdersStatus(context.Background(), b.ID, "paid")

		s.NoError(err)
	})

	s.Run("error: unknown bulk status never reaches the repository", func() {
		_, err := s.commands.SetAllOrdersStatus(context.Background(), b.ID, "refunded")

		s.ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("error: unknown ambassador", func() {
		s.mockRepo.EXPECT().SetAllOrdersStatus(gomock.Any(), b.ID, ambassador.BulkStatusWaiting).
			Return(infra.WrapRepoErr("ambassador not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.SetAllOrdersStatus(context.Background(), b.ID, "waiting")

		s.ErrorIs(err, commands.ErrAmbassadorNotFound)
	})
}
