//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"ambassador-ledger/internal/handler/api"
	reqdto "ambassador-ledger/internal/handler/dto/request"
	resdto "ambassador-ledger/internal/handler/dto/response"
	"ambassador-ledger/internal/usecase/commands"
	"ambassador-ledger/internal/usecase/queries"
	"ambassador-ledger/tests/common/builder"
	"ambassador-ledger/tests/common/helper"
	commandsmock "ambassador-ledger/tests/mock/commands"
	queriesmock "ambassador-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLedgerCommands
	mockQueries  *queriesmock.MockAmbassadorQueries
	handler      *api.LedgerHandler
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLedgerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAmbassadorQueries(s.mockCtrl)
	s.handler = api.NewLedgerHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/redemptions", s.handler.Redeem)
	s.router.GET("/codes", s.handler.ListActiveCodes)
	s.router.PATCH("/ambassadors/:id/orders/:orderId", s.handler.SetOrderPaid)
	s.router.PATCH("/ambassadors/:id/orders", s.handler.SetAllOrdersStatus)
}

func (s *LedgerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

func (s *LedgerHandlerTestSuite) TestRedeem() {
	url := "/redemptions"

	ambassadorID := uuid.New()
	reqBody := reqdto.RedeemCodeRequest{
		Code:             "DIA1234",
		OrderID:          "order-1",
		OrderAmountCents: 10000,
	}
	result := &commands.RedeemResult{
		AmbassadorID:    ambassadorID,
		OrderID:         "order-1",
		OrderDate:       time.Now(),
		AmountCents:     10000,
		CommissionCents: 1000,
	}

	s.Run("success: returns 201 Created with the accrued commission", func() {
		s.mockCommands.EXPECT().RedeemCode(gomock.Any(), reqBody).
			Return(result, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RedemptionResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(ambassadorID, response.AmbassadorID)
		s.Equal(int64(1000), response.CommissionCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing code", mutate: helper.Field("code", nil)},
			{name: "missing order id", mutate: helper.Field("orderId", nil)},
			{name: "zero amount", mutate: helper.Field("orderAmountCents", 0)},
			{name: "negative amount", mutate: helper.Field("orderAmountCents", -500)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := helper.DtoMap(s.T(), reqBody, tc.mutate)
				rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown or unapproved code",
				commandsError:  commands.ErrCodeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No approved ambassador for code",
			},
			{
				name:           "duplicate order",
				commandsError:  commands.ErrAlreadyRedeemed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Order already redeemed",
			},
			{
				name:           "storage unavailable",
				commandsError:  commands.ErrStorageUnavailable,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Storage temporarily unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RedeemCode(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				helper.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *LedgerHandlerTestSuite) TestListActiveCodes() {
	s.Run("success: returns coupon and referral entries", func() {
		id := uuid.New()
		views := []*queries.ActiveCodeView{
			{AmbassadorID: id, AmbassadorName: "Diana", Code: "DIA1234", Type: "coupon", DiscountPercent: 10},
			{AmbassadorID: id, AmbassadorName: "Diana", Code: "DIA1234", Type: "referral", DiscountPercent: 10},
		}
		s.mockQueries.EXPECT().ListActiveCodes(gomock.Any()).Return(views, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/codes", nil, "")

		var response []resdto.ActiveCodeResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("coupon", response[0].Type)
		s.Equal("referral", response[1].Type)
	})
}

func (s *LedgerHandlerTestSuite) TestSetOrderPaid() {
	b := builder.NewAmbassadorBuilder().WithOrder("order-1", 10000, 1000, false)
	url := "/ambassadors/" + b.ID.String() + "/orders/order-1"

	s.Run("success: returns the refreshed snapshot", func() {
		returnView := b.BuildView()
		s.mockCommands.EXPECT().SetOrderPaid(gomock.Any(), b.ID, "order-1", true).
			Return(returnView, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"isPaid": true}, "token")

		var response resdto.AmbassadorResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.ID)
	})

	s.Run("error: 400 when isPaid missing", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 when order unknown", func() {
		unknownURL := "/ambassadors/" + b.ID.String() + "/orders/missing"
		s.mockCommands.EXPECT().SetOrderPaid(gomock.Any(), b.ID, "missing", true).
			Return(nil, commands.ErrOrderNotFound).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, unknownURL, map[string]any{"isPaid": true}, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *LedgerHandlerTestSuite) TestSetAllOrdersStatus() {
	b := builder.NewAmbassadorBuilder()
	url := "/ambassadors/" + b.ID.String() + "/orders"

	s.Run("success: bulk paid returns the refreshed snapshot", func() {
		returnView := b.BuildView()
		s.mockCommands.EXPECT().SetAllOrdersStatus(gomock.Any(), b.ID, "paid").
			Return(returnView, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "paid"}, "token")

		var response resdto.AmbassadorResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 400 on unknown status value", func() {
		s.mockCommands.EXPECT().SetAllOrdersStatus(gomock.Any(), b.ID, "refunded").
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "refunded"}, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payment status")
	})

	s.Run("error: 404 when ambassador unknown", func() {
		s.mockCommands.EXPECT().SetAllOrdersStatus(gomock.Any(), b.ID, "waiting").
			Return(nil, commands.ErrAmbassadorNotFound).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "waiting"}, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ambassador not found")
	})
}
