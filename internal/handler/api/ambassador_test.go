//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"ambassador-ledger/internal/handler/api"
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

type AmbassadorHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAmbassadorCommands
	mockQueries  *queriesmock.MockAmbassadorQueries
	handler      *api.AmbassadorHandler
}

func (s *AmbassadorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAmbassadorCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAmbassadorQueries(s.mockCtrl)
	s.handler = api.NewAmbassadorHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/ambassadors", s.handler.Create)
	s.router.GET("/ambassadors", s.handler.List)
	s.router.GET("/ambassadors/:id", s.handler.Get)
	s.router.PATCH("/ambassadors/:id", s.handler.UpdateProfile)
	s.router.PATCH("/ambassadors/:id/status", s.handler.UpdateStatus)
}

func (s *AmbassadorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAmbassadorHandlerSuite(t *testing.T) {
	suite.Run(t, new(AmbassadorHandlerTestSuite))
}

func (s *AmbassadorHandlerTestSuite) TestCreate() {
	url := "/ambassadors"

	b := builder.NewAmbassadorBuilder()
	reqBody := b.BuildApplicationRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with the new record", func() {
		s.mockCommands.EXPECT().CreateAmbassador(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AmbassadorResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Email, response.Email)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing email", mutate: helper.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: helper.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "missing name", mutate: helper.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "discount above 100", mutate: helper.Field("discountPercent", 150), expectCode: http.StatusBadRequest},
			{name: "negative commission rate", mutate: helper.Field("commissionRate", -0.1), expectCode: http.StatusBadRequest},
			{name: "commission rate above 1", mutate: helper.Field("commissionRate", 1.5), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := helper.DtoMap(s.T(), reqBody, tc.mutate)
				rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				helper.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
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
				name:           "duplicate email",
				commandsError:  commands.ErrDuplicateEmail,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Email already registered",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid ambassador data",
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
				s.mockCommands.EXPECT().CreateAmbassador(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				helper.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AmbassadorHandlerTestSuite) TestList() {
	s.Run("success: returns every ambassador", func() {
		items := []*queries.AmbassadorListItem{
			{ID: uuid.New(), Email: "a@example.com", Name: "Alice", Status: "approved"},
			{ID: uuid.New(), Email: "b@example.com", Name: "Bob", Status: "pending"},
		}
		s.mockQueries.EXPECT().ListAmbassadors(gomock.Any()).Return(items, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/ambassadors", nil, "token")

		var response []resdto.AmbassadorListResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].Email, response[0].Email)
	})
}

func (s *AmbassadorHandlerTestSuite) TestGet() {
	b := builder.NewAmbassadorBuilder()
	returnView := b.BuildView()

	s.Run("success: returns the ambassador with orders", func() {
		s.mockQueries.EXPECT().GetAmbassador(gomock.Any(), b.ID).
			Return(returnView, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/ambassadors/"+b.ID.String(), nil, "token")

		var response resdto.AmbassadorResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.ReferralCode, response.ReferralCode)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/ambassadors/not-a-uuid", nil, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ambassador ID format")
	})

	s.Run("error: 404 when unknown", func() {
		unknown := uuid.New()
		s.mockQueries.EXPECT().GetAmbassador(gomock.Any(), unknown).
			Return(nil, queries.ErrAmbassadorNotFound).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/ambassadors/"+unknown.String(), nil, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ambassador not found")
	})
}

func (s *AmbassadorHandlerTestSuite) TestUpdateStatus() {
	b := builder.NewAmbassadorBuilder()
	url := "/ambassadors/" + b.ID.String() + "/status"

	s.Run("success: approval returns record with derived codes", func() {
		returnView := b.BuildView()
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), b.ID, "approved").
			Return(returnView, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "approved"}, "token")

		var response resdto.AmbassadorResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotEmpty(response.ReferralCode)
		s.NotEmpty(response.CouponCode)
	})

	s.Run("error: 400 on unknown status value", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), b.ID, "archived").
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"}, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ambassador data")
	})

	s.Run("error: 400 when status field missing", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 when unknown ambassador", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), b.ID, "approved").
			Return(nil, commands.ErrAmbassadorNotFound).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "approved"}, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ambassador not found")
	})
}

func (s *AmbassadorHandlerTestSuite) TestUpdateProfile() {
	b := builder.NewAmbassadorBuilder()
	url := "/ambassadors/" + b.ID.String()

	s.Run("success: patches coupon code and rates", func() {
		returnView := b.BuildView()
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), b.ID, gomock.Any()).
			Return(returnView, nil).Times(1)

		body := map[string]any{"couponCode": "SUMMER25", "discountPercent": 25}
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "token")

		var response resdto.AmbassadorResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 400 when commission rate out of range", func() {
		body := map[string]any{"commissionRate": 2.0}
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
