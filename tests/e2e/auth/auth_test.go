//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"ambassador-ledger/internal/domain/user"
	"ambassador-ledger/internal/handler/dto/request"
	"ambassador-ledger/internal/handler/dto/response"
	"ambassador-ledger/tests/common/dbtest"
	"ambassador-ledger/tests/common/helper"
	"ambassador-ledger/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleAdmin))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "正常なログイン",
			email:          "test@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "間違ったパスワード",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := helper.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				access := helper.ExtractCookie(w, "access_token")
				require.NotNil(t, access)
				require.NotEmpty(t, access.Value)
				refresh := helper.ExtractCookie(w, "refresh_token")
				require.NotNil(t, refresh)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("正常系: ログイン済みユーザーの情報を返す", func() {
		t := s.T()

		loginW := helper.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginW.Code)
		token := helper.ExtractCookie(loginW, "access_token").Value

		w := helper.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me response.MeResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "test@example.com", me.Email)
		require.Equal(t, "admin", me.Role)
	})

	s.Run("異常系: 未認証アクセスは401", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("正常系: クッキーが失効する", func() {
		t := s.T()

		loginW := helper.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginW.Code)
		token := helper.ExtractCookie(loginW, "access_token").Value

		w := helper.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		access := helper.ExtractCookie(w, "access_token")
		require.NotNil(t, access)
		require.Empty(t, access.Value)
	})
}
