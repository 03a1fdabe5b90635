//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-front/internal/handler/api"
	reqdto "hotel-front/internal/handler/dto/request"
	resdto "hotel-front/internal/handler/dto/response"
	"hotel-front/internal/pkg/cookie"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/pkg/i18n"
	"hotel-front/internal/usecase/commands"
	"hotel-front/internal/usecase/shared"
	"hotel-front/tests/common/builder"
	"hotel-front/tests/common/httptest"
	"hotel-front/tests/common/testutil"
	commandsmock "hotel-front/tests/mock/commands"
	queriesmock "hotel-front/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	auth         authFixture
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()
	s.auth = newAuthFixture()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, s.auth.cfg)

	s.router.POST("/auth/login", s.handler.Login)
	authRequired := s.router.Group("/auth", s.auth.middleware.RequireAuth())
	authRequired.POST("/refresh", s.handler.Refresh)
	authRequired.POST("/logout", s.handler.Logout)
	authRequired.GET("/me", s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) loginResult(sb *builder.SessionBuilder) *commands.LoginResult {
	return &commands.LoginResult{
		Session: sb.Build(),
		Token:   "signed-session-token",
		User:    sb.BuildUserDetails(),
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	creds, err := reqBody.ToDomain()
	s.Require().NoError(err)
	sb := builder.NewSessionBuilder().AsEmployee()

	s.Run("success: returns user and sets the session cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), creds).
			Return(s.loginResult(sb), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-session-token", response.Token)
		s.Require().NotNil(response.User)
		s.Equal(sb.Username, response.User.Username)
		s.Equal("EMPLOYEE", response.User.Role)

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		s.Equal("signed-session-token", sessionCookie.Value)
		s.True(sessionCookie.HttpOnly)
		s.Positive(sessionCookie.MaxAge)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "missing username", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "blank username", mutate: testutil.Field("username", "   "), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, string(i18n.CodeInvalidRequest))
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
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid username or password",
			},
			{
				name:           "account forbidden",
				commandsError:  commands.ErrAccountForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "not allowed to sign in",
			},
			{
				name:           "upstream unreachable",
				commandsError:  errs.Mark(errors.New("dial tcp: connection refused"), shared.ErrUpstreamUnavailable),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Server unavailable",
			},
			{
				name:           "upstream timeout",
				commandsError:  errs.Mark(errors.New("deadline exceeded"), shared.ErrUpstreamTimeout),
				expectedStatus: http.StatusGatewayTimeout,
				expectedMsg:    "took too long",
			},
			{
				name:           "upstream 5xx",
				commandsError:  errs.Mark(errors.New("500"), shared.ErrUpstreamFailure),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Server error",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("unexpected"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), creds).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
			})
		}
	})

	s.Run("error: message follows Accept-Language", func() {
		languages := []struct {
			header string
			want   string
		}{
			{header: "en-US,en;q=0.9", want: "Invalid username or password"},
			{header: "pl-PL,pl;q=0.9", want: "Nieprawidłowa nazwa użytkownika lub hasło"},
			{header: "de-DE", want: "Invalid username or password"},
		}

		for _, lang := range languages {
			s.Run(lang.header, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), creds).
					Return(nil, commands.ErrInvalidCredentials).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
					map[string]string{"Accept-Language": lang.header}, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, lang.want)
				httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, string(i18n.CodeInvalidCredentials))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	sb := builder.NewSessionBuilder()
	token := s.auth.sessions.GenerateToken(s.T(), sb.Build())

	s.Run("success: reissues the session cookie", func() {
		refreshed := s.loginResult(sb)
		refreshed.Token = "refreshed-token"
		refreshed.Session.ExpiresAt = time.Now().Add(2 * time.Hour)
		s.mockCommands.EXPECT().Refresh(gomock.Any(), sessionWithID(sb.ID)).
			Return(refreshed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, token)

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("refreshed-token", response.Token)
		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		s.Equal("refreshed-token", sessionCookie.Value)
	})

	s.Run("error: 401 when the upstream refresh token is rejected", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), sessionWithID(sb.ID)).
			Return(nil, errs.Mark(errors.New("token_not_valid"), shared.ErrSessionExpired)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, string(i18n.CodeSessionInvalid))
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	token := s.auth.sessions.GenerateToken(s.T(), builder.NewSessionBuilder().Build())

	s.Run("success: returns 204 and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		s.Empty(sessionCookie.Value)
		s.Negative(sessionCookie.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	sb := builder.NewSessionBuilder().AsManager()

	s.Run("success: bearer token", func() {
		token := s.auth.sessions.GenerateToken(s.T(), sb.Build())
		s.mockQueries.EXPECT().Me(gomock.Any(), sessionWithID(sb.ID)).
			Return(sb.BuildUserDetails(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(sb.Email, response.Email)
		s.Equal("MANAGER", response.Role)
	})

	s.Run("success: session cookie", func() {
		token := s.auth.sessions.GenerateToken(s.T(), sb.Build())
		s.mockQueries.EXPECT().Me(gomock.Any(), sessionWithID(sb.ID)).
			Return(sb.BuildUserDetails(), nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, url, nil,
			[]*http.Cookie{{Name: cookie.SessionCookieName, Value: token}}, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, string(i18n.CodeSessionRequired))
	})

	s.Run("error: 401 with an expired session", func() {
		token := s.auth.sessions.CreateExpiredToken(s.T(), sb.Build())
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, string(i18n.CodeSessionInvalid))
	})

	s.Run("error: 401 with a tampered token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "not.a.jwt")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, string(i18n.CodeSessionInvalid))
	})
}
