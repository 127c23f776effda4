package api_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/agriquest/internal/api"
	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/internal/repository/memory"
	"github.com/limbo/agriquest/internal/service"
	"github.com/limbo/agriquest/internal/service/mocks"
	"github.com/limbo/agriquest/pkg/entity"
	jwtservice "github.com/limbo/agriquest/pkg/jwt_service"
	"github.com/limbo/agriquest/pkg/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	username = "test_name"
	password = "test_password"
	uid      = uuid.New()
)

type serviceMocks struct {
	users       *mocks.MockUserServiceI
	ledger      *mocks.MockLedgerServiceI
	credits     *mocks.MockCreditServiceI
	badges      *mocks.MockBadgeServiceI
	eligibility *mocks.MockEligibilityServiceI
	dashboard   *mocks.MockDashboardServiceI
}

func newMockedServer(t *testing.T) (*api.Server, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		users:       mocks.NewMockUserServiceI(ctrl),
		ledger:      mocks.NewMockLedgerServiceI(ctrl),
		credits:     mocks.NewMockCreditServiceI(ctrl),
		badges:      mocks.NewMockBadgeServiceI(ctrl),
		eligibility: mocks.NewMockEligibilityServiceI(ctrl),
		dashboard:   mocks.NewMockDashboardServiceI(ctrl),
	}
	serv := api.New(&api.ServicesList{
		UserService:        m.users,
		LedgerService:      m.ledger,
		CreditService:      m.credits,
		BadgeService:       m.badges,
		EligibilityService: m.eligibility,
		DashboardService:   m.dashboard,
		JwtService:         jwtservice.New("secret"),
	})
	return serv, m
}

func authorized(req *http.Request) *http.Request {
	return req.WithContext(api.WithUID(req.Context(), uid))
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	result := make(map[string]any)
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
	return result
}

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	serv, m := newMockedServer(t)
	t.Run("registered", func(t *testing.T) {
		m.users.EXPECT().Register(gomock.Any(), &service.RegisterRequest{Name: username, Password: password}).
			Return(&entity.User{ID: uid, Name: username}, nil)
		rr := httptest.NewRecorder()
		serv.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body)))
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		assert.Equal(t, uid.String(), decode(t, rr)["uid"])
	})
	t.Run("existed user", func(t *testing.T) {
		m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
		rr := httptest.NewRecorder()
		serv.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body)))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("validation error", func(t *testing.T) {
		m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrValidation)
		rr := httptest.NewRecorder()
		serv.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("mocked error"))
		rr := httptest.NewRecorder()
		serv.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body)))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{"))))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestLogin(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	serv, m := newMockedServer(t)
	testCases := []struct {
		Desc   string
		Err    error
		Status int
	}{
		{Desc: "logged in", Status: http.StatusOK},
		{Desc: "unexisted user", Err: errorvalues.ErrUserNotFound, Status: http.StatusNotFound},
		{Desc: "wrong password", Err: errorvalues.ErrWrongCredentials, Status: http.StatusForbidden},
		{Desc: "store error", Err: fmt.Errorf("%w: searching user error: eof", errorvalues.ErrStore), Status: http.StatusServiceUnavailable},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			if tc.Err != nil {
				m.users.EXPECT().Login(gomock.Any(), username, password).Return(nil, tc.Err)
			} else {
				m.users.EXPECT().Login(gomock.Any(), username, password).Return(&entity.User{ID: uid, Name: username}, nil)
			}
			rr := httptest.NewRecorder()
			serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
			assert.Equal(t, tc.Status, rr.Result().StatusCode)
			if tc.Err == nil {
				token, ok := decode(t, rr)["token"].(string)
				assert.True(t, ok)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestCompleteQuest(t *testing.T) {
	serv, m := newMockedServer(t)
	m.users.EXPECT().GetByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Name: username}, nil).AnyTimes()
	questID := uuid.New()
	path := "/api/v1/quests/" + questID.String() + "/complete"
	testCases := []struct {
		Desc         string
		Status       int
		BodyStatus   string
		Awarded      float64
		MockPrepFunc func()
	}{
		{
			Desc:       "completed",
			Status:     http.StatusOK,
			BodyStatus: "completed",
			Awarded:    5,
			MockPrepFunc: func() {
				m.ledger.EXPECT().RecordCompletion(gomock.Any(), uid, questID).
					Return(&entity.CompletionResult{QuestID: questID, Awarded: 5, Balance: 5}, nil)
			},
		},
		{
			Desc:       "already completed",
			Status:     http.StatusOK,
			BodyStatus: "already_completed",
			MockPrepFunc: func() {
				m.ledger.EXPECT().RecordCompletion(gomock.Any(), uid, questID).
					Return(&entity.CompletionResult{QuestID: questID, Balance: 5, AlreadyCompleted: true}, nil)
			},
		},
		{
			Desc:   "unknown quest",
			Status: http.StatusNotFound,
			MockPrepFunc: func() {
				m.ledger.EXPECT().RecordCompletion(gomock.Any(), uid, questID).Return(nil, errorvalues.ErrQuestNotFound)
			},
		},
		{
			Desc:   "store unavailable",
			Status: http.StatusServiceUnavailable,
			MockPrepFunc: func() {
				m.ledger.EXPECT().RecordCompletion(gomock.Any(), uid, questID).
					Return(nil, fmt.Errorf("%w: completing progress error: timeout", errorvalues.ErrStore))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, path, nil)
			// Through the router for the path parameter
			serv.ServeHTTP(rr, authorizedRoute(req))
			assert.Equal(t, tc.Status, rr.Result().StatusCode)
			result := decode(t, rr)
			if tc.BodyStatus != "" {
				assert.Equal(t, tc.BodyStatus, result["status"])
				assert.Equal(t, tc.Awarded, result["awarded"])
			} else {
				assert.NotEmpty(t, result["message"])
			}
		})
	}
	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, authorizedRoute(httptest.NewRequest(http.MethodPost, "/api/v1/quests/abc/complete", nil)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("no token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

var routeToken = func() string {
	token, err := jwtservice.New("secret").GenerateToken(&entity.User{ID: uid, Name: username})
	if err != nil {
		panic(err)
	}
	return token
}()

// authorizedRoute adds a bearer token for uid.
func authorizedRoute(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+routeToken)
	return req
}

func TestCompleteQuestExpectsAuthLookup(t *testing.T) {
	serv, m := newMockedServer(t)
	m.users.EXPECT().GetByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
	rr := httptest.NewRecorder()
	serv.ServeHTTP(rr, authorizedRoute(httptest.NewRequest(http.MethodPost, "/api/v1/quests/"+uuid.NewString()+"/complete", nil)))
	assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
}

func TestReadHandlers(t *testing.T) {
	serv, m := newMockedServer(t)
	ctx := context.Background()
	t.Run("balance", func(t *testing.T) {
		m.credits.EXPECT().GetBalance(gomock.Any(), uid).Return(45, nil)
		rr := httptest.NewRecorder()
		serv.Balance(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/credits", nil).WithContext(ctx)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Equal(t, float64(45), decode(t, rr)["balance"])
	})
	t.Run("history paging", func(t *testing.T) {
		m.credits.EXPECT().History(gomock.Any(), uid, 10, 20).Return([]entity.CreditEvent{{ID: 1, Amount: 5}}, nil)
		rr := httptest.NewRecorder()
		serv.CreditHistory(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/credits/history?limit=10&page=3", nil)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decode(t, rr)
		assert.Equal(t, float64(3), result["page"])
		assert.Len(t, result["events"], 1)
	})
	t.Run("history defaults", func(t *testing.T) {
		m.credits.EXPECT().History(gomock.Any(), uid, 20, 0).Return([]entity.CreditEvent{}, nil)
		rr := httptest.NewRecorder()
		serv.CreditHistory(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/credits/history?limit=-4&page=x", nil)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("quest board bad type", func(t *testing.T) {
		m.ledger.EXPECT().QuestBoard(gomock.Any(), uid, entity.QuestType("monthly")).Return(nil, errorvalues.ErrInvalidQuestType)
		rr := httptest.NewRecorder()
		serv.QuestBoard(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/quests?type=monthly", nil)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("badges", func(t *testing.T) {
		m.badges.EXPECT().GetBadgeProgress(gomock.Any(), uid).Return([]entity.BadgeProgress{{BadgeName: "First Steps"}}, nil)
		rr := httptest.NewRecorder()
		serv.Badges(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/badges", nil)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Len(t, decode(t, rr)["badges"], 1)
	})
	t.Run("streak", func(t *testing.T) {
		m.badges.EXPECT().GetStreak(gomock.Any(), uid).Return(entity.Streak{Current: 4, Longest: 9}, nil)
		rr := httptest.NewRecorder()
		serv.Streak(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/streak", nil)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Equal(t, float64(4), decode(t, rr)["current"])
	})
	t.Run("schemes", func(t *testing.T) {
		m.eligibility.EXPECT().ListEligibleSchemes(gomock.Any(), uid).Return([]entity.Scheme{}, nil)
		m.credits.EXPECT().GetBalance(gomock.Any(), uid).Return(99, nil)
		m.eligibility.EXPECT().Threshold().Return(100)
		rr := httptest.NewRecorder()
		serv.Schemes(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/schemes", nil)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decode(t, rr)
		assert.Equal(t, false, result["eligible"])
		assert.Equal(t, float64(100), result["threshold"])
	})
	t.Run("dashboard store error", func(t *testing.T) {
		m.dashboard.EXPECT().Summary(gomock.Any(), uid).Return(nil, errorvalues.ErrStore)
		rr := httptest.NewRecorder()
		serv.Dashboard(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Result().StatusCode)
		assert.Contains(t, decode(t, rr)["message"], "retry")
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Balance(rr, httptest.NewRequest(http.MethodGet, "/api/v1/credits", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

// The whole API over the in-memory store with real tokens.
func TestAPIOverMemoryStore(t *testing.T) {
	ref, err := refdata.Load("")
	require.NoError(t, err)
	store := memory.NewStore(ref.Quests)
	opts := service.Options{Location: time.UTC}
	catalog := service.NewCatalogService(store, 32, time.Minute)
	credits := service.NewCreditService(store, store)
	badges := service.NewBadgeService(store, catalog, ref.Badges, 0, opts)
	eligibility := service.NewEligibilityService(credits, ref.Schemes, service.DefaultSchemeThreshold)
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(store),
		LedgerService:      service.NewLedgerService(store, catalog, store, credits, opts),
		CreditService:      credits,
		BadgeService:       badges,
		EligibilityService: eligibility,
		DashboardService:   service.NewDashboardService(credits, badges, eligibility),
		JwtService:         jwtservice.New("secret"),
	})
	do := func(method, path, token string, body any) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			data, err := sonic.ConfigDefault.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(data)
		} else {
			reader = bytes.NewReader(nil)
		}
		req := httptest.NewRequest(method, path, reader)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, req)
		return rr
	}

	rr := do(http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = do(http.MethodPost, "/api/v1/auth/register", "", api.RegisterRequest{Name: username, Password: password})
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = do(http.MethodPost, "/api/v1/auth/login", "", api.LoginRequest{Name: username, Password: password})
	require.Equal(t, http.StatusOK, rr.Code)
	token := decode(t, rr)["token"].(string)

	rr = do(http.MethodGet, "/api/v1/quests?type=daily", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode(t, rr)["quests"], 4)

	questPath := "/api/v1/quests/" + refdata.QuestID("scout-for-pests").String()
	rr = do(http.MethodPost, questPath+"/start", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "in_progress", decode(t, rr)["status"])

	rr = do(http.MethodPost, questPath+"/complete", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(5), decode(t, rr)["awarded"])
	rr = do(http.MethodPost, questPath+"/complete", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	result := decode(t, rr)
	assert.Equal(t, "already_completed", result["status"])
	assert.Equal(t, float64(5), result["balance"])

	rr = do(http.MethodPost, "/api/v1/quests/"+uuid.NewString()+"/complete", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(http.MethodGet, "/api/v1/badges/earned", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode(t, rr)["badges"], 1)

	rr = do(http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	summary := decode(t, rr)
	assert.Equal(t, float64(5), summary["balance"])
	assert.Equal(t, false, summary["eligible"])

	rr = do(http.MethodDelete, "/api/v1/account", token, api.DeleteAccountRequest{Password: "wrong_password"})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	rr = do(http.MethodDelete, "/api/v1/account", token, api.DeleteAccountRequest{Password: password})
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(http.MethodGet, "/api/v1/credits", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
