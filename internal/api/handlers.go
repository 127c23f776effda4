package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/limbo/agriquest/internal/service"
	"github.com/limbo/agriquest/pkg/entity"
	"github.com/limbo/agriquest/pkg/httputil"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100

	alreadyCompletedMessage = "quest already completed for this period, no credit granted"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type QuestBoardResponse struct {
	UserID string               `json:"uid"`
	Quests []entity.QuestStatus `json:"quests"`
}

type CompletionResponse struct {
	QuestID  string                `json:"quest_id"`
	Status   string                `json:"status"`
	Awarded  int                   `json:"awarded"`
	Balance  int                   `json:"balance"`
	Message  string                `json:"message,omitempty"`
	Progress *entity.QuestProgress `json:"progress"`
}

type BalanceResponse struct {
	UserID  string `json:"uid"`
	Balance int    `json:"balance"`
}

type HistoryResponse struct {
	UserID string               `json:"uid"`
	Page   int                  `json:"page"`
	Limit  int                  `json:"limit"`
	Events []entity.CreditEvent `json:"events"`
}

type BadgesResponse struct {
	UserID string                 `json:"uid"`
	Badges []entity.BadgeProgress `json:"badges"`
}

type SchemesResponse struct {
	Eligible  bool            `json:"eligible"`
	Threshold int             `json:"threshold"`
	Balance   int             `json:"balance"`
	Schemes   []entity.Scheme `json:"schemes"`
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}

// writeServiceError logs err under op and answers with the status its class maps to.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	status, msg := httputil.StatusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
	} else {
		logger.Warn(op+" error", slog.String("error", err.Error()))
	}
	httputil.WriteErrorResponse(w, status, msg, nil)
}

func (s *Server) authorized(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, *slog.Logger, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.Nil, logger, false
	}
	return uid, logger, true
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		ctx, cancel := s.requestContext(r)
		defer cancel()
		if err := s.health.Ping(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Error("health check failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "store unavailable", nil)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := s.authorized(w, r, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) QuestBoard(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := s.authorized(w, r, "quest board")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	board, err := s.ledgerService.QuestBoard(ctx, uid, entity.QuestType(r.URL.Query().Get("type")))
	if err != nil {
		writeServiceError(w, logger, "quest board", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, QuestBoardResponse{
		UserID: uid.String(),
		Quests: board,
	})
}

func questIDFromPath(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("invalid quest id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid quest id in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) StartQuest(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := s.authorized(w, r, "start quest")
	if !ok {
		return
	}
	questID, ok := questIDFromPath(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	progress, err := s.ledgerService.StartQuest(ctx, uid, questID)
	if err != nil {
		writeServiceError(w, logger, "start quest", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
}

func (s *Server) CompleteQuest(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := s.authorized(w, r, "complete quest")
	if !ok {
		return
	}
	questID, ok := questIDFromPath(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	result, err := s.ledgerService.RecordCompletion(ctx, uid, questID)
	if err != nil {
		writeServiceError(w, logger, "complete quest", err)
		return
	}
	resp := CompletionResponse{
		QuestID:  questID.String(),
		Status:   "completed",
		Awarded:  result.Awarded,
		Balance:  result.Balance,
		Progress: result.Progress,
	}
	if result.AlreadyCompleted {
		resp.Status = "already_completed"
		resp.Message = alreadyCompletedMessage
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) Balance(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := s.authorized(w, r, "balance")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	balance, err := s.creditService.GetBalance(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "balance", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, BalanceResponse{UserID: uid.String(), Balance: balance})
}

func (s *Server) CreditHistory(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := s.authorized(w, r, "credit history")
	if !ok {
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	events, err := s.creditService.History(ctx, uid, limit, (page-1)*limit)
	if err != nil {
		writeServiceError(w, logger, "credit history", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HistoryResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Events: events,
	})
}

func (s *Server) Badges(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := s.authorized(w, r, "badges")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	badges, err := s.badgeService.GetBadgeProgress(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "badges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, BadgesResponse{UserID: uid.String(), Badges: badges})
}

func (s *Server) EarnedBadges(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := s.authorized(w, r, "earned badges")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	badges, err := s.badgeService.GetEarnedBadges(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "earned badges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, BadgesResponse{UserID: uid.String(), Badges: badges})
}

func (s *Server) Streak(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := s.authorized(w, r, "streak")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	streak, err := s.badgeService.GetStreak(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
}

func (s *Server) Schemes(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := s.authorized(w, r, "schemes")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	// Balance only grows, so it is read after the schemes
	schemes, err := s.eligibilityService.ListEligibleSchemes(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "schemes", err)
		return
	}
	balance, err := s.creditService.GetBalance(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "schemes", err)
		return
	}
	threshold := s.eligibilityService.Threshold()
	httputil.WriteJSONResponse(w, http.StatusOK, SchemesResponse{
		Eligible:  balance >= threshold,
		Threshold: threshold,
		Balance:   balance,
		Schemes:   schemes,
	})
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := s.authorized(w, r, "dashboard")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	summary, err := s.dashboardService.Summary(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}
