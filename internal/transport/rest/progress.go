package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/internal/service/progress"
	"github.com/heartmarshall/studybuddy/internal/service/study/xp"
)

const idempotencyKeyHeader = "Idempotency-Key"

type progressService interface {
	GetStats(ctx context.Context) (domain.ProgressReport, error)
	AwardXP(ctx context.Context, input progress.AwardXPInput) (domain.XPBalance, error)
	LogSession(ctx context.Context, input progress.LogSessionInput) (domain.StudySessionLog, error)
	ListSessions(ctx context.Context, limit int) ([]domain.StudySessionLog, error)
	SystemStats(ctx context.Context) (domain.SystemStats, error)
}

// ProgressHandler serves stats, XP and session endpoints.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

type subjectCountResponse struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

type statsResponse struct {
	Level         int                    `json:"level"`
	XP            int                    `json:"xp"`
	XPProgress    int                    `json:"xp_progress"`
	XPToNext      int                    `json:"xp_to_next"`
	Streak        int                    `json:"streak"`
	TotalCards    int                    `json:"total_cards"`
	ReviewedToday int                    `json:"reviewed_today"`
	BySubject     []subjectCountResponse `json:"by_subject"`
}

type systemStatsResponse struct {
	TotalUsers      int                    `json:"total_users"`
	TotalCards      int                    `json:"total_cards"`
	TotalSessions   int                    `json:"total_sessions"`
	ActiveUsers     int                    `json:"active_users"`
	PopularSubjects []subjectCountResponse `json:"popular_subjects"`
}

type awardXPRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

type awardXPResponse struct {
	XP      int  `json:"xp"`
	Level   int  `json:"level"`
	Applied bool `json:"applied"`
}

type sessionResponse struct {
	ID              string    `json:"id"`
	Subject         string    `json:"subject"`
	CardsStudied    int       `json:"cards_studied"`
	CorrectAnswers  int       `json:"correct_answers"`
	SessionXP       int       `json:"session_xp"`
	DurationSeconds int       `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

type listSessionsResponse struct {
	Sessions []sessionResponse `json:"sessions"`
}

// Stats handles GET /api/v1/stats.
func (h *ProgressHandler) Stats(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Level:         report.Level,
		XP:            report.XP,
		XPProgress:    xp.Progress(report.XP),
		XPToNext:      xp.ToNextLevel(report.XP),
		Streak:        report.Streak,
		TotalCards:    report.TotalCards,
		ReviewedToday: report.ReviewedToday,
		BySubject:     toSubjectCounts(report.BySubject),
	})
}

// SystemStats handles GET /api/v1/admin/stats.
func (h *ProgressHandler) SystemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.SystemStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, systemStatsResponse{
		TotalUsers:      stats.TotalUsers,
		TotalCards:      stats.TotalCards,
		TotalSessions:   stats.TotalSessions,
		ActiveUsers:     stats.ActiveUsers,
		PopularSubjects: toSubjectCounts(stats.PopularSubjects),
	})
}

func toSubjectCounts(in []domain.SubjectCount) []subjectCountResponse {
	out := make([]subjectCountResponse, 0, len(in))
	for _, sc := range in {
		out = append(out, subjectCountResponse{Subject: sc.Subject.String(), Count: sc.Count})
	}
	return out
}

// AwardXP handles POST /api/v1/xp. The Idempotency-Key header is required;
// a repeated key returns the current total with applied=false.
func (h *ProgressHandler) AwardXP(w http.ResponseWriter, r *http.Request) {
	key, err := uuid.Parse(r.Header.Get(idempotencyKeyHeader))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("idempotency_key", "must be a UUID"))
		return
	}

	var req awardXPRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	balance, err := h.svc.AwardXP(r.Context(), progress.AwardXPInput{
		Key:    key,
		Amount: req.Amount,
		Reason: req.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, awardXPResponse{
		XP:      balance.XP,
		Level:   xp.LevelOf(balance.XP),
		Applied: balance.Applied,
	})
}

// LogSession handles POST /api/v1/sessions.
func (h *ProgressHandler) LogSession(w http.ResponseWriter, r *http.Request) {
	var req progress.LogSessionInput
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.LogSession(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(rec))
}

// ListSessions handles GET /api/v1/sessions?limit=.
func (h *ProgressHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recs, err := h.svc.ListSessions(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]sessionResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toSessionResponse(rec))
	}
	writeJSON(w, http.StatusOK, listSessionsResponse{Sessions: out})
}

func toSessionResponse(rec domain.StudySessionLog) sessionResponse {
	return sessionResponse{
		ID:              rec.ID.String(),
		Subject:         rec.Subject.String(),
		CardsStudied:    rec.CardsStudied,
		CorrectAnswers:  rec.CorrectAnswers,
		SessionXP:       rec.SessionXP,
		DurationSeconds: rec.DurationSeconds,
		CreatedAt:       rec.CreatedAt,
	}
}
