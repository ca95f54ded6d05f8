package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/internal/service/cardbank"
	"github.com/heartmarshall/studybuddy/internal/service/progress"
)

var _ cardService = &cardServiceMock{}

type cardServiceMock struct {
	ListFunc         func(ctx context.Context, input cardbank.ListCardsInput) (cardbank.Page, error)
	CreateFunc       func(ctx context.Context, input cardbank.CreateCardsInput) ([]domain.BankCard, error)
	MarkReviewedFunc func(ctx context.Context, cardID uuid.UUID) (domain.BankCard, error)
	DeleteFunc       func(ctx context.Context, cardID uuid.UUID) error

	calls struct {
		List []struct {
			Ctx   context.Context
			Input cardbank.ListCardsInput
		}
		Create []struct {
			Ctx   context.Context
			Input cardbank.CreateCardsInput
		}
		MarkReviewed []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		Delete []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
	}
	lockList         sync.RWMutex
	lockCreate       sync.RWMutex
	lockMarkReviewed sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *cardServiceMock) List(ctx context.Context, input cardbank.ListCardsInput) (cardbank.Page, error) {
	if mock.ListFunc == nil {
		panic("cardServiceMock.ListFunc: method is nil but cardService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input cardbank.ListCardsInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *cardServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input cardbank.ListCardsInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *cardServiceMock) Create(ctx context.Context, input cardbank.CreateCardsInput) ([]domain.BankCard, error) {
	if mock.CreateFunc == nil {
		panic("cardServiceMock.CreateFunc: method is nil but cardService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input cardbank.CreateCardsInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *cardServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input cardbank.CreateCardsInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardServiceMock) MarkReviewed(ctx context.Context, cardID uuid.UUID) (domain.BankCard, error) {
	if mock.MarkReviewedFunc == nil {
		panic("cardServiceMock.MarkReviewedFunc: method is nil but cardService.MarkReviewed was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockMarkReviewed.Lock()
	mock.calls.MarkReviewed = append(mock.calls.MarkReviewed, callInfo)
	mock.lockMarkReviewed.Unlock()
	return mock.MarkReviewedFunc(ctx, cardID)
}

func (mock *cardServiceMock) MarkReviewedCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockMarkReviewed.RLock()
	calls := mock.calls.MarkReviewed
	mock.lockMarkReviewed.RUnlock()
	return calls
}

func (mock *cardServiceMock) Delete(ctx context.Context, cardID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardServiceMock.DeleteFunc: method is nil but cardService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, cardID)
}

func (mock *cardServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	GetStatsFunc     func(ctx context.Context) (domain.ProgressReport, error)
	AwardXPFunc      func(ctx context.Context, input progress.AwardXPInput) (domain.XPBalance, error)
	LogSessionFunc   func(ctx context.Context, input progress.LogSessionInput) (domain.StudySessionLog, error)
	ListSessionsFunc func(ctx context.Context, limit int) ([]domain.StudySessionLog, error)
	SystemStatsFunc  func(ctx context.Context) (domain.SystemStats, error)

	calls struct {
		GetStats []struct {
			Ctx context.Context
		}
		AwardXP []struct {
			Ctx   context.Context
			Input progress.AwardXPInput
		}
		LogSession []struct {
			Ctx   context.Context
			Input progress.LogSessionInput
		}
		ListSessions []struct {
			Ctx   context.Context
			Limit int
		}
		SystemStats []struct {
			Ctx context.Context
		}
	}
	lockGetStats     sync.RWMutex
	lockAwardXP      sync.RWMutex
	lockLogSession   sync.RWMutex
	lockListSessions sync.RWMutex
	lockSystemStats  sync.RWMutex
}

func (mock *progressServiceMock) GetStats(ctx context.Context) (domain.ProgressReport, error) {
	if mock.GetStatsFunc == nil {
		panic("progressServiceMock.GetStatsFunc: method is nil but progressService.GetStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetStats.Lock()
	mock.calls.GetStats = append(mock.calls.GetStats, callInfo)
	mock.lockGetStats.Unlock()
	return mock.GetStatsFunc(ctx)
}

func (mock *progressServiceMock) GetStatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetStats.RLock()
	calls := mock.calls.GetStats
	mock.lockGetStats.RUnlock()
	return calls
}

func (mock *progressServiceMock) AwardXP(ctx context.Context, input progress.AwardXPInput) (domain.XPBalance, error) {
	if mock.AwardXPFunc == nil {
		panic("progressServiceMock.AwardXPFunc: method is nil but progressService.AwardXP was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.AwardXPInput
	}{Ctx: ctx, Input: input}
	mock.lockAwardXP.Lock()
	mock.calls.AwardXP = append(mock.calls.AwardXP, callInfo)
	mock.lockAwardXP.Unlock()
	return mock.AwardXPFunc(ctx, input)
}

func (mock *progressServiceMock) AwardXPCalls() []struct {
	Ctx   context.Context
	Input progress.AwardXPInput
} {
	mock.lockAwardXP.RLock()
	calls := mock.calls.AwardXP
	mock.lockAwardXP.RUnlock()
	return calls
}

func (mock *progressServiceMock) LogSession(ctx context.Context, input progress.LogSessionInput) (domain.StudySessionLog, error) {
	if mock.LogSessionFunc == nil {
		panic("progressServiceMock.LogSessionFunc: method is nil but progressService.LogSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.LogSessionInput
	}{Ctx: ctx, Input: input}
	mock.lockLogSession.Lock()
	mock.calls.LogSession = append(mock.calls.LogSession, callInfo)
	mock.lockLogSession.Unlock()
	return mock.LogSessionFunc(ctx, input)
}

func (mock *progressServiceMock) LogSessionCalls() []struct {
	Ctx   context.Context
	Input progress.LogSessionInput
} {
	mock.lockLogSession.RLock()
	calls := mock.calls.LogSession
	mock.lockLogSession.RUnlock()
	return calls
}

func (mock *progressServiceMock) ListSessions(ctx context.Context, limit int) ([]domain.StudySessionLog, error) {
	if mock.ListSessionsFunc == nil {
		panic("progressServiceMock.ListSessionsFunc: method is nil but progressService.ListSessions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListSessions.Lock()
	mock.calls.ListSessions = append(mock.calls.ListSessions, callInfo)
	mock.lockListSessions.Unlock()
	return mock.ListSessionsFunc(ctx, limit)
}

func (mock *progressServiceMock) ListSessionsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListSessions.RLock()
	calls := mock.calls.ListSessions
	mock.lockListSessions.RUnlock()
	return calls
}

func (mock *progressServiceMock) SystemStats(ctx context.Context) (domain.SystemStats, error) {
	if mock.SystemStatsFunc == nil {
		panic("progressServiceMock.SystemStatsFunc: method is nil but progressService.SystemStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSystemStats.Lock()
	mock.calls.SystemStats = append(mock.calls.SystemStats, callInfo)
	mock.lockSystemStats.Unlock()
	return mock.SystemStatsFunc(ctx)
}

func (mock *progressServiceMock) SystemStatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockSystemStats.RLock()
	calls := mock.calls.SystemStats
	mock.lockSystemStats.RUnlock()
	return calls
}
