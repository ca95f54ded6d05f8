package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	GetXPFunc             func(ctx context.Context, userID uuid.UUID) (int, error)
	InsertEventFunc       func(ctx context.Context, ev domain.XPEvent) (bool, error)
	AddXPFunc             func(ctx context.Context, userID uuid.UUID, amount int, at time.Time) (int, error)
	PurgeEventsBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)

	calls struct {
		GetXP []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		InsertEvent []struct {
			Ctx context.Context
			Ev  domain.XPEvent
		}
		AddXP []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Amount int
			At     time.Time
		}
		PurgeEventsBefore []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
	}
	lockGetXP             sync.RWMutex
	lockInsertEvent       sync.RWMutex
	lockAddXP             sync.RWMutex
	lockPurgeEventsBefore sync.RWMutex
}

func (mock *ledgerRepoMock) GetXP(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.GetXPFunc == nil {
		panic("ledgerRepoMock.GetXPFunc: method is nil but ledgerRepo.GetXP was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetXP.Lock()
	mock.calls.GetXP = append(mock.calls.GetXP, callInfo)
	mock.lockGetXP.Unlock()
	return mock.GetXPFunc(ctx, userID)
}

func (mock *ledgerRepoMock) GetXPCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetXP.RLock()
	calls := mock.calls.GetXP
	mock.lockGetXP.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) InsertEvent(ctx context.Context, ev domain.XPEvent) (bool, error) {
	if mock.InsertEventFunc == nil {
		panic("ledgerRepoMock.InsertEventFunc: method is nil but ledgerRepo.InsertEvent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.XPEvent
	}{Ctx: ctx, Ev: ev}
	mock.lockInsertEvent.Lock()
	mock.calls.InsertEvent = append(mock.calls.InsertEvent, callInfo)
	mock.lockInsertEvent.Unlock()
	return mock.InsertEventFunc(ctx, ev)
}

func (mock *ledgerRepoMock) InsertEventCalls() []struct {
	Ctx context.Context
	Ev  domain.XPEvent
} {
	mock.lockInsertEvent.RLock()
	calls := mock.calls.InsertEvent
	mock.lockInsertEvent.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) AddXP(ctx context.Context, userID uuid.UUID, amount int, at time.Time) (int, error) {
	if mock.AddXPFunc == nil {
		panic("ledgerRepoMock.AddXPFunc: method is nil but ledgerRepo.AddXP was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Amount int
		At     time.Time
	}{Ctx: ctx, UserID: userID, Amount: amount, At: at}
	mock.lockAddXP.Lock()
	mock.calls.AddXP = append(mock.calls.AddXP, callInfo)
	mock.lockAddXP.Unlock()
	return mock.AddXPFunc(ctx, userID, amount, at)
}

func (mock *ledgerRepoMock) AddXPCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Amount int
	At     time.Time
} {
	mock.lockAddXP.RLock()
	calls := mock.calls.AddXP
	mock.lockAddXP.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) PurgeEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.PurgeEventsBeforeFunc == nil {
		panic("ledgerRepoMock.PurgeEventsBeforeFunc: method is nil but ledgerRepo.PurgeEventsBefore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockPurgeEventsBefore.Lock()
	mock.calls.PurgeEventsBefore = append(mock.calls.PurgeEventsBefore, callInfo)
	mock.lockPurgeEventsBefore.Unlock()
	return mock.PurgeEventsBeforeFunc(ctx, cutoff)
}

func (mock *ledgerRepoMock) PurgeEventsBeforeCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.lockPurgeEventsBefore.RLock()
	calls := mock.calls.PurgeEventsBefore
	mock.lockPurgeEventsBefore.RUnlock()
	return calls
}

var _ cardStats = &cardStatsMock{}

type cardStatsMock struct {
	CountBySubjectFunc func(ctx context.Context, userID uuid.UUID) ([]domain.SubjectCount, error)
	ReviewDaysFunc     func(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayReviewCount, error)
	SystemStatsFunc    func(ctx context.Context, activeSince time.Time, topSubjects int) (domain.SystemStats, error)

	calls struct {
		CountBySubject []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ReviewDays []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
		SystemStats []struct {
			Ctx         context.Context
			ActiveSince time.Time
			TopSubjects int
		}
	}
	lockCountBySubject sync.RWMutex
	lockReviewDays     sync.RWMutex
	lockSystemStats    sync.RWMutex
}

func (mock *cardStatsMock) CountBySubject(ctx context.Context, userID uuid.UUID) ([]domain.SubjectCount, error) {
	if mock.CountBySubjectFunc == nil {
		panic("cardStatsMock.CountBySubjectFunc: method is nil but cardStats.CountBySubject was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountBySubject.Lock()
	mock.calls.CountBySubject = append(mock.calls.CountBySubject, callInfo)
	mock.lockCountBySubject.Unlock()
	return mock.CountBySubjectFunc(ctx, userID)
}

func (mock *cardStatsMock) CountBySubjectCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountBySubject.RLock()
	calls := mock.calls.CountBySubject
	mock.lockCountBySubject.RUnlock()
	return calls
}

func (mock *cardStatsMock) ReviewDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayReviewCount, error) {
	if mock.ReviewDaysFunc == nil {
		panic("cardStatsMock.ReviewDaysFunc: method is nil but cardStats.ReviewDays was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockReviewDays.Lock()
	mock.calls.ReviewDays = append(mock.calls.ReviewDays, callInfo)
	mock.lockReviewDays.Unlock()
	return mock.ReviewDaysFunc(ctx, userID, since)
}

func (mock *cardStatsMock) ReviewDaysCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockReviewDays.RLock()
	calls := mock.calls.ReviewDays
	mock.lockReviewDays.RUnlock()
	return calls
}

func (mock *cardStatsMock) SystemStats(ctx context.Context, activeSince time.Time, topSubjects int) (domain.SystemStats, error) {
	if mock.SystemStatsFunc == nil {
		panic("cardStatsMock.SystemStatsFunc: method is nil but cardStats.SystemStats was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ActiveSince time.Time
		TopSubjects int
	}{Ctx: ctx, ActiveSince: activeSince, TopSubjects: topSubjects}
	mock.lockSystemStats.Lock()
	mock.calls.SystemStats = append(mock.calls.SystemStats, callInfo)
	mock.lockSystemStats.Unlock()
	return mock.SystemStatsFunc(ctx, activeSince, topSubjects)
}

func (mock *cardStatsMock) SystemStatsCalls() []struct {
	Ctx         context.Context
	ActiveSince time.Time
	TopSubjects int
} {
	mock.lockSystemStats.RLock()
	calls := mock.calls.SystemStats
	mock.lockSystemStats.RUnlock()
	return calls
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc     func(ctx context.Context, s domain.StudySessionLog) error
	ListFunc       func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.StudySessionLog, error)
	ActiveDaysFunc func(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.StudySessionLog
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		ActiveDays []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
	}
	lockCreate     sync.RWMutex
	lockList       sync.RWMutex
	lockActiveDays sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s domain.StudySessionLog) error {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.StudySessionLog
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.StudySessionLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.StudySessionLog, error) {
	if mock.ListFunc == nil {
		panic("sessionRepoMock.ListFunc: method is nil but sessionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, limit)
}

func (mock *sessionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ActiveDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	if mock.ActiveDaysFunc == nil {
		panic("sessionRepoMock.ActiveDaysFunc: method is nil but sessionRepo.ActiveDays was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockActiveDays.Lock()
	mock.calls.ActiveDays = append(mock.calls.ActiveDays, callInfo)
	mock.lockActiveDays.Unlock()
	return mock.ActiveDaysFunc(ctx, userID, since)
}

func (mock *sessionRepoMock) ActiveDaysCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockActiveDays.RLock()
	calls := mock.calls.ActiveDays
	mock.lockActiveDays.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
