package cardbank

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ListFunc           func(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.BankCard, error)
	CountBySubjectFunc func(ctx context.Context, userID uuid.UUID) ([]domain.SubjectCount, error)
	CreateBatchFunc    func(ctx context.Context, cards []domain.BankCard) error
	MarkReviewedFunc   func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID, at time.Time) (domain.BankCard, error)
	DeleteFunc         func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) error

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.CardFilter
		}
		CountBySubject []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CreateBatch []struct {
			Ctx   context.Context
			Cards []domain.BankCard
		}
		MarkReviewed []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
			At     time.Time
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
	}
	lockList           sync.RWMutex
	lockCountBySubject sync.RWMutex
	lockCreateBatch    sync.RWMutex
	lockMarkReviewed   sync.RWMutex
	lockDelete         sync.RWMutex
}

func (mock *cardRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.BankCard, error) {
	if mock.ListFunc == nil {
		panic("cardRepoMock.ListFunc: method is nil but cardRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.CardFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *cardRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.CardFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *cardRepoMock) CountBySubject(ctx context.Context, userID uuid.UUID) ([]domain.SubjectCount, error) {
	if mock.CountBySubjectFunc == nil {
		panic("cardRepoMock.CountBySubjectFunc: method is nil but cardRepo.CountBySubject was just called")
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

func (mock *cardRepoMock) CountBySubjectCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountBySubject.RLock()
	calls := mock.calls.CountBySubject
	mock.lockCountBySubject.RUnlock()
	return calls
}

func (mock *cardRepoMock) CreateBatch(ctx context.Context, cards []domain.BankCard) error {
	if mock.CreateBatchFunc == nil {
		panic("cardRepoMock.CreateBatchFunc: method is nil but cardRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Cards []domain.BankCard
	}{Ctx: ctx, Cards: cards}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, cards)
}

func (mock *cardRepoMock) CreateBatchCalls() []struct {
	Ctx   context.Context
	Cards []domain.BankCard
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *cardRepoMock) MarkReviewed(ctx context.Context, userID uuid.UUID, cardID uuid.UUID, at time.Time) (domain.BankCard, error) {
	if mock.MarkReviewedFunc == nil {
		panic("cardRepoMock.MarkReviewedFunc: method is nil but cardRepo.MarkReviewed was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
		At     time.Time
	}{Ctx: ctx, UserID: userID, CardID: cardID, At: at}
	mock.lockMarkReviewed.Lock()
	mock.calls.MarkReviewed = append(mock.calls.MarkReviewed, callInfo)
	mock.lockMarkReviewed.Unlock()
	return mock.MarkReviewedFunc(ctx, userID, cardID, at)
}

func (mock *cardRepoMock) MarkReviewedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
	At     time.Time
} {
	mock.lockMarkReviewed.RLock()
	calls := mock.calls.MarkReviewed
	mock.lockMarkReviewed.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}{Ctx: ctx, UserID: userID, CardID: cardID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
