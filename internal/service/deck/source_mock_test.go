package deck

import (
	"context"
	"sync"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

var _ cardSource = &cardSourceMock{}

type cardSourceMock struct {
	FetchCardsFunc func(ctx context.Context, subject *domain.Subject) ([]domain.Card, error)

	calls struct {
		FetchCards []struct {
			Ctx     context.Context
			Subject *domain.Subject
		}
	}
	lockFetchCards sync.RWMutex
}

func (mock *cardSourceMock) FetchCards(ctx context.Context, subject *domain.Subject) ([]domain.Card, error) {
	if mock.FetchCardsFunc == nil {
		panic("cardSourceMock.FetchCardsFunc: method is nil but cardSource.FetchCards was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Subject *domain.Subject
	}{Ctx: ctx, Subject: subject}
	mock.lockFetchCards.Lock()
	mock.calls.FetchCards = append(mock.calls.FetchCards, callInfo)
	mock.lockFetchCards.Unlock()
	return mock.FetchCardsFunc(ctx, subject)
}

func (mock *cardSourceMock) FetchCardsCalls() []struct {
	Ctx     context.Context
	Subject *domain.Subject
} {
	mock.lockFetchCards.RLock()
	calls := mock.calls.FetchCards
	mock.lockFetchCards.RUnlock()
	return calls
}
