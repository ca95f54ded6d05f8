package study

import (
	"context"
	"sync"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

var _ awardNotifier = &awardNotifierMock{}

type awardNotifierMock struct {
	NotifyFunc func(ctx context.Context, award domain.XPAward)

	calls struct {
		Notify []struct {
			Ctx   context.Context
			Award domain.XPAward
		}
	}
	lockNotify sync.RWMutex
}

func (mock *awardNotifierMock) Notify(ctx context.Context, award domain.XPAward) {
	if mock.NotifyFunc == nil {
		panic("awardNotifierMock.NotifyFunc: method is nil but awardNotifier.Notify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Award domain.XPAward
	}{Ctx: ctx, Award: award}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	mock.NotifyFunc(ctx, award)
}

func (mock *awardNotifierMock) NotifyCalls() []struct {
	Ctx   context.Context
	Award domain.XPAward
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
