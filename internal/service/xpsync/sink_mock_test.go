package xpsync

import (
	"context"
	"sync"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

var _ sink = &sinkMock{}

type sinkMock struct {
	PushXPFunc     func(ctx context.Context, award domain.XPAward) error
	LogSessionFunc func(ctx context.Context, summary domain.SessionSummary) error

	calls struct {
		PushXP []struct {
			Ctx   context.Context
			Award domain.XPAward
		}
		LogSession []struct {
			Ctx     context.Context
			Summary domain.SessionSummary
		}
	}
	lockPushXP     sync.RWMutex
	lockLogSession sync.RWMutex
}

func (mock *sinkMock) PushXP(ctx context.Context, award domain.XPAward) error {
	if mock.PushXPFunc == nil {
		panic("sinkMock.PushXPFunc: method is nil but sink.PushXP was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Award domain.XPAward
	}{Ctx: ctx, Award: award}
	mock.lockPushXP.Lock()
	mock.calls.PushXP = append(mock.calls.PushXP, callInfo)
	mock.lockPushXP.Unlock()
	return mock.PushXPFunc(ctx, award)
}

func (mock *sinkMock) PushXPCalls() []struct {
	Ctx   context.Context
	Award domain.XPAward
} {
	mock.lockPushXP.RLock()
	calls := mock.calls.PushXP
	mock.lockPushXP.RUnlock()
	return calls
}

func (mock *sinkMock) LogSession(ctx context.Context, summary domain.SessionSummary) error {
	if mock.LogSessionFunc == nil {
		panic("sinkMock.LogSessionFunc: method is nil but sink.LogSession was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Summary domain.SessionSummary
	}{Ctx: ctx, Summary: summary}
	mock.lockLogSession.Lock()
	mock.calls.LogSession = append(mock.calls.LogSession, callInfo)
	mock.lockLogSession.Unlock()
	return mock.LogSessionFunc(ctx, summary)
}

func (mock *sinkMock) LogSessionCalls() []struct {
	Ctx     context.Context
	Summary domain.SessionSummary
} {
	mock.lockLogSession.RLock()
	calls := mock.calls.LogSession
	mock.lockLogSession.RUnlock()
	return calls
}
