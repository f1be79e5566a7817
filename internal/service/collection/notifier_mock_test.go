package collection

import (
	"context"
	"sync"

	"github.com/openroam/wanderspin-backend/internal/adapter/notify"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyFunc func(ctx context.Context, n notify.Notice)

	calls struct {
		Notify []struct {
			Ctx context.Context
			N   notify.Notice
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, n notify.Notice) {
	if mock.NotifyFunc == nil {
		panic("notifierMock.NotifyFunc: method is nil but notifier.Notify was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   notify.Notice
	}{Ctx: ctx, N: n}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	mock.NotifyFunc(ctx, n)
}

func (mock *notifierMock) NotifyCalls() []struct {
	Ctx context.Context
	N   notify.Notice
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
