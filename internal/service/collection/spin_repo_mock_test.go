package collection

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/openroam/wanderspin-backend/internal/domain"
)

var _ spinRepo = &spinRepoMock{}

type spinRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.SpinRecord, error)
	InsertFunc     func(ctx context.Context, rec *domain.SpinRecord) (*domain.SpinRecord, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Insert []struct {
			Ctx context.Context
			Rec *domain.SpinRecord
		}
	}
	lockListByUser sync.RWMutex
	lockInsert     sync.RWMutex
}

func (mock *spinRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SpinRecord, error) {
	if mock.ListByUserFunc == nil {
		panic("spinRepoMock.ListByUserFunc: method is nil but spinRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *spinRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *spinRepoMock) Insert(ctx context.Context, rec *domain.SpinRecord) (*domain.SpinRecord, error) {
	if mock.InsertFunc == nil {
		panic("spinRepoMock.InsertFunc: method is nil but spinRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.SpinRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, rec)
}

func (mock *spinRepoMock) InsertCalls() []struct {
	Ctx context.Context
	Rec *domain.SpinRecord
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}
