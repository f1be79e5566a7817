package collection

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/openroam/wanderspin-backend/internal/domain"
)

var _ destinationRepo = &destinationRepoMock{}

type destinationRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Destination, error)
	CountFunc      func(ctx context.Context, userID uuid.UUID) (int, error)
	InsertFunc     func(ctx context.Context, d *domain.Destination) (*domain.Destination, error)
	DeleteFunc     func(ctx context.Context, userID, id uuid.UUID) error

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Count []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Insert []struct {
			Ctx context.Context
			D   *domain.Destination
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
	lockCount      sync.RWMutex
	lockInsert     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *destinationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Destination, error) {
	if mock.ListByUserFunc == nil {
		panic("destinationRepoMock.ListByUserFunc: method is nil but destinationRepo.ListByUser was just called")
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

func (mock *destinationRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *destinationRepoMock) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("destinationRepoMock.CountFunc: method is nil but destinationRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, userID)
}

func (mock *destinationRepoMock) CountCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *destinationRepoMock) Insert(ctx context.Context, d *domain.Destination) (*domain.Destination, error) {
	if mock.InsertFunc == nil {
		panic("destinationRepoMock.InsertFunc: method is nil but destinationRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Destination
	}{Ctx: ctx, D: d}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, d)
}

func (mock *destinationRepoMock) InsertCalls() []struct {
	Ctx context.Context
	D   *domain.Destination
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *destinationRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("destinationRepoMock.DeleteFunc: method is nil but destinationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *destinationRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
