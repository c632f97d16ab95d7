package museum_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Jasch-M/asyncmuseum/internal/models"
)

// MockCatalogDB is a mock implementation of CatalogDBLayer.
type MockCatalogDB[T any] struct {
	mock.Mock
}

func (m *MockCatalogDB[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCatalogDB[T]) Get(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCatalogDB[T]) Create(ctx context.Context, item *T) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogDB[T]) Update(ctx context.Context, item *T) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogDB[T]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVisitorInfoDB struct {
	mock.Mock
}

func (m *MockVisitorInfoDB) GetOrCreate(ctx context.Context, defaults models.VisitorInfo) (*models.VisitorInfoRow, bool, error) {
	args := m.Called(ctx, defaults)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*models.VisitorInfoRow), args.Bool(1), args.Error(2)
}

func (m *MockVisitorInfoDB) Put(ctx context.Context, info models.VisitorInfo) (*models.VisitorInfoRow, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VisitorInfoRow), args.Error(1)
}

type MockUserDB struct {
	mock.Mock
}

func (m *MockUserDB) UpsertLogin(ctx context.Context, email, providerID, providerUserID string, displayName *string, at time.Time) (*models.User, error) {
	args := m.Called(ctx, email, providerID, providerUserID, displayName, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(user models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

type MockContactDB struct {
	mock.Mock
}

func (m *MockContactDB) Create(ctx context.Context, submission *models.ContactSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockContactDB) ListNewestFirst(ctx context.Context) ([]models.ContactSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactSubmission), args.Error(1)
}

func (m *MockContactDB) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishContactSubmitted(ctx context.Context, submission models.ContactSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}
