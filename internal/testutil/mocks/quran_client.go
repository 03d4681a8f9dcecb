package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tijeane/quran-learning/internal/quran"
)

// MockQuranClient is a mock implementation of quran.ClientInterface.
type MockQuranClient struct {
	mock.Mock
}

func (m *MockQuranClient) Search(ctx context.Context, keyword, scope, edition string) (*quran.SearchResult, error) {
	args := m.Called(ctx, keyword, scope, edition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quran.SearchResult), args.Error(1)
}

func (m *MockQuranClient) Ayah(ctx context.Context, surah, ayah int, edition string) (*quran.AyahData, error) {
	args := m.Called(ctx, surah, ayah, edition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quran.AyahData), args.Error(1)
}
