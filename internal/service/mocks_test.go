package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/quizgen"
)

// --- MockSubjectContentRepository ---
type MockSubjectContentRepository struct {
	mock.Mock
}

func (m *MockSubjectContentRepository) SubjectExists(ctx context.Context, subjectID string) (bool, error) {
	args := m.Called(ctx, subjectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubjectContentRepository) GetAssignmentsBySubject(ctx context.Context, subjectID string) ([]domain.ContentRecord, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContentRecord), args.Error(1)
}

func (m *MockSubjectContentRepository) GetMaterialsBySubject(ctx context.Context, subjectID string) ([]domain.ContentRecord, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContentRecord), args.Error(1)
}

// --- MockTextExtractor ---
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, path string) string {
	args := m.Called(ctx, path)
	return args.String(0)
}

// --- MockContextAggregator ---
type MockContextAggregator struct {
	mock.Mock
}

func (m *MockContextAggregator) Aggregate(ctx context.Context, subjectID string) (string, error) {
	args := m.Called(ctx, subjectID)
	return args.String(0), args.Error(1)
}

// --- MockDraftEngine ---
type MockDraftEngine struct {
	mock.Mock
}

func (m *MockDraftEngine) Draft(corpus string) quizgen.Draft {
	args := m.Called(corpus)
	return args.Get(0).(quizgen.Draft)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
