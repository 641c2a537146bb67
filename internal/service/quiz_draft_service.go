package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"quiz-forge/internal/cache"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/quizgen"
	"quiz-forge/internal/util"
	"quiz-forge/internal/validation"
)

// DraftRequestOptions tweaks a single draft request.
type DraftRequestOptions struct {
	// Refresh skips the cached draft and generates a new one.
	Refresh bool
}

// DraftEngine turns a corpus into questions. *quizgen.Generator implements it.
type DraftEngine interface {
	Draft(corpus string) quizgen.Draft
}

// QuizDraftService defines the interface for quiz draft operations
type QuizDraftService interface {
	GenerateQuizDraft(ctx context.Context, subjectID string, opts DraftRequestOptions) (*domain.QuizDraft, error)
}

type quizDraftService struct {
	repo       domain.SubjectContentRepository
	aggregator ContextAggregator
	engine     DraftEngine
	cache      domain.Cache // optional
	validator  *validation.Validator
	cfg        config.GeneratorConfig
	logger     *zap.Logger

	group singleflight.Group
	newID func() string
	now   func() time.Time
}

// NewQuizDraftService creates a new instance of quizDraftService
func NewQuizDraftService(
	repo domain.SubjectContentRepository,
	aggregator ContextAggregator,
	engine DraftEngine,
	cache domain.Cache,
	cfg config.GeneratorConfig,
	logger *zap.Logger,
) QuizDraftService {
	return &quizDraftService{
		repo:       repo,
		aggregator: aggregator,
		engine:     engine,
		cache:      cache,
		validator:  validation.NewValidator(),
		cfg:        cfg,
		logger:     logger,
		newID:      util.NewULID,
		now:        time.Now,
	}
}

// GenerateQuizDraft implements QuizDraftService. Concurrent requests for the
// same subject share one generation run.
func (s *quizDraftService) GenerateQuizDraft(ctx context.Context, subjectID string, opts DraftRequestOptions) (*domain.QuizDraft, error) {
	if errs := s.validator.ValidateSubjectID(subjectID); len(errs) > 0 {
		return nil, errs
	}

	exists, err := s.repo.SubjectExists(ctx, subjectID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up subject", err)
	}
	if !exists {
		return nil, domain.NewSubjectNotFoundError(subjectID)
	}

	if opts.Refresh {
		s.evictDraft(ctx, subjectID)
	} else if draft, ok := s.cachedDraft(ctx, subjectID); ok {
		return draft, nil
	}

	// the shared run must not die with whichever caller started it
	ch := s.group.DoChan(subjectID, func() (interface{}, error) {
		return s.generate(context.WithoutCancel(ctx), subjectID)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return cloneDraft(res.Val.(*domain.QuizDraft)), nil
	case <-ctx.Done():
		return nil, domain.NewInternalError("Quiz draft request cancelled", ctx.Err())
	}
}

func (s *quizDraftService) generate(ctx context.Context, subjectID string) (*domain.QuizDraft, error) {
	start := time.Now()

	var cancel context.CancelFunc
	if s.cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	corpus, err := s.aggregator.Aggregate(ctx, subjectID)
	if err != nil {
		s.logger.Error("Failed to aggregate subject content", zap.String("subject_id", subjectID), zap.Error(err))
		return nil, generationError("Failed to aggregate subject content", err)
	}

	result, err := s.runEngine(ctx, corpus)
	if err != nil {
		s.logger.Warn("Quiz generation timed out", zap.String("subject_id", subjectID), zap.Duration("timeout", s.cfg.Timeout))
		return nil, generationError("Quiz generation aborted", err)
	}

	for i := range result.Questions {
		result.Questions[i].ID = s.newID()
	}
	draft := &domain.QuizDraft{
		SubjectID:    subjectID,
		Questions:    result.Questions,
		UsedFallback: result.UsedFallback,
		GeneratedAt:  s.now().UTC(),
	}
	s.storeDraft(ctx, draft)

	s.logger.Info("Quiz draft generated",
		zap.String("subject_id", subjectID),
		zap.Int("question_count", len(draft.Questions)),
		zap.Bool("used_fallback", draft.UsedFallback),
		zap.Int("corpus_length", len(corpus)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return draft, nil
}

// runEngine bounds the CPU bound engine by the context deadline. On expiry the
// engine goroutine finishes in the background and its result is dropped.
func (s *quizDraftService) runEngine(ctx context.Context, corpus string) (quizgen.Draft, error) {
	done := make(chan quizgen.Draft, 1)
	go func() {
		done <- s.engine.Draft(corpus)
	}()
	select {
	case d := <-done:
		return d, nil
	case <-ctx.Done():
		return quizgen.Draft{}, ctx.Err()
	}
}

func generationError(message string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewGenerationTimeoutError(err)
	}
	return domain.NewInternalError(message, err)
}

func (s *quizDraftService) cachedDraft(ctx context.Context, subjectID string) (*domain.QuizDraft, bool) {
	if s.cache == nil {
		return nil, false
	}
	key := cache.QuizDraftKey(subjectID)
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("Quiz draft cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var draft domain.QuizDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		s.logger.Warn("Discarding malformed cached quiz draft", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	s.logger.Debug("Quiz draft served from cache", zap.String("subject_id", subjectID))
	return &draft, true
}

// evictDraft drops the cached draft so a failed refresh does not leave the
// stale one behind.
func (s *quizDraftService) evictDraft(ctx context.Context, subjectID string) {
	if s.cache == nil {
		return
	}
	key := cache.QuizDraftKey(subjectID)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("Quiz draft cache eviction failed", zap.String("key", key), zap.Error(err))
	}
}

// storeDraft is best effort; a cache outage never fails the request.
func (s *quizDraftService) storeDraft(ctx context.Context, draft *domain.QuizDraft) {
	if s.cache == nil {
		return
	}
	key := cache.QuizDraftKey(draft.SubjectID)
	raw, err := json.Marshal(draft)
	if err != nil {
		s.logger.Error("Failed to marshal quiz draft", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cfg.DraftCacheTTL); err != nil {
		s.logger.Warn("Quiz draft cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func cloneDraft(d *domain.QuizDraft) *domain.QuizDraft {
	out := *d
	out.Questions = make([]domain.Question, len(d.Questions))
	for i, q := range d.Questions {
		out.Questions[i] = q.Clone()
	}
	return &out
}
