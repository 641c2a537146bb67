package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quiz-forge/internal/domain"
)

const defaultExtractConcurrency = 4

// ContextAggregator builds the text corpus of a subject.
type ContextAggregator interface {
	Aggregate(ctx context.Context, subjectID string) (string, error)
}

type contextAggregator struct {
	repo        domain.SubjectContentRepository
	extractor   domain.TextExtractor
	concurrency int
	logger      *zap.Logger
}

// NewContextAggregator creates a ContextAggregator. Attachments are extracted
// with at most concurrency documents in flight.
func NewContextAggregator(
	repo domain.SubjectContentRepository,
	extractor domain.TextExtractor,
	concurrency int,
	logger *zap.Logger,
) ContextAggregator {
	if concurrency <= 0 {
		concurrency = defaultExtractConcurrency
	}
	return &contextAggregator{
		repo:        repo,
		extractor:   extractor,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Aggregate concatenates assignments, then materials, in repository order.
// Each record contributes "{title}. {description} " followed by its
// attachment text and a newline when it has an attachment.
func (a *contextAggregator) Aggregate(ctx context.Context, subjectID string) (string, error) {
	assignments, err := a.repo.GetAssignmentsBySubject(ctx, subjectID)
	if err != nil {
		return "", err
	}
	materials, err := a.repo.GetMaterialsBySubject(ctx, subjectID)
	if err != nil {
		return "", err
	}

	records := make([]domain.ContentRecord, 0, len(assignments)+len(materials))
	records = append(records, assignments...)
	records = append(records, materials...)

	texts, err := a.extractAll(ctx, records)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, rec := range records {
		b.WriteString(rec.Title)
		b.WriteString(". ")
		b.WriteString(rec.Description)
		b.WriteString(" ")
		if rec.HasAttachment() {
			b.WriteString(texts[i])
			b.WriteString("\n")
		}
	}

	a.logger.Debug("Aggregated subject content",
		zap.String("subject_id", subjectID),
		zap.Int("assignments", len(assignments)),
		zap.Int("materials", len(materials)),
		zap.Int("length", b.Len()),
	)
	return b.String(), nil
}

// extractAll fills texts by record index so output order never depends on
// which extraction finishes first.
func (a *contextAggregator) extractAll(ctx context.Context, records []domain.ContentRecord) ([]string, error) {
	texts := make([]string, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, rec := range records {
		if !rec.HasAttachment() {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			texts[i] = a.extractor.ExtractText(gctx, rec.AttachmentPath)
			if texts[i] == "" {
				a.logger.Debug("Attachment contributed no text", zap.String("path", rec.AttachmentPath))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return texts, nil
}
