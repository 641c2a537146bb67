package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/repository/models"
	"quiz-forge/internal/util"
)

const (
	subjectExistsQuery = `SELECT COUNT(1) FROM subjects WHERE id = :1 AND deleted_at IS NULL`

	assignmentsBySubjectQuery = `SELECT id, subject_id, title, description, attachment_path, created_at
		FROM assignments
		WHERE subject_id = :1 AND deleted_at IS NULL
		ORDER BY created_at ASC, id ASC`

	materialsBySubjectQuery = `SELECT id, subject_id, title, description, file_path, created_at
		FROM class_materials
		WHERE subject_id = :1 AND deleted_at IS NULL
		ORDER BY created_at ASC, id ASC`
)

// SubjectContentDatabaseAdapter reads course content from Oracle.
type SubjectContentDatabaseAdapter struct {
	db DBTX
}

// NewSubjectContentDatabaseAdapter creates a new instance of SubjectContentDatabaseAdapter
func NewSubjectContentDatabaseAdapter(db DBTX) domain.SubjectContentRepository {
	return &SubjectContentDatabaseAdapter{db: db}
}

func (r *SubjectContentDatabaseAdapter) SubjectExists(ctx context.Context, subjectID string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, subjectExistsQuery, subjectID); err != nil {
		return false, fmt.Errorf("count subject %s: %w", subjectID, err)
	}
	return count > 0, nil
}

// GetAssignmentsBySubject returns assignments oldest first.
func (r *SubjectContentDatabaseAdapter) GetAssignmentsBySubject(ctx context.Context, subjectID string) ([]domain.ContentRecord, error) {
	var rows []models.Assignment
	if err := r.db.SelectContext(ctx, &rows, assignmentsBySubjectQuery, subjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.ContentRecord{}, nil
		}
		return nil, fmt.Errorf("select assignments of subject %s: %w", subjectID, err)
	}

	records := make([]domain.ContentRecord, len(rows))
	for i, a := range rows {
		records[i] = domain.ContentRecord{
			Kind:           domain.ContentKindAssignment,
			Title:          a.Title,
			Description:    util.NullStringValue(a.Description),
			AttachmentPath: util.NullStringValue(a.AttachmentPath),
		}
	}
	return records, nil
}

// GetMaterialsBySubject returns class materials oldest first.
func (r *SubjectContentDatabaseAdapter) GetMaterialsBySubject(ctx context.Context, subjectID string) ([]domain.ContentRecord, error) {
	var rows []models.ClassMaterial
	if err := r.db.SelectContext(ctx, &rows, materialsBySubjectQuery, subjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.ContentRecord{}, nil
		}
		return nil, fmt.Errorf("select materials of subject %s: %w", subjectID, err)
	}

	records := make([]domain.ContentRecord, len(rows))
	for i, m := range rows {
		records[i] = domain.ContentRecord{
			Kind:           domain.ContentKindMaterial,
			Title:          m.Title,
			Description:    util.NullStringValue(m.Description),
			AttachmentPath: util.NullStringValue(m.FilePath),
		}
	}
	return records, nil
}
