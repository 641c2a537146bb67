package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-forge/internal/domain"
)

func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestSubjectExists(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectContentDatabaseAdapter(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(subjectExistsQuery)).
		WithArgs("SUBJ-1").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(1)"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(subjectExistsQuery)).
		WithArgs("SUBJ-404").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(1)"}).AddRow(0))

	ok, err := repo.SubjectExists(ctx, "SUBJ-1")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SubjectExists(ctx, "SUBJ-404")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectExists_DBError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectContentDatabaseAdapter(db)
	dbErr := errors.New("ORA-12541: TNS:no listener")

	mock.ExpectQuery(regexp.QuoteMeta(subjectExistsQuery)).WithArgs("SUBJ-1").WillReturnError(dbErr)

	ok, err := repo.SubjectExists(context.Background(), "SUBJ-1")
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAssignmentsBySubject(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectContentDatabaseAdapter(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"ID", "SUBJECT_ID", "TITLE", "DESCRIPTION", "ATTACHMENT_PATH", "CREATED_AT"}).
		AddRow("A1", "SUBJ-1", "Lab report", "Measure enzyme activity.", "subj-1/lab.docx", now).
		AddRow("A2", "SUBJ-1", "Reading", nil, nil, now.Add(time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(assignmentsBySubjectQuery)).WithArgs("SUBJ-1").WillReturnRows(rows)

	records, err := repo.GetAssignmentsBySubject(context.Background(), "SUBJ-1")

	require.NoError(t, err)
	assert.Equal(t, []domain.ContentRecord{
		{Kind: domain.ContentKindAssignment, Title: "Lab report", Description: "Measure enzyme activity.", AttachmentPath: "subj-1/lab.docx"},
		{Kind: domain.ContentKindAssignment, Title: "Reading"},
	}, records)
	assert.False(t, records[1].HasAttachment())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAssignmentsBySubject_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectContentDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"ID", "SUBJECT_ID", "TITLE", "DESCRIPTION", "ATTACHMENT_PATH", "CREATED_AT"})
	mock.ExpectQuery(regexp.QuoteMeta(assignmentsBySubjectQuery)).WithArgs("SUBJ-1").WillReturnRows(rows)

	records, err := repo.GetAssignmentsBySubject(context.Background(), "SUBJ-1")

	assert.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMaterialsBySubject(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectContentDatabaseAdapter(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"ID", "SUBJECT_ID", "TITLE", "DESCRIPTION", "FILE_PATH", "CREATED_AT"}).
		AddRow("M1", "SUBJ-1", "Week 1 slides", "Cell structure overview.", "subj-1/week1.pdf", now)
	mock.ExpectQuery(regexp.QuoteMeta(materialsBySubjectQuery)).WithArgs("SUBJ-1").WillReturnRows(rows)

	records, err := repo.GetMaterialsBySubject(context.Background(), "SUBJ-1")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.ContentKindMaterial, records[0].Kind)
	assert.Equal(t, "subj-1/week1.pdf", records[0].AttachmentPath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMaterialsBySubject_DBError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectContentDatabaseAdapter(db)
	dbErr := errors.New("ORA-00942: table or view does not exist")

	mock.ExpectQuery(regexp.QuoteMeta(materialsBySubjectQuery)).WithArgs("SUBJ-1").WillReturnError(dbErr)

	records, err := repo.GetMaterialsBySubject(context.Background(), "SUBJ-1")

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}
