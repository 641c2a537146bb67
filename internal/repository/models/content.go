package models

import (
	"database/sql"
	"time"
)

// Assignment maps a row of the ASSIGNMENTS table.
type Assignment struct {
	ID             string         `db:"ID"`
	SubjectID      string         `db:"SUBJECT_ID"`
	Title          string         `db:"TITLE"`
	Description    sql.NullString `db:"DESCRIPTION"`
	AttachmentPath sql.NullString `db:"ATTACHMENT_PATH"` // 업로드된 파일 경로
	CreatedAt      time.Time      `db:"CREATED_AT"`
}

// ClassMaterial maps a row of the CLASS_MATERIALS table.
type ClassMaterial struct {
	ID          string         `db:"ID"`
	SubjectID   string         `db:"SUBJECT_ID"`
	Title       string         `db:"TITLE"`
	Description sql.NullString `db:"DESCRIPTION"`
	FilePath    sql.NullString `db:"FILE_PATH"`
	CreatedAt   time.Time      `db:"CREATED_AT"`
}
