package domain

import "context"

// ContentKind distinguishes the record streams that feed a subject corpus
type ContentKind string

const (
	ContentKindAssignment ContentKind = "assignment"
	ContentKindMaterial   ContentKind = "material"
)

// ContentRecord is the narrow shape the generator needs from assignments and class materials.
type ContentRecord struct {
	Kind           ContentKind
	Title          string
	Description    string
	AttachmentPath string // empty when nothing is attached
}

// HasAttachment reports whether the record references a stored document
func (r ContentRecord) HasAttachment() bool {
	return r.AttachmentPath != ""
}

// SubjectContentRepository reads the course content belonging to a subject.
type SubjectContentRepository interface {
	// SubjectExists reports whether the subject is known.
	SubjectExists(ctx context.Context, subjectID string) (bool, error)

	// GetAssignmentsBySubject returns assignment records ordered by creation time.
	GetAssignmentsBySubject(ctx context.Context, subjectID string) ([]ContentRecord, error)

	// GetMaterialsBySubject returns class material records ordered by creation time.
	GetMaterialsBySubject(ctx context.Context, subjectID string) ([]ContentRecord, error)
}

// TextExtractor turns a stored document into plain text.
// Implementations never fail outward: missing files and unsupported formats yield "".
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) string
}
