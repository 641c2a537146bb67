package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "quizforge"

	ServiceQuizDraft = "quizdraft"
	ServiceExtract   = "extract"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuizDraftKey is where the last draft of a subject is kept.
func QuizDraftKey(subjectID string) string {
	return GenerateCacheKey(ServiceQuizDraft, "subject", subjectID)
}

// ExtractedTextKey identifies one version of a stored document. A changed
// size or modification time yields a new key, so stale text is never served.
func ExtractedTextKey(path string, size, modUnixNano int64) string {
	return GenerateCacheKey(ServiceExtract, "text", path,
		strconv.FormatInt(size, 10), strconv.FormatInt(modUnixNano, 10))
}
