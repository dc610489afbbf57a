package specification

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EscapeLike makes a user-supplied term safe for embedding in a LIKE/ILIKE
// pattern. Without it, "%" or "_" in the search box would act as wildcards and
// widen the match arbitrarily.
func EscapeLike(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, "%", `\%`)
	term = strings.ReplaceAll(term, "_", `\_`)
	return term
}

// SearchTitleOrContent filters memos by a case-insensitive substring match on
// title or content. The term is escaped exactly once here; callers pass the
// raw trimmed input.
type SearchTitleOrContent struct {
	Term string
}

func (s SearchTitleOrContent) Apply(db *gorm.DB) *gorm.DB {
	pattern := likePattern(s.Term)
	return db.Where(`title ILIKE ? ESCAPE '\' OR content ILIKE ? ESCAPE '\'`, pattern, pattern)
}

func likePattern(term string) string {
	return "%" + EscapeLike(term) + "%"
}

// ByCategory filters by exact category match
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// HasTags filters memos whose tag list contains ALL of the requested tags
// (jsonb containment, not exact match).
type HasTags struct {
	Tags []string
}

func (s HasTags) Apply(db *gorm.DB) *gorm.DB {
	b, err := json.Marshal(s.Tags)
	if err != nil {
		// Tags are plain strings; marshalling cannot realistically fail.
		return db
	}
	return db.Where("tags @> ?", datatypes.JSON(b))
}
