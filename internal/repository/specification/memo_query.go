package specification

import (
	"strings"

	"github.com/tagnote-app/tagnote-be/internal/dto"

	"github.com/google/uuid"
)

// BuildMemoQuery translates the list screen's filter bar into the composable
// predicate set for a fetch. The owner clause and newest-first ordering are
// unconditional; search, category and tag predicates only appear when the
// filter carries a non-empty value. All filter composition lives here so it
// stays unit-testable without a database.
func BuildMemoQuery(owner uuid.UUID, filter dto.MemoFilter) []Specification {
	specs := []Specification{
		OwnedBy{UserID: owner},
	}

	if term := strings.TrimSpace(filter.Search); term != "" {
		specs = append(specs, SearchTitleOrContent{Term: term})
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		specs = append(specs, ByCategory{Category: category})
	}
	if len(filter.Tags) > 0 {
		specs = append(specs, HasTags{Tags: filter.Tags})
	}

	specs = append(specs, OrderBy{Field: "created_at", Desc: true})
	return specs
}
