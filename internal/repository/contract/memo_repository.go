package contract

import (
	"context"

	"github.com/tagnote-app/tagnote-be/internal/entity"
	"github.com/tagnote-app/tagnote-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MemoRepository interface {
	Create(ctx context.Context, memo *entity.Memo) error
	Update(ctx context.Context, memo *entity.Memo) error
	// DeleteOwned removes a memo scoped to id AND user_id. The owner clause
	// is part of the contract, not the caller's responsibility.
	DeleteOwned(ctx context.Context, id uuid.UUID, userId uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Memo, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Memo, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
