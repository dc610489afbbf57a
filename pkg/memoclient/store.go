package memoclient

import (
	"context"
	"errors"
	"time"

	"github.com/tagnote-app/tagnote-be/internal/entity"
	"github.com/tagnote-app/tagnote-be/internal/repository/contract"
	"github.com/tagnote-app/tagnote-be/internal/repository/specification"

	"github.com/google/uuid"
)

var ErrMemoNotFound = errors.New("memo not found")

// Memo is the client-side view of a stored memo.
type Memo struct {
	Id        uuid.UUID
	Title     string
	Content   string
	Category  *string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt *time.Time
	UserId    uuid.UUID
}

// Store is the persistence surface the client core talks to. Every call is
// scoped to the owning identity; there is no unscoped variant.
type Store interface {
	Insert(ctx context.Context, memo *Memo) error
	FindOne(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*Memo, error)
	Update(ctx context.Context, id uuid.UUID, userId uuid.UUID, title string, content string) (*Memo, error)
	Delete(ctx context.Context, id uuid.UUID, userId uuid.UUID) error
}

type repositoryStore struct {
	memoRepository contract.MemoRepository
}

// NewRepositoryStore adapts the server-side memo repository to the client
// core's Store surface, for deployments where both halves run in one process.
func NewRepositoryStore(memoRepository contract.MemoRepository) Store {
	return &repositoryStore{memoRepository: memoRepository}
}

func (s *repositoryStore) Insert(ctx context.Context, memo *Memo) error {
	row := &entity.Memo{
		Id:        memo.Id,
		Title:     memo.Title,
		Content:   memo.Content,
		Category:  memo.Category,
		Tags:      memo.Tags,
		CreatedAt: memo.CreatedAt,
		UserId:    memo.UserId,
	}
	if row.Id == uuid.Nil {
		row.Id = uuid.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}

	if err := s.memoRepository.Create(ctx, row); err != nil {
		return err
	}

	memo.Id = row.Id
	memo.CreatedAt = row.CreatedAt
	return nil
}

func (s *repositoryStore) FindOne(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*Memo, error) {
	row, err := s.memoRepository.FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrMemoNotFound
	}
	return fromEntity(row), nil
}

func (s *repositoryStore) Update(ctx context.Context, id uuid.UUID, userId uuid.UUID, title string, content string) (*Memo, error) {
	row, err := s.memoRepository.FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrMemoNotFound
	}

	now := time.Now()
	row.Title = title
	row.Content = content
	row.UpdatedAt = &now

	if err := s.memoRepository.Update(ctx, row); err != nil {
		return nil, err
	}
	return fromEntity(row), nil
}

func (s *repositoryStore) Delete(ctx context.Context, id uuid.UUID, userId uuid.UUID) error {
	rows, err := s.memoRepository.DeleteOwned(ctx, id, userId)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMemoNotFound
	}
	return nil
}

func fromEntity(row *entity.Memo) *Memo {
	return &Memo{
		Id:        row.Id,
		Title:     row.Title,
		Content:   row.Content,
		Category:  row.Category,
		Tags:      row.Tags,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		UserId:    row.UserId,
	}
}
