package unitofwork

import (
	"context"

	"github.com/tagnote-app/tagnote-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MemoRepository() contract.MemoRepository
}
