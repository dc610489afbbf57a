package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tagnote-app/tagnote-be/internal/dto"
	"github.com/tagnote-app/tagnote-be/internal/entity"
	"github.com/tagnote-app/tagnote-be/internal/pkg/serverutils"
	"github.com/tagnote-app/tagnote-be/internal/repository/contract"
	"github.com/tagnote-app/tagnote-be/internal/repository/specification"
	"github.com/tagnote-app/tagnote-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMemoRepository struct {
	memos map[uuid.UUID]*entity.Memo

	created      []*entity.Memo
	updated      []*entity.Memo
	findAllSpecs []specification.Specification
	findAllCalls int

	createErr  error
	findErr    error
	updateErr  error
	deleteErr  error
	deleteRows int64
}

func newFakeMemoRepository() *fakeMemoRepository {
	return &fakeMemoRepository{memos: make(map[uuid.UUID]*entity.Memo)}
}

func (r *fakeMemoRepository) Create(_ context.Context, memo *entity.Memo) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *memo
	r.created = append(r.created, &copied)
	r.memos[memo.Id] = &copied
	return nil
}

func (r *fakeMemoRepository) Update(_ context.Context, memo *entity.Memo) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	copied := *memo
	r.updated = append(r.updated, &copied)
	r.memos[memo.Id] = &copied
	return nil
}

func (r *fakeMemoRepository) DeleteOwned(_ context.Context, id uuid.UUID, userId uuid.UUID) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	memo, ok := r.memos[id]
	if !ok || memo.UserId != userId {
		return 0, nil
	}
	delete(r.memos, id)
	if r.deleteRows != 0 {
		return r.deleteRows, nil
	}
	return 1, nil
}

func (r *fakeMemoRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Memo, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	var id, userId uuid.UUID
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			id = s.ID
		case specification.OwnedBy:
			userId = s.UserID
		}
	}

	memo, ok := r.memos[id]
	if !ok || memo.UserId != userId {
		return nil, nil
	}
	copied := *memo
	return &copied, nil
}

func (r *fakeMemoRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Memo, error) {
	r.findAllCalls++
	r.findAllSpecs = specs
	if r.findErr != nil {
		return nil, r.findErr
	}

	var res []*entity.Memo
	for _, memo := range r.memos {
		copied := *memo
		res = append(res, &copied)
	}
	return res, nil
}

func (r *fakeMemoRepository) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.memos)), nil
}

type fakeUnitOfWork struct {
	memoRepo *fakeMemoRepository
}

func (u *fakeUnitOfWork) Begin(context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error               { return nil }
func (u *fakeUnitOfWork) Rollback() error             { return nil }
func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return nil
}
func (u *fakeUnitOfWork) MemoRepository() contract.MemoRepository {
	return u.memoRepo
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newMemoServiceWithRepo() (IMemoService, *fakeMemoRepository) {
	repo := newFakeMemoRepository()
	factory := &fakeFactory{uow: &fakeUnitOfWork{memoRepo: repo}}
	return NewMemoService(factory, nil, nil), repo
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestCreateBuildsExactInsertPayload(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()
	userId := uuid.New()

	res, err := svc.Create(context.Background(), userId, &dto.CreateMemoRequest{
		Title:     "UI設計メモ",
		Content:   "メモ本文です",
		Category:  "",
		TagsInput: "ui, research",
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, repo.created, 1)

	created := repo.created[0]
	assert.Equal(t, "UI設計メモ", created.Title)
	assert.Equal(t, "メモ本文です", created.Content)
	assert.Nil(t, created.Category)
	assert.Equal(t, []string{"#ui", "#research"}, created.Tags)
	assert.Equal(t, userId, created.UserId)
	assert.Equal(t, created.Id, res.Id)
}

func TestCreateWithoutIdentityFails(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()

	_, err := svc.Create(context.Background(), uuid.Nil, &dto.CreateMemoRequest{
		Title:   "タイトル",
		Content: "本文",
	})

	assert.Equal(t, fiber.StatusUnauthorized, appErrorCode(t, err))
	assert.Empty(t, repo.created)
}

func TestCreateBlankTitleOrContentFails(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateMemoRequest{
		Title:   "   ",
		Content: "本文",
	})

	assert.Equal(t, fiber.StatusBadRequest, appErrorCode(t, err))
	assert.Empty(t, repo.created)
}

func TestListWithoutIdentityFailsInsteadOfEmptyResult(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()

	_, err := svc.List(context.Background(), uuid.Nil, dto.MemoFilter{})

	assert.Equal(t, fiber.StatusUnauthorized, appErrorCode(t, err))
	assert.Equal(t, 0, repo.findAllCalls, "query must not execute without an identity")
}

func TestListEmptyFilterOnlyScopesOwnerAndOrder(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()
	userId := uuid.New()

	_, err := svc.List(context.Background(), userId, dto.MemoFilter{
		Search:   "",
		Category: "",
		Tags:     nil,
	})

	require.NoError(t, err)
	require.Len(t, repo.findAllSpecs, 2)
	assert.Equal(t, specification.OwnedBy{UserID: userId}, repo.findAllSpecs[0])
	assert.Equal(t, specification.OrderBy{Field: "created_at", Desc: true}, repo.findAllSpecs[1])
}

func TestListFullFilterAddsAllPredicates(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()
	userId := uuid.New()

	_, err := svc.List(context.Background(), userId, dto.MemoFilter{
		Search:   "50%",
		Category: "プロダクト",
		Tags:     []string{"#ui"},
	})

	require.NoError(t, err)
	require.Len(t, repo.findAllSpecs, 5)
	assert.Equal(t, specification.OwnedBy{UserID: userId}, repo.findAllSpecs[0])
	assert.Equal(t, specification.SearchTitleOrContent{Term: "50%"}, repo.findAllSpecs[1])
	assert.Equal(t, specification.ByCategory{Category: "プロダクト"}, repo.findAllSpecs[2])
}

func TestShowMissingAndForeignRowsAreIndistinguishable(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()
	owner := uuid.New()
	stranger := uuid.New()

	memo := &entity.Memo{Id: uuid.New(), Title: "t", Content: "c", UserId: owner}
	repo.memos[memo.Id] = memo

	_, missingErr := svc.Show(context.Background(), owner, uuid.New())
	_, foreignErr := svc.Show(context.Background(), stranger, memo.Id)

	assert.Equal(t, fiber.StatusNotFound, appErrorCode(t, missingErr))
	assert.Equal(t, fiber.StatusNotFound, appErrorCode(t, foreignErr))
	assert.Equal(t, missingErr.Error(), foreignErr.Error())
}

func TestUpdateBlankTitleStoresUntitledFallback(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()
	owner := uuid.New()
	memo := &entity.Memo{Id: uuid.New(), Title: "元のタイトル", Content: "元の本文", UserId: owner}
	repo.memos[memo.Id] = memo

	res, err := svc.Update(context.Background(), owner, &dto.UpdateMemoRequest{
		Id:      memo.Id,
		Title:   "   ",
		Content: "  新しい本文  ",
	})

	require.NoError(t, err)
	assert.Equal(t, DefaultUntitledTitle, res.Title)
	assert.Equal(t, "新しい本文", res.Content)
	require.Len(t, repo.updated, 1)
	assert.NotNil(t, repo.updated[0].UpdatedAt)
}

func TestUpdateNeverTouchesCategoryOrTags(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()
	owner := uuid.New()
	category := "プロダクト"
	memo := &entity.Memo{
		Id:       uuid.New(),
		Title:    "元のタイトル",
		Content:  "元の本文",
		Category: &category,
		Tags:     []string{"#ui", "#research"},
		UserId:   owner,
	}
	repo.memos[memo.Id] = memo

	res, err := svc.Update(context.Background(), owner, &dto.UpdateMemoRequest{
		Id:      memo.Id,
		Title:   "新しいタイトル",
		Content: "新しい本文",
	})

	require.NoError(t, err)
	assert.Equal(t, &category, res.Category)
	assert.Equal(t, []string{"#ui", "#research"}, res.Tags)
}

func TestUpdateForeignRowFails(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()
	owner := uuid.New()
	memo := &entity.Memo{Id: uuid.New(), Title: "t", Content: "c", UserId: owner}
	repo.memos[memo.Id] = memo

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateMemoRequest{
		Id:      memo.Id,
		Title:   "乗っ取り",
		Content: "乗っ取り",
	})

	assert.Equal(t, fiber.StatusNotFound, appErrorCode(t, err))
	assert.Empty(t, repo.updated)
}

func TestDeleteScopedToOwner(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()
	owner := uuid.New()
	memo := &entity.Memo{Id: uuid.New(), Title: "t", Content: "c", UserId: owner}
	repo.memos[memo.Id] = memo

	err := svc.Delete(context.Background(), uuid.New(), memo.Id)
	assert.Equal(t, fiber.StatusNotFound, appErrorCode(t, err))
	assert.Contains(t, repo.memos, memo.Id, "foreign identity must not delete the row")

	require.NoError(t, svc.Delete(context.Background(), owner, memo.Id))
	assert.NotContains(t, repo.memos, memo.Id)
}

func TestDeleteStoreFailureSurfacesUnderlyingError(t *testing.T) {
	svc, repo := newMemoServiceWithRepo()
	repo.deleteErr = errors.New("connection reset")

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())

	assert.Equal(t, fiber.StatusInternalServerError, appErrorCode(t, err))
	assert.Contains(t, err.Error(), "connection reset")
}
