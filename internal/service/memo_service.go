package service

import (
	"context"
	"strings"
	"time"

	"github.com/tagnote-app/tagnote-be/internal/dto"
	"github.com/tagnote-app/tagnote-be/internal/entity"
	"github.com/tagnote-app/tagnote-be/internal/pkg/logger"
	"github.com/tagnote-app/tagnote-be/internal/pkg/serverutils"
	"github.com/tagnote-app/tagnote-be/internal/repository/specification"
	"github.com/tagnote-app/tagnote-be/internal/repository/unitofwork"
	"github.com/tagnote-app/tagnote-be/pkg/events"
	"github.com/tagnote-app/tagnote-be/pkg/tags"

	"github.com/google/uuid"
)

// DefaultUntitledTitle replaces an empty title at save time.
const DefaultUntitledTitle = "無題のメモ"

const (
	msgAuthRequired   = "ログインが必要です。先にログインしてください。"
	msgFetchFailed    = "メモの取得に失敗しました。アクセス権限をご確認ください。"
	msgCreateFailed   = "メモの作成に失敗しました。もう一度お試しください。"
	msgUpdateFailed   = "メモの更新に失敗しました。ネットワークと権限を確認してください。"
	msgDeleteFailed   = "メモの削除に失敗しました。ネットワークと権限を確認してください。"
	msgTitleBodyBlank = "タイトルと本文は必須です。"
)

type IMemoService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMemoRequest) (*dto.CreateMemoResponse, error)
	List(ctx context.Context, userId uuid.UUID, filter dto.MemoFilter) ([]*dto.MemoResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.MemoResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateMemoRequest) (*dto.MemoResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type memoService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewMemoService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IMemoService {
	return &memoService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *memoService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMemoRequest) (*dto.CreateMemoResponse, error) {
	if userId == uuid.Nil {
		return nil, serverutils.NewAuthRequired(msgAuthRequired)
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, serverutils.NewValidationFailed(msgTitleBodyBlank)
	}

	var category *string
	if c := strings.TrimSpace(req.Category); c != "" {
		category = &c
	}

	memo := entity.Memo{
		Id:        uuid.New(),
		Title:     title,
		Content:   content,
		Category:  category,
		Tags:      tags.Normalize(req.TagsInput),
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MemoRepository().Create(ctx, &memo); err != nil {
		return nil, serverutils.NewStoreFailure(msgCreateFailed, err)
	}

	s.publishActivity(ctx, "MEMO_CREATED", &memo)

	return &dto.CreateMemoResponse{
		Id: memo.Id,
	}, nil
}

func (s *memoService) List(ctx context.Context, userId uuid.UUID, filter dto.MemoFilter) ([]*dto.MemoResponse, error) {
	// "No results" must never stand in for "not authenticated".
	if userId == uuid.Nil {
		return nil, serverutils.NewAuthRequired(msgAuthRequired)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	memos, err := uow.MemoRepository().FindAll(ctx, specification.BuildMemoQuery(userId, filter)...)
	if err != nil {
		return nil, serverutils.NewStoreFailure(msgFetchFailed, err)
	}

	res := make([]*dto.MemoResponse, len(memos))
	for i, memo := range memos {
		res[i] = toMemoResponse(memo)
	}
	return res, nil
}

func (s *memoService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.MemoResponse, error) {
	if userId == uuid.Nil {
		return nil, serverutils.NewAuthRequired(msgAuthRequired)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	memo, err := uow.MemoRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, serverutils.NewStoreFailure(msgFetchFailed, err)
	}
	if memo == nil {
		// Same message for "missing" and "not yours".
		return nil, serverutils.NewNotFound(msgFetchFailed)
	}

	return toMemoResponse(memo), nil
}

func (s *memoService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateMemoRequest) (*dto.MemoResponse, error) {
	if userId == uuid.Nil {
		return nil, serverutils.NewAuthRequired(msgAuthRequired)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	memo, err := uow.MemoRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, serverutils.NewStoreFailure(msgUpdateFailed, err)
	}
	if memo == nil {
		return nil, serverutils.NewNotFound(msgFetchFailed)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = DefaultUntitledTitle
	}

	now := time.Now()
	memo.Title = title
	memo.Content = strings.TrimSpace(req.Content)
	memo.UpdatedAt = &now
	// Category and tags are fixed at creation; the update payload never
	// carries them.

	if err := uow.MemoRepository().Update(ctx, memo); err != nil {
		return nil, serverutils.NewStoreFailure(msgUpdateFailed, err)
	}

	s.publishActivity(ctx, "MEMO_UPDATED", memo)

	return toMemoResponse(memo), nil
}

func (s *memoService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	if userId == uuid.Nil {
		return serverutils.NewAuthRequired(msgAuthRequired)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.MemoRepository().DeleteOwned(ctx, id, userId)
	if err != nil {
		return serverutils.NewStoreFailure(msgDeleteFailed, err)
	}
	if rows == 0 {
		return serverutils.NewNotFound(msgFetchFailed)
	}

	s.publishActivity(ctx, "MEMO_DELETED", &entity.Memo{Id: id, UserId: userId})

	return nil
}

// publishActivity is fire-and-forget: the mutation already committed, so a
// broken activity trail only gets a warning.
func (s *memoService) publishActivity(ctx context.Context, eventType string, memo *entity.Memo) {
	if s.publisherService == nil {
		return
	}

	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"memo_id": memo.Id,
			"user_id": memo.UserId,
		},
		OccurredAt: time.Now(),
	}
	if err := s.publisherService.Publish(ctx, evt); err != nil {
		s.logger.Warn("memo", "failed to publish activity event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func toMemoResponse(memo *entity.Memo) *dto.MemoResponse {
	return &dto.MemoResponse{
		Id:        memo.Id,
		Title:     memo.Title,
		Content:   memo.Content,
		Category:  memo.Category,
		Tags:      memo.Tags,
		CreatedAt: memo.CreatedAt,
		UpdatedAt: memo.UpdatedAt,
	}
}
