package mapper

import (
	"github.com/tagnote-app/tagnote-be/internal/entity"
	"github.com/tagnote-app/tagnote-be/internal/model"
)

type MemoMapper struct{}

func NewMemoMapper() *MemoMapper {
	return &MemoMapper{}
}

func (m *MemoMapper) ToEntity(mm *model.Memo) *entity.Memo {
	if mm == nil {
		return nil
	}

	return &entity.Memo{
		Id:        mm.Id,
		Title:     mm.Title,
		Content:   mm.Content,
		Category:  mm.Category,
		Tags:      []string(mm.Tags),
		UserId:    mm.UserId,
		CreatedAt: mm.CreatedAt,
		UpdatedAt: mm.UpdatedAt,
	}
}

func (m *MemoMapper) ToModel(e *entity.Memo) *model.Memo {
	if e == nil {
		return nil
	}

	return &model.Memo{
		Id:        e.Id,
		Title:     e.Title,
		Content:   e.Content,
		Category:  e.Category,
		Tags:      e.Tags,
		UserId:    e.UserId,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *MemoMapper) ToEntities(memos []*model.Memo) []*entity.Memo {
	entities := make([]*entity.Memo, len(memos))
	for i, mm := range memos {
		entities[i] = m.ToEntity(mm)
	}
	return entities
}
