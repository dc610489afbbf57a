package implementation

import (
	"context"
	"errors"

	"github.com/tagnote-app/tagnote-be/internal/entity"
	"github.com/tagnote-app/tagnote-be/internal/mapper"
	"github.com/tagnote-app/tagnote-be/internal/model"
	"github.com/tagnote-app/tagnote-be/internal/repository/contract"
	"github.com/tagnote-app/tagnote-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemoRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MemoMapper
}

func NewMemoRepository(db *gorm.DB) contract.MemoRepository {
	return &MemoRepositoryImpl{
		db:     db,
		mapper: mapper.NewMemoMapper(),
	}
}

func (r *MemoRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MemoRepositoryImpl) Create(ctx context.Context, memo *entity.Memo) error {
	m := r.mapper.ToModel(memo)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*memo = *r.mapper.ToEntity(m)
	return nil
}

func (r *MemoRepositoryImpl) Update(ctx context.Context, memo *entity.Memo) error {
	m := r.mapper.ToModel(memo)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*memo = *r.mapper.ToEntity(m)
	return nil
}

func (r *MemoRepositoryImpl) DeleteOwned(ctx context.Context, id uuid.UUID, userId uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("user_id = ?", userId).
		Delete(&model.Memo{})
	return res.RowsAffected, res.Error
}

func (r *MemoRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Memo, error) {
	var m model.Memo
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MemoRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Memo, error) {
	var models []*model.Memo
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MemoRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Memo{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
