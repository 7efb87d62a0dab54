package branchrepo

import (
	"context"
	"errors"

	"entregas/internal/core/domain/model/branch"
	"entregas/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormBranchRepository struct {
	db *gorm.DB
}

func NewGormBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{db: db}
}

func (r *GormBranchRepository) Add(ctx context.Context, b *branch.Branch) (*branch.Branch, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(b)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormBranchRepository) Get(ctx context.Context, id int64) (*branch.Branch, error) {
	var dto BranchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branch", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns every branch, active or not, by name.
func (r *GormBranchRepository) List(ctx context.Context) ([]*branch.Branch, error) {
	var dtos []BranchDTO
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	branches := make([]*branch.Branch, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, nil
}
