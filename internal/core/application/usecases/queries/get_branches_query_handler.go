package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetBranchesQueryHandler struct {
	db *gorm.DB
}

func NewGetBranchesQueryHandler(db *gorm.DB) GetBranchesQueryHandler {
	return GetBranchesQueryHandler{db: db}
}

func (h GetBranchesQueryHandler) Handle(ctx context.Context, query GetBranchesQuery) ([]BranchView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	branches := make([]BranchView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			COALESCE(address, '') AS address,
			COALESCE(locality, '') AS locality,
			COALESCE(postal_code, '') AS postal_code,
			COALESCE(phone, '') AS phone,
			COALESCE(email, '') AS email,
			active
		FROM branches
		ORDER BY name
	`).Scan(&branches).Error
	if err != nil {
		return nil, err
	}

	return branches, nil
}
