package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetUsersQueryHandler struct {
	db *gorm.DB
}

func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

func (h GetUsersQueryHandler) Handle(ctx context.Context, query GetUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]UserView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, role, branch_id, active
		FROM users
		ORDER BY id
	`).Scan(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}
