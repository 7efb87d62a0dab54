package queries

import (
	"context"

	"gorm.io/gorm"

	"entregas/internal/core/domain/model/order"
)

type GetBranchOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetBranchOrdersQueryHandler(db *gorm.DB) GetBranchOrdersQueryHandler {
	return GetBranchOrdersQueryHandler{db: db}
}

// Handle returns Assigned and InTransit orders of the branch, first assigned first.
func (h GetBranchOrdersQueryHandler) Handle(ctx context.Context, query GetBranchOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`SELECT`+orderColumns+`
		FROM orders
		WHERE branch_id = ? AND status IN (?, ?)
		ORDER BY assigned_at ASC`,
		query.BranchID(), order.Assigned.String(), order.InTransit.String(),
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toOrderViews(rows)
}
