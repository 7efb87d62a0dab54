package queries

import (
	"context"

	"gorm.io/gorm"

	"entregas/internal/core/domain/model/order"
)

type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	db := h.db.WithContext(ctx)

	status := query.Status()
	switch {
	case status == nil:
		db = db.Raw(`SELECT` + orderColumns + ` FROM orders ORDER BY invoice_date DESC`)
	case *status == order.Pending:
		db = db.Raw(`SELECT`+orderColumns+` FROM orders WHERE status = ? ORDER BY invoice_date ASC`, status.String())
	default:
		db = db.Raw(`SELECT`+orderColumns+` FROM orders WHERE status = ? ORDER BY invoice_date DESC`, status.String())
	}

	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toOrderViews(rows)
}
