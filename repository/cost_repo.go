package repository

import (
	"context"

	"poadmin/models"
)

type CostRepository interface {
	Store[models.POCost, int64]
	ByRef(ctx context.Context, poRefNo string) ([]*models.POCost, *models.CostSummary, error)
}
