package repository

import (
	"context"

	"poadmin/models"
)

type ItemRepository interface {
	Store[models.POItem, int64]
	ByRef(ctx context.Context, poRefNo string) ([]*models.POItem, error)
}
