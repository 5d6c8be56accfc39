package repository

import (
	"context"

	"poadmin/models"
)

type HeaderRepository interface {
	Store[models.POHeader, string]
	Exists(ctx context.Context, poRefNo string) (bool, error)
}
