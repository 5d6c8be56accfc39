package repository

import (
	"context"

	"poadmin/models"
)

type AttachmentRepository interface {
	Store[models.POAttachment, int64]
	ByRef(ctx context.Context, poRefNo string) ([]*models.POAttachment, error)
}
