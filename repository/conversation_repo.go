package repository

import (
	"context"

	"poadmin/models"
)

type ConversationRepository interface {
	Store[models.POConversation, int64]
	ByRef(ctx context.Context, poRefNo string) ([]*models.POConversation, *models.ConversationThread, error)
	Latest(ctx context.Context, poRefNo string) (*models.POConversation, error)
}
