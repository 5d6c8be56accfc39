package repository

import (
	"context"
	"errors"
	"time"

	"poadmin/models"
)

// PDFRepository gathers everything a printable purchase order needs.
type PDFRepository struct {
	Headers HeaderRepository
	Items   ItemRepository
	Costs   CostRepository
}

func NewPDFRepository(headers HeaderRepository, items ItemRepository, costs CostRepository) *PDFRepository {
	return &PDFRepository{Headers: headers, Items: items, Costs: costs}
}

// Document loads the header with its lines and costs. A header without
// lines is still printable.
func (r *PDFRepository) Document(ctx context.Context, poRefNo string) (*models.PODocument, error) {
	header, err := r.Headers.Get(ctx, poRefNo)
	if err != nil {
		return nil, err
	}
	items, err := r.Items.ByRef(ctx, poRefNo)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	costs, _, err := r.Costs.ByRef(ctx, poRefNo)
	if err != nil {
		return nil, err
	}
	return &models.PODocument{
		Header:      header,
		Items:       items,
		Costs:       costs,
		GeneratedAt: time.Now().Format("02-Jan-2006 15:04"),
	}, nil
}
