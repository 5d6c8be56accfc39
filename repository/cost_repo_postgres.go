package repository

import (
	"context"
	"database/sql"

	"poadmin/models"
	"poadmin/query"
)

const costTable = "tbl_purchase_order_additional_cost_details"

var CostResource = &query.Resource{
	Name:  "PO Additional Cost",
	Table: costTable,
	Key:   "sno",
	Filters: []query.Filter{
		{Param: "po_ref_no", Column: "po_ref_no", Kind: query.KindString, MaxLen: 50},
		{Param: "additional_cost_type", Column: "additional_cost_type", Kind: query.KindString, MaxLen: 100, Match: query.Contains},
		{Param: "status_master", Column: "status_master", Kind: query.KindString, MaxLen: 50},
		{Param: "min_amount", Column: "amount", Kind: query.KindNumber, Match: query.AtLeast},
		{Param: "max_amount", Column: "amount", Kind: query.KindNumber, Match: query.AtMost},
		{Param: "start_date", Column: "created_date", Kind: query.KindDate, Match: query.AtLeast},
		{Param: "end_date", Column: "created_date", Kind: query.KindDate, Match: query.AtMost},
	},
	Sortable:     []string{"sno", "po_ref_no", "additional_cost_type", "amount", "created_date", "status_master"},
	DefaultSort:  "created_date",
	DefaultLimit: 50,
	MaxLimit:     200,
	Scope:        "po_ref_no",
	CreateFields: []query.Field{
		query.String("po_ref_no", 50).Require(),
		query.String("additional_cost_type", 100).Require(),
		query.Number("amount").Require(),
		query.String("remarks", 1000),
		query.String("status_master", 50).WithDefault("ACTIVE"),
		query.String("created_by", 50).Require(),
		query.String("created_mac_address", 50),
	},
	CreateConst: []query.Assign{{Column: "created_date", Expr: "NOW()"}},
	UpdateFields: []query.Field{
		query.String("additional_cost_type", 100),
		query.Number("amount"),
		query.String("remarks", 1000),
		query.String("status_master", 50),
	},
}

func costColumns(c *models.POCost) []column {
	return []column{
		{"sno", &c.Sno},
		{"po_ref_no", &c.PORefNo},
		{"additional_cost_type", &c.AdditionalCostType},
		{"amount", &c.Amount},
		{"remarks", &c.Remarks},
		{"status_master", &c.StatusMaster},
		{"created_by", &c.CreatedBy},
		{"created_date", &c.CreatedDate},
		{"created_mac_address", &c.CreatedMacAddress},
		{"modified_by", &c.ModifiedBy},
		{"modified_date", &c.ModifiedDate},
		{"modified_mac_address", &c.ModifiedMacAddress},
	}
}

var costSummarySQL = []string{
	"COUNT(*)",
	"COALESCE(SUM(amount), 0)",
	"MIN(amount)",
	"MAX(amount)",
	"AVG(amount)",
}

type PostgresCostRepo struct {
	*Table[models.POCost, int64]
}

func NewPostgresCostRepo(db *sql.DB) *PostgresCostRepo {
	r := &PostgresCostRepo{Table: newTable[models.POCost, int64](db, CostResource, costColumns)}
	r.summarize = func(ctx context.Context, w query.Where) (any, error) {
		return r.summary(ctx, w)
	}
	return r
}

func (r *PostgresCostRepo) summary(ctx context.Context, w query.Where) (*models.CostSummary, error) {
	q, args := CostResource.AggregateSQL(costSummarySQL, w)
	var s models.CostSummary
	err := r.db.QueryRowContext(ctx, q, args...).
		Scan(&s.TotalCosts, &s.TotalAmount, &s.MinAmount, &s.MaxAmount, &s.AverageAmount)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresCostRepo) Create(ctx context.Context, body query.Body) (*models.POCost, error) {
	return r.create(ctx, body, requireHeader(r.db, body))
}

// ByRef returns the costs of a purchase order with their totals. It fails
// with ErrNotFound only when the header itself is missing.
func (r *PostgresCostRepo) ByRef(ctx context.Context, poRefNo string) ([]*models.POCost, *models.CostSummary, error) {
	found, err := exists(ctx, r.db, HeaderResource.ExistsSQL(), poRefNo)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, ErrNotFound
	}
	costs, err := r.byRef(ctx, poRefNo, "sno", 0)
	if err != nil {
		return nil, nil, err
	}
	s, err := r.summary(ctx, query.Equals("po_ref_no", poRefNo))
	if err != nil {
		return nil, nil, err
	}
	return costs, s, nil
}
