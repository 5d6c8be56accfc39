package repository

import (
	"context"
	"database/sql"

	"poadmin/models"
	"poadmin/query"
)

const itemTable = "tbl_purchase_order_dtl"

var itemNumbers = []string{
	"no_pcs_per_packing", "total_pcs", "total_packing", "rate_per_pcs", "product_amount",
	"discount_percentage", "discount_amount", "total_product_amount", "vat_percentage",
	"vat_amount", "final_product_amount",
}

var itemIDs = []string{
	"request_store_id", "section_id", "machine_id", "main_category_id", "sub_category_id", "product_id",
}

// itemFields are the writable columns shared by create and update.
func itemFields() []query.Field {
	fields := []query.Field{
		query.String("po_request_ref_no", 50),
		query.String("proforma_invoice_ref_no", 50),
		query.String("packing_type", 50),
		query.String("remarks", 2000),
		query.String("alternate_product_name", 500),
		query.String("lc_needed_status", 50),
		query.String("lc_apply_status", 50),
		query.Date("lc_applied_date"),
		query.String("lc_no", 50),
		query.Text("sup_doc_file"),
		query.ID("truck_id"),
		query.ID("trailer_id"),
	}
	for _, n := range itemIDs {
		fields = append(fields, query.ID(n))
	}
	for _, n := range itemNumbers {
		fields = append(fields, query.Number(n))
	}
	return fields
}

var ItemResource = &query.Resource{
	Name:  "PO Item",
	Table: itemTable,
	Key:   "sno",
	Filters: []query.Filter{
		{Param: "po_ref_no", Column: "po_ref_no", Kind: query.KindString, MaxLen: 50},
		{Param: "product_id", Column: "product_id", Kind: query.KindID},
		{Param: "status_entry", Column: "status_entry", Kind: query.KindString, MaxLen: 20},
		{Param: "created_by", Column: "created_by", Kind: query.KindString, MaxLen: 50, Match: query.Contains},
		{Param: "start_date", Column: "created_date", Kind: query.KindDate, Match: query.AtLeast},
		{Param: "end_date", Column: "created_date", Kind: query.KindDate, Match: query.AtMost},
	},
	Sortable:     []string{"sno", "po_ref_no", "product_id", "total_pcs", "rate_per_pcs", "final_product_amount", "created_date", "status_entry"},
	DefaultSort:  "created_date",
	DefaultLimit: 50,
	MaxLimit:     500,
	Scope:        "po_ref_no",
	CreateFields: append(append([]query.Field{query.String("po_ref_no", 50).Require()}, itemFields()...),
		query.String("created_by", 50).Require(),
		query.String("created_mac_address", 50),
	),
	CreateConst: []query.Assign{
		{Column: "status_entry", Expr: "'CREATED'"},
		{Column: "created_date", Expr: "NOW()"},
	},
	UpdateFields: append(itemFields(), query.String("status_entry", 20)),
}

func itemColumns(i *models.POItem) []column {
	return []column{
		{"sno", &i.Sno},
		{"po_ref_no", &i.PORefNo},
		{"request_store_id", &i.RequestStoreID},
		{"po_request_ref_no", &i.PORequestRefNo},
		{"proforma_invoice_ref_no", &i.ProformaInvoiceRefNo},
		{"section_id", &i.SectionID},
		{"machine_id", &i.MachineID},
		{"main_category_id", &i.MainCategoryID},
		{"sub_category_id", &i.SubCategoryID},
		{"product_id", &i.ProductID},
		{"packing_type", &i.PackingType},
		{"no_pcs_per_packing", &i.NoPcsPerPacking},
		{"total_pcs", &i.TotalPcs},
		{"total_packing", &i.TotalPacking},
		{"rate_per_pcs", &i.RatePerPcs},
		{"product_amount", &i.ProductAmount},
		{"discount_percentage", &i.DiscountPercentage},
		{"discount_amount", &i.DiscountAmount},
		{"total_product_amount", &i.TotalProductAmount},
		{"vat_percentage", &i.VatPercentage},
		{"vat_amount", &i.VatAmount},
		{"final_product_amount", &i.FinalProductAmount},
		{"remarks", &i.Remarks},
		{"status_entry", &i.StatusEntry},
		{"alternate_product_name", &i.AlternateProductName},
		{"lc_needed_status", &i.LCNeededStatus},
		{"lc_apply_status", &i.LCApplyStatus},
		{"lc_applied_date", &i.LCAppliedDate},
		{"lc_no", &i.LCNo},
		{"sup_doc_file", &i.SupDocFile},
		{"truck_id", &i.TruckID},
		{"trailer_id", &i.TrailerID},
		{"created_by", &i.CreatedBy},
		{"created_date", &i.CreatedDate},
		{"created_mac_address", &i.CreatedMacAddress},
		{"modified_by", &i.ModifiedBy},
		{"modified_date", &i.ModifiedDate},
		{"modified_mac_address", &i.ModifiedMacAddress},
	}
}

var itemSummarySQL = []string{
	"COUNT(*)",
	"COALESCE(SUM(total_pcs), 0)",
	"COALESCE(SUM(final_product_amount), 0)",
	"COALESCE(AVG(rate_per_pcs), 0)",
}

type PostgresItemRepo struct {
	*Table[models.POItem, int64]
}

func NewPostgresItemRepo(db *sql.DB) *PostgresItemRepo {
	t := newTable[models.POItem, int64](db, ItemResource, itemColumns)
	t.summarize = func(ctx context.Context, w query.Where) (any, error) {
		q, args := ItemResource.AggregateSQL(itemSummarySQL, w)
		var s models.ItemSummary
		err := db.QueryRowContext(ctx, q, args...).Scan(&s.TotalItems, &s.TotalQuantity, &s.TotalAmount, &s.AverageRate)
		return &s, err
	}
	return &PostgresItemRepo{Table: t}
}

func (r *PostgresItemRepo) Create(ctx context.Context, body query.Body) (*models.POItem, error) {
	return r.create(ctx, body, requireHeader(r.db, body))
}

// ByRef returns the lines of a purchase order, ErrNotFound when there are none.
func (r *PostgresItemRepo) ByRef(ctx context.Context, poRefNo string) ([]*models.POItem, error) {
	items, err := r.byRef(ctx, poRefNo, "sno", 0)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}
