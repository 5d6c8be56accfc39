package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"poadmin/models"
	"poadmin/query"
)

const headerTable = "tbl_purchase_order_hdr"

// childTables are checked in this order before a header may be deleted.
var childTables = []string{
	itemTable,
	costTable,
	conversationTable,
	attachmentTable,
}

var HeaderResource = &query.Resource{
	Name:  "PO Header",
	Table: headerTable,
	Key:   "po_ref_no",
	Filters: []query.Filter{
		{Param: "status", Column: "status_entry", Kind: query.KindString, MaxLen: 20},
		{Param: "supplier_id", Column: "supplier_id", Kind: query.KindID},
		{Param: "company_id", Column: "company_id", Kind: query.KindID},
		{Param: "purchase_type", Column: "purchase_type", Kind: query.KindString, MaxLen: 20},
		{Param: "po_ref_no", Column: "po_ref_no", Kind: query.KindString, MaxLen: 50, Match: query.Contains},
		{Param: "start_date", Column: "po_date", Kind: query.KindDate, Match: query.AtLeast},
		{Param: "end_date", Column: "po_date", Kind: query.KindDate, Match: query.AtMost},
	},
	Sortable:     []string{"po_ref_no", "po_date", "created_date", "company_id", "supplier_id", "status_entry", "purchase_type"},
	DefaultSort:  "po_date",
	DefaultLimit: 50,
	MaxLimit:     1000,
	CreateFields: []query.Field{
		query.String("po_ref_no", 50).Require(),
		query.Date("po_date").Require(),
		query.String("purchase_type", 20),
		query.ID("company_id").Require(),
		query.ID("supplier_id").Require(),
		query.ID("po_store_id"),
		query.String("remarks", 2000),
		query.String("created_by", 50).Require(),
		query.String("created_mac_address", 50),
	},
	CreateConst: []query.Assign{
		{Column: "status_entry", Expr: "'CREATED'"},
		{Column: "created_date", Expr: "NOW()"},
	},
	UpdateFields: []query.Field{
		query.Date("po_date"),
		query.String("purchase_type", 20),
		query.ID("company_id"),
		query.ID("supplier_id"),
		query.ID("po_store_id"),
		query.String("remarks", 2000),
		query.String("payment_term", 3000),
		query.String("mode_of_payment", 25),
		query.String("currency_type", 25),
		query.String("suplier_proforma_number", 100),
		query.String("shipment_mode", 100),
		query.String("price_terms", 150),
		query.String("shipment_remarks", 2500),
		query.Number("total_production_hdr_amount"),
		query.Number("total_additional_cost_amount"),
		query.Number("vat_hdr_amount"),
		query.Number("total_final_production_hdr_amount"),
		query.String("respond_by", 50),
		query.Date("respond_date"),
		query.String("respond_status", 50),
		query.Date("first_shipment_date"),
		query.Date("lc_apply_target_date"),
		query.String("response_1_person", 50),
		query.Date("response_1_date"),
		query.String("response_1_status", 50),
		query.String("response_1_remarks", 5000),
		query.String("response_1_mac_address", 50),
		query.String("response_2_person", 50),
		query.Date("response_2_date"),
		query.String("response_2_status", 50),
		query.String("response_2_remarks", 5000),
		query.String("response_2_mac_address", 50),
		query.String("final_response_person", 50),
		query.Date("final_response_date"),
		query.String("final_response_status", 50),
		query.String("final_response_remarks", 5000),
		query.Date("requested_date"),
		query.String("requested_by", 50),
		query.String("requested_mac_address", 50),
		query.String("stock_company_transfer_ref_no", 50),
		query.ID("loading_port_id"),
		query.ID("discharge_port_id"),
		query.String("shipment_type", 50),
		query.ID("supplier_company_id"),
		query.ID("stock_store_id"),
		query.String("imports_response_1_person", 50),
		query.Date("imports_response_1_date"),
		query.String("imports_response_1_status", 50),
		query.String("imports_response_1_remarks", 500),
		query.String("imports_response_1_mac_address", 50),
		query.ID("company_onbehalf_of"),
		query.String("purchase_head_response_person", 50),
		query.Date("purchase_head_response_date"),
		query.String("purchase_head_response_status", 50),
		query.String("purchase_head_response_remarks", 500),
		query.String("purchase_head_response_mac_address", 50),
		query.String("erp_pi_ref_no", 50),
		query.String("price_for_cnf_fob", 20),
		query.String("status_entry", 20),
	},
}

func headerColumns(h *models.POHeader) []column {
	return []column{
		{"po_ref_no", &h.PORefNo},
		{"po_date", &h.PODate},
		{"purchase_type", &h.PurchaseType},
		{"company_id", &h.CompanyID},
		{"supplier_id", &h.SupplierID},
		{"po_store_id", &h.POStoreID},
		{"remarks", &h.Remarks},
		{"payment_term", &h.PaymentTerm},
		{"mode_of_payment", &h.ModeOfPayment},
		{"currency_type", &h.CurrencyType},
		{"suplier_proforma_number", &h.SuplierProformaNumber},
		{"shipment_mode", &h.ShipmentMode},
		{"price_terms", &h.PriceTerms},
		{"shipment_remarks", &h.ShipmentRemarks},
		{"total_production_hdr_amount", &h.TotalProductionHdrAmount},
		{"total_additional_cost_amount", &h.TotalAdditionalCostAmount},
		{"vat_hdr_amount", &h.VatHdrAmount},
		{"total_final_production_hdr_amount", &h.TotalFinalProductionHdrAmount},
		{"respond_by", &h.RespondBy},
		{"respond_date", &h.RespondDate},
		{"respond_status", &h.RespondStatus},
		{"first_shipment_date", &h.FirstShipmentDate},
		{"lc_apply_target_date", &h.LCApplyTargetDate},
		{"response_1_person", &h.Response1Person},
		{"response_1_date", &h.Response1Date},
		{"response_1_status", &h.Response1Status},
		{"response_1_remarks", &h.Response1Remarks},
		{"response_1_mac_address", &h.Response1MacAddress},
		{"response_2_person", &h.Response2Person},
		{"response_2_date", &h.Response2Date},
		{"response_2_status", &h.Response2Status},
		{"response_2_remarks", &h.Response2Remarks},
		{"response_2_mac_address", &h.Response2MacAddress},
		{"final_response_person", &h.FinalResponsePerson},
		{"final_response_date", &h.FinalResponseDate},
		{"final_response_status", &h.FinalResponseStatus},
		{"final_response_remarks", &h.FinalResponseRemarks},
		{"requested_date", &h.RequestedDate},
		{"requested_by", &h.RequestedBy},
		{"requested_mac_address", &h.RequestedMacAddress},
		{"stock_company_transfer_ref_no", &h.StockCompanyTransferRefNo},
		{"loading_port_id", &h.LoadingPortID},
		{"discharge_port_id", &h.DischargePortID},
		{"shipment_type", &h.ShipmentType},
		{"supplier_company_id", &h.SupplierCompanyID},
		{"stock_store_id", &h.StockStoreID},
		{"imports_response_1_person", &h.ImportsResponse1Person},
		{"imports_response_1_date", &h.ImportsResponse1Date},
		{"imports_response_1_status", &h.ImportsResponse1Status},
		{"imports_response_1_remarks", &h.ImportsResponse1Remarks},
		{"imports_response_1_mac_address", &h.ImportsResponse1MacAddress},
		{"company_onbehalf_of", &h.CompanyOnbehalfOf},
		{"purchase_head_response_person", &h.PurchaseHeadResponsePerson},
		{"purchase_head_response_date", &h.PurchaseHeadResponseDate},
		{"purchase_head_response_status", &h.PurchaseHeadResponseStatus},
		{"purchase_head_response_remarks", &h.PurchaseHeadResponseRemarks},
		{"purchase_head_response_mac_address", &h.PurchaseHeadResponseMac},
		{"erp_pi_ref_no", &h.ERPPIRefNo},
		{"price_for_cnf_fob", &h.PriceForCnfFob},
		{"status_entry", &h.StatusEntry},
		{"created_by", &h.CreatedBy},
		{"created_date", &h.CreatedDate},
		{"created_mac_address", &h.CreatedMacAddress},
		{"modified_by", &h.ModifiedBy},
		{"modified_date", &h.ModifiedDate},
		{"modified_mac_address", &h.ModifiedMacAddress},
	}
}

type PostgresHeaderRepo struct {
	*Table[models.POHeader, string]
}

func NewPostgresHeaderRepo(db *sql.DB) *PostgresHeaderRepo {
	return &PostgresHeaderRepo{Table: newTable[models.POHeader, string](db, HeaderResource, headerColumns)}
}

func (r *PostgresHeaderRepo) Exists(ctx context.Context, poRefNo string) (bool, error) {
	return exists(ctx, r.db, HeaderResource.ExistsSQL(), poRefNo)
}

// Delete refuses while any detail table still references the header.
func (r *PostgresHeaderRepo) Delete(ctx context.Context, poRefNo string) (*models.POHeader, error) {
	for _, child := range childTables {
		q := fmt.Sprintf("SELECT 1 FROM %s WHERE po_ref_no = $1 LIMIT 1", child)
		found, err := exists(ctx, r.db, q, poRefNo)
		if err != nil {
			return nil, err
		}
		if found {
			return nil, &ChildRecordsError{Table: child}
		}
	}
	h, err := r.Table.Delete(ctx, poRefNo)
	if errors.Is(err, ErrReferenceMissing) {
		return nil, &ChildRecordsError{Table: "a detail table"}
	}
	return h, err
}

func exists(ctx context.Context, db *sql.DB, q string, args ...any) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, q, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// requireHeader fails a detail create whose po_ref_no has no header.
func requireHeader(db *sql.DB, body query.Body) guard {
	return func(ctx context.Context) error {
		ref := body.Text("po_ref_no")
		found, err := exists(ctx, db, HeaderResource.ExistsSQL(), ref)
		if err != nil {
			return err
		}
		if !found {
			return &query.ValidationError{
				Field:   "po_ref_no",
				Message: fmt.Sprintf("Purchase Order with reference %s does not exist. Create header first.", ref),
			}
		}
		return nil
	}
}
