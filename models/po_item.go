package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// POItem is a product line of a purchase order (po_details1).
type POItem struct {
	Sno                  int64               `json:"sno"`
	PORefNo              string              `json:"po_ref_no"`
	RequestStoreID       *int64              `json:"request_store_id"`
	PORequestRefNo       *string             `json:"po_request_ref_no"`
	ProformaInvoiceRefNo *string             `json:"proforma_invoice_ref_no"`
	SectionID            *int64              `json:"section_id"`
	MachineID            *int64              `json:"machine_id"`
	MainCategoryID       *int64              `json:"main_category_id"`
	SubCategoryID        *int64              `json:"sub_category_id"`
	ProductID            *int64              `json:"product_id"`
	PackingType          *string             `json:"packing_type"`
	NoPcsPerPacking      decimal.NullDecimal `json:"no_pcs_per_packing"`
	TotalPcs             decimal.NullDecimal `json:"total_pcs"`
	TotalPacking         decimal.NullDecimal `json:"total_packing"`
	RatePerPcs           decimal.NullDecimal `json:"rate_per_pcs"`
	ProductAmount        decimal.NullDecimal `json:"product_amount"`
	DiscountPercentage   decimal.NullDecimal `json:"discount_percentage"`
	DiscountAmount       decimal.NullDecimal `json:"discount_amount"`
	TotalProductAmount   decimal.NullDecimal `json:"total_product_amount"`
	VatPercentage        decimal.NullDecimal `json:"vat_percentage"`
	VatAmount            decimal.NullDecimal `json:"vat_amount"`
	FinalProductAmount   decimal.NullDecimal `json:"final_product_amount"`
	Remarks              *string             `json:"remarks"`
	StatusEntry          *string             `json:"status_entry"`
	AlternateProductName *string             `json:"alternate_product_name"`
	LCNeededStatus       *string             `json:"lc_needed_status"`
	LCApplyStatus        *string             `json:"lc_apply_status"`
	LCAppliedDate        *time.Time          `json:"lc_applied_date"`
	LCNo                 *string             `json:"lc_no"`
	SupDocFile           *string             `json:"sup_doc_file"`
	TruckID              *int64              `json:"truck_id"`
	TrailerID            *int64              `json:"trailer_id"`
	CreatedBy            string              `json:"created_by"`
	CreatedDate          time.Time           `json:"created_date"`
	CreatedMacAddress    *string             `json:"created_mac_address"`
	ModifiedBy           *string             `json:"modified_by"`
	ModifiedDate         *time.Time          `json:"modified_date"`
	ModifiedMacAddress   *string             `json:"modified_mac_address"`
}

// ItemSummary aggregates the lines matched by a po_ref_no scoped list.
type ItemSummary struct {
	TotalItems    int64           `json:"total_items"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageRate   decimal.Decimal `json:"average_rate"`
}
