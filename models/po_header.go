package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// POHeader is the master record of a purchase order, keyed by PORefNo.
type POHeader struct {
	PORefNo                       string              `json:"po_ref_no"`
	PODate                        time.Time           `json:"po_date"`
	PurchaseType                  *string             `json:"purchase_type"`
	CompanyID                     int64               `json:"company_id"`
	SupplierID                    int64               `json:"supplier_id"`
	POStoreID                     *int64              `json:"po_store_id"`
	Remarks                       *string             `json:"remarks"`
	PaymentTerm                   *string             `json:"payment_term"`
	ModeOfPayment                 *string             `json:"mode_of_payment"`
	CurrencyType                  *string             `json:"currency_type"`
	SuplierProformaNumber         *string             `json:"suplier_proforma_number"`
	ShipmentMode                  *string             `json:"shipment_mode"`
	PriceTerms                    *string             `json:"price_terms"`
	ShipmentRemarks               *string             `json:"shipment_remarks"`
	TotalProductionHdrAmount      decimal.NullDecimal `json:"total_production_hdr_amount"`
	TotalAdditionalCostAmount     decimal.NullDecimal `json:"total_additional_cost_amount"`
	VatHdrAmount                  decimal.NullDecimal `json:"vat_hdr_amount"`
	TotalFinalProductionHdrAmount decimal.NullDecimal `json:"total_final_production_hdr_amount"`
	RespondBy                     *string             `json:"respond_by"`
	RespondDate                   *time.Time          `json:"respond_date"`
	RespondStatus                 *string             `json:"respond_status"`
	FirstShipmentDate             *time.Time          `json:"first_shipment_date"`
	LCApplyTargetDate             *time.Time          `json:"lc_apply_target_date"`
	Response1Person               *string             `json:"response_1_person"`
	Response1Date                 *time.Time          `json:"response_1_date"`
	Response1Status               *string             `json:"response_1_status"`
	Response1Remarks              *string             `json:"response_1_remarks"`
	Response1MacAddress           *string             `json:"response_1_mac_address"`
	Response2Person               *string             `json:"response_2_person"`
	Response2Date                 *time.Time          `json:"response_2_date"`
	Response2Status               *string             `json:"response_2_status"`
	Response2Remarks              *string             `json:"response_2_remarks"`
	Response2MacAddress           *string             `json:"response_2_mac_address"`
	FinalResponsePerson           *string             `json:"final_response_person"`
	FinalResponseDate             *time.Time          `json:"final_response_date"`
	FinalResponseStatus           *string             `json:"final_response_status"`
	FinalResponseRemarks          *string             `json:"final_response_remarks"`
	RequestedDate                 *time.Time          `json:"requested_date"`
	RequestedBy                   *string             `json:"requested_by"`
	RequestedMacAddress           *string             `json:"requested_mac_address"`
	StockCompanyTransferRefNo     *string             `json:"stock_company_transfer_ref_no"`
	LoadingPortID                 *int64              `json:"loading_port_id"`
	DischargePortID               *int64              `json:"discharge_port_id"`
	ShipmentType                  *string             `json:"shipment_type"`
	SupplierCompanyID             *int64              `json:"supplier_company_id"`
	StockStoreID                  *int64              `json:"stock_store_id"`
	ImportsResponse1Person        *string             `json:"imports_response_1_person"`
	ImportsResponse1Date          *time.Time          `json:"imports_response_1_date"`
	ImportsResponse1Status        *string             `json:"imports_response_1_status"`
	ImportsResponse1Remarks       *string             `json:"imports_response_1_remarks"`
	ImportsResponse1MacAddress    *string             `json:"imports_response_1_mac_address"`
	CompanyOnbehalfOf             *int64              `json:"company_onbehalf_of"`
	PurchaseHeadResponsePerson    *string             `json:"purchase_head_response_person"`
	PurchaseHeadResponseDate      *time.Time          `json:"purchase_head_response_date"`
	PurchaseHeadResponseStatus    *string             `json:"purchase_head_response_status"`
	PurchaseHeadResponseRemarks   *string             `json:"purchase_head_response_remarks"`
	PurchaseHeadResponseMac       *string             `json:"purchase_head_response_mac_address"`
	ERPPIRefNo                    *string             `json:"erp_pi_ref_no"`
	PriceForCnfFob                *string             `json:"price_for_cnf_fob"`
	StatusEntry                   *string             `json:"status_entry"`
	CreatedBy                     string              `json:"created_by"`
	CreatedDate                   time.Time           `json:"created_date"`
	CreatedMacAddress             *string             `json:"created_mac_address"`
	ModifiedBy                    *string             `json:"modified_by"`
	ModifiedDate                  *time.Time          `json:"modified_date"`
	ModifiedMacAddress            *string             `json:"modified_mac_address"`
}
