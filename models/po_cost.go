package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// POCost is an additional cost line of a purchase order (po_details2).
type POCost struct {
	Sno                int64           `json:"sno"`
	PORefNo            string          `json:"po_ref_no"`
	AdditionalCostType string          `json:"additional_cost_type"`
	Amount             decimal.Decimal `json:"amount"`
	Remarks            *string         `json:"remarks"`
	StatusMaster       *string         `json:"status_master"`
	CreatedBy          string          `json:"created_by"`
	CreatedDate        time.Time       `json:"created_date"`
	CreatedMacAddress  *string         `json:"created_mac_address"`
	ModifiedBy         *string         `json:"modified_by"`
	ModifiedDate       *time.Time      `json:"modified_date"`
	ModifiedMacAddress *string         `json:"modified_mac_address"`
}

type CostSummary struct {
	TotalCosts    int64               `json:"total_costs"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	MinAmount     decimal.NullDecimal `json:"min_amount"`
	MaxAmount     decimal.NullDecimal `json:"max_amount"`
	AverageAmount decimal.NullDecimal `json:"average_amount"`
}
