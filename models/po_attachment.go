package models

import "time"

// POAttachment is a file stored against a purchase order (po_details4).
// ContentData holds the base64 encoded file and is only loaded for single
// record reads.
type POAttachment struct {
	Sno                int64      `json:"sno"`
	PORefNo            string     `json:"po_ref_no"`
	DescriptionDetails *string    `json:"description_details"`
	FileName           string     `json:"file_name"`
	FileType           *string    `json:"file_type"`
	ContentType        *string    `json:"content_type"`
	ContentData        string     `json:"content_data,omitempty"`
	StatusMaster       *string    `json:"status_master"`
	CreatedBy          *string    `json:"created_by"`
	CreatedDate        time.Time  `json:"created_date"`
	CreatedMacAddress  *string    `json:"created_mac_address"`
	ModifiedBy         *string    `json:"modified_by"`
	ModifiedDate       *time.Time `json:"modified_date"`
	ModifiedMacAddress *string    `json:"modified_mac_address"`
}
