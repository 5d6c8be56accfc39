package models

import "time"

// POConversation is one message in a purchase order's discussion (po_details3).
type POConversation struct {
	Sno                int64      `json:"sno"`
	PORefNo            string     `json:"po_ref_no"`
	RespondPerson      string     `json:"respond_person"`
	DiscussionDetails  string     `json:"discussion_details"`
	ResponseStatus     *string    `json:"response_status"`
	StatusEntry        *string    `json:"status_entry"`
	Remarks            *string    `json:"remarks"`
	CreatedBy          string     `json:"created_by"`
	CreatedDate        time.Time  `json:"created_date"`
	CreatedMacAddress  *string    `json:"created_mac_address"`
	ModifiedBy         *string    `json:"modified_by"`
	ModifiedDate       *time.Time `json:"modified_date"`
	ModifiedMacAddress *string    `json:"modified_mac_address"`
}

type ConversationSummary struct {
	TotalConversations int64      `json:"total_conversations"`
	UniqueRespondents  int64      `json:"unique_respondents"`
	FirstConversation  *time.Time `json:"first_conversation"`
	LastConversation   *time.Time `json:"last_conversation"`
	PositiveResponses  int64      `json:"positive_responses"`
	NegativeResponses  int64      `json:"negative_responses"`
	PendingResponses   int64      `json:"pending_responses"`
}

// TimelineEntry is a condensed conversation message.
type TimelineEntry struct {
	Sno     int64     `json:"sno"`
	Date    time.Time `json:"date"`
	Person  string    `json:"person"`
	Status  *string   `json:"status"`
	Preview string    `json:"preview"`
}

// ConversationThread summarises every message of one purchase order.
type ConversationThread struct {
	TotalMessages       int64           `json:"total_messages"`
	UniqueParticipants  int64           `json:"unique_participants"`
	ConversationStarted *time.Time      `json:"conversation_started"`
	LastMessage         *time.Time      `json:"last_message"`
	AllStatuses         *string         `json:"all_statuses"`
	Timeline            []TimelineEntry `json:"timeline"`
}
