package repository

import (
	"context"
	"database/sql"
	"unicode/utf8"

	"poadmin/models"
	"poadmin/query"
)

const (
	conversationTable = "tbl_purchase_order_conversation_dtl"
	previewLen        = 100
)

var ConversationResource = &query.Resource{
	Name:  "PO Conversation",
	Table: conversationTable,
	Key:   "sno",
	Filters: []query.Filter{
		{Param: "po_ref_no", Column: "po_ref_no", Kind: query.KindString, MaxLen: 50},
		{Param: "respond_person", Column: "respond_person", Kind: query.KindString, MaxLen: 50, Match: query.Contains},
		{Param: "response_status", Column: "response_status", Kind: query.KindString, MaxLen: 50},
		{Param: "status_entry", Column: "status_entry", Kind: query.KindString, MaxLen: 50},
		{Param: "created_by", Column: "created_by", Kind: query.KindString, MaxLen: 50, Match: query.Contains},
		{Param: "search", Column: "discussion_details", Kind: query.KindText, Match: query.Contains},
		{Param: "start_date", Column: "created_date", Kind: query.KindDate, Match: query.AtLeast},
		{Param: "end_date", Column: "created_date", Kind: query.KindDate, Match: query.AtMost},
	},
	Sortable:     []string{"sno", "po_ref_no", "respond_person", "response_status", "created_date", "status_entry"},
	DefaultSort:  "created_date",
	DefaultLimit: 50,
	MaxLimit:     200,
	Scope:        "po_ref_no",
	CreateFields: []query.Field{
		query.String("po_ref_no", 50).Require(),
		query.String("respond_person", 50).Require(),
		query.Text("discussion_details").Require(),
		query.String("response_status", 50),
		query.String("status_entry", 50).WithDefault("ACTIVE"),
		query.String("remarks", 50),
		query.String("created_by", 50).Require(),
		query.String("created_mac_address", 50),
	},
	CreateConst: []query.Assign{{Column: "created_date", Expr: "NOW()"}},
	UpdateFields: []query.Field{
		query.String("respond_person", 50),
		query.Text("discussion_details"),
		query.String("response_status", 50),
		query.String("status_entry", 50),
		query.String("remarks", 50),
	},
}

func conversationColumns(c *models.POConversation) []column {
	return []column{
		{"sno", &c.Sno},
		{"po_ref_no", &c.PORefNo},
		{"respond_person", &c.RespondPerson},
		{"discussion_details", &c.DiscussionDetails},
		{"response_status", &c.ResponseStatus},
		{"status_entry", &c.StatusEntry},
		{"remarks", &c.Remarks},
		{"created_by", &c.CreatedBy},
		{"created_date", &c.CreatedDate},
		{"created_mac_address", &c.CreatedMacAddress},
		{"modified_by", &c.ModifiedBy},
		{"modified_date", &c.ModifiedDate},
		{"modified_mac_address", &c.ModifiedMacAddress},
	}
}

var conversationSummarySQL = []string{
	"COUNT(*)",
	"COUNT(DISTINCT respond_person)",
	"MIN(created_date)",
	"MAX(created_date)",
	"COUNT(CASE WHEN response_status = 'POSITIVE' THEN 1 END)",
	"COUNT(CASE WHEN response_status = 'NEGATIVE' THEN 1 END)",
	"COUNT(CASE WHEN response_status IS NULL THEN 1 END)",
}

var threadSQL = []string{
	"COUNT(*)",
	"COUNT(DISTINCT respond_person)",
	"MIN(created_date)",
	"MAX(created_date)",
	"STRING_AGG(DISTINCT response_status, ', ')",
}

type PostgresConversationRepo struct {
	*Table[models.POConversation, int64]
}

func NewPostgresConversationRepo(db *sql.DB) *PostgresConversationRepo {
	t := newTable[models.POConversation, int64](db, ConversationResource, conversationColumns)
	t.summarize = func(ctx context.Context, w query.Where) (any, error) {
		q, args := ConversationResource.AggregateSQL(conversationSummarySQL, w)
		var s models.ConversationSummary
		err := db.QueryRowContext(ctx, q, args...).Scan(
			&s.TotalConversations, &s.UniqueRespondents,
			&s.FirstConversation, &s.LastConversation,
			&s.PositiveResponses, &s.NegativeResponses, &s.PendingResponses,
		)
		return &s, err
	}
	return &PostgresConversationRepo{Table: t}
}

func (r *PostgresConversationRepo) Create(ctx context.Context, body query.Body) (*models.POConversation, error) {
	return r.create(ctx, body, requireHeader(r.db, body))
}

// ByRef returns the discussion of a purchase order oldest first, with a
// condensed timeline. It fails with ErrNotFound when the header is missing.
func (r *PostgresConversationRepo) ByRef(ctx context.Context, poRefNo string) ([]*models.POConversation, *models.ConversationThread, error) {
	found, err := exists(ctx, r.db, HeaderResource.ExistsSQL(), poRefNo)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, ErrNotFound
	}
	msgs, err := r.byRef(ctx, poRefNo, "created_date ASC", 0)
	if err != nil {
		return nil, nil, err
	}

	q, args := ConversationResource.AggregateSQL(threadSQL, query.Equals("po_ref_no", poRefNo))
	var th models.ConversationThread
	err = r.db.QueryRowContext(ctx, q, args...).Scan(
		&th.TotalMessages, &th.UniqueParticipants,
		&th.ConversationStarted, &th.LastMessage, &th.AllStatuses,
	)
	if err != nil {
		return nil, nil, translate(err)
	}
	th.Timeline = timeline(msgs)
	return msgs, &th, nil
}

func (r *PostgresConversationRepo) Latest(ctx context.Context, poRefNo string) (*models.POConversation, error) {
	msgs, err := r.byRef(ctx, poRefNo, "created_date DESC", 1)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, ErrNotFound
	}
	return msgs[0], nil
}

func timeline(msgs []*models.POConversation) []models.TimelineEntry {
	out := make([]models.TimelineEntry, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, models.TimelineEntry{
			Sno:     m.Sno,
			Date:    m.CreatedDate,
			Person:  m.RespondPerson,
			Status:  m.ResponseStatus,
			Preview: preview(m.DiscussionDetails),
		})
	}
	return out
}

// preview cuts s to previewLen runes, marking the cut with an ellipsis.
func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewLen {
		return s
	}
	return string([]rune(s)[:previewLen]) + "..."
}
