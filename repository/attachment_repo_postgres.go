package repository

import (
	"context"
	"database/sql"

	"poadmin/models"
	"poadmin/query"
)

const attachmentTable = "tbl_purchase_order_files_upload"

const DefaultContentType = "application/octet-stream"

var AttachmentResource = &query.Resource{
	Name:  "PO File",
	Table: attachmentTable,
	Key:   "sno",
	Filters: []query.Filter{
		{Param: "po_ref_no", Column: "po_ref_no", Kind: query.KindString, MaxLen: 50},
		{Param: "file_name", Column: "file_name", Kind: query.KindString, MaxLen: 150, Match: query.Contains},
		{Param: "file_type", Column: "file_type", Kind: query.KindString, MaxLen: 50},
		{Param: "status_master", Column: "status_master", Kind: query.KindString, MaxLen: 20},
		{Param: "start_date", Column: "created_date", Kind: query.KindDate, Match: query.AtLeast},
		{Param: "end_date", Column: "created_date", Kind: query.KindDate, Match: query.AtMost},
	},
	Sortable:     []string{"sno", "po_ref_no", "file_name", "file_type", "created_date"},
	DefaultSort:  "created_date",
	DefaultLimit: 50,
	MaxLimit:     100,
	CreateFields: []query.Field{
		query.String("po_ref_no", 50).Require(),
		query.String("description_details", 100),
		query.String("file_name", 150).Require(),
		query.String("content_type", 50).WithDefault(DefaultContentType),
		query.Text("content_data").Require(),
		query.String("status_master", 20).WithDefault("ACTIVE"),
		query.String("created_by", 50),
		query.String("created_mac_address", 50),
		query.String("file_type", 50),
	},
	CreateConst: []query.Assign{{Column: "created_date", Expr: "NOW()"}},
	// po_ref_no is fixed once uploaded; the mirrored object key is built from it.
	UpdateFields: []query.Field{
		query.String("description_details", 100),
		query.String("status_master", 20),
		query.String("file_type", 50),
	},
}

func attachmentBrief(a *models.POAttachment) []column {
	return []column{
		{"sno", &a.Sno},
		{"po_ref_no", &a.PORefNo},
		{"description_details", &a.DescriptionDetails},
		{"file_name", &a.FileName},
		{"file_type", &a.FileType},
		{"content_type", &a.ContentType},
		{"status_master", &a.StatusMaster},
		{"created_by", &a.CreatedBy},
		{"created_date", &a.CreatedDate},
		{"created_mac_address", &a.CreatedMacAddress},
		{"modified_by", &a.ModifiedBy},
		{"modified_date", &a.ModifiedDate},
		{"modified_mac_address", &a.ModifiedMacAddress},
	}
}

func attachmentColumns(a *models.POAttachment) []column {
	return append(attachmentBrief(a), column{"content_data", &a.ContentData})
}

type PostgresAttachmentRepo struct {
	*Table[models.POAttachment, int64]
}

func NewPostgresAttachmentRepo(db *sql.DB) *PostgresAttachmentRepo {
	t := newTable[models.POAttachment, int64](db, AttachmentResource, attachmentColumns)
	t.brief = attachmentBrief
	return &PostgresAttachmentRepo{Table: t}
}

func (r *PostgresAttachmentRepo) Create(ctx context.Context, body query.Body) (*models.POAttachment, error) {
	a, err := r.create(ctx, body, requireHeader(r.db, body))
	if err != nil {
		return nil, err
	}
	return withoutContent(a), nil
}

func (r *PostgresAttachmentRepo) Update(ctx context.Context, sno int64, body query.Body) (*models.POAttachment, error) {
	a, err := r.Table.Update(ctx, sno, body)
	if err != nil {
		return nil, err
	}
	return withoutContent(a), nil
}

func (r *PostgresAttachmentRepo) Delete(ctx context.Context, sno int64) (*models.POAttachment, error) {
	a, err := r.Table.Delete(ctx, sno)
	if err != nil {
		return nil, err
	}
	return withoutContent(a), nil
}

// withoutContent drops the encoded file from rows returned by writes.
func withoutContent(a *models.POAttachment) *models.POAttachment {
	a.ContentData = ""
	return a
}

// ByRef lists the files of a purchase order without their content.
func (r *PostgresAttachmentRepo) ByRef(ctx context.Context, poRefNo string) ([]*models.POAttachment, error) {
	return r.byRef(ctx, poRefNo, "created_date DESC", 0)
}
