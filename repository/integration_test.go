//go:build integration

package repository_test

import (
	"context"
	"database/sql"
	"net/url"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"poadmin/db"
	"poadmin/query"
	"poadmin/repository"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("po"),
		postgres.WithUsername("po"),
		postgres.WithPassword("po"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.MigrateUp(conn))
	return conn
}

func jsonBody(t *testing.T, fields map[string]string) query.Body {
	t.Helper()
	return query.FormBody(fields)
}

func TestPurchaseOrderLifecycle(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()

	headers := repository.NewPostgresHeaderRepo(conn)
	items := repository.NewPostgresItemRepo(conn)
	costs := repository.NewPostgresCostRepo(conn)
	conversations := repository.NewPostgresConversationRepo(conn)
	files := repository.NewPostgresAttachmentRepo(conn)

	_, err := costs.Create(ctx, jsonBody(t, map[string]string{
		"po_ref_no": "PO-1", "additional_cost_type": "Freight", "amount": "10", "created_by": "alice",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Create header first")

	h, err := headers.Create(ctx, jsonBody(t, map[string]string{
		"po_ref_no": "PO-1", "po_date": "2024-05-01", "company_id": "1", "supplier_id": "2", "created_by": "alice",
	}))
	require.NoError(t, err)
	require.NotNil(t, h.StatusEntry)
	assert.Equal(t, "CREATED", *h.StatusEntry)

	_, err = headers.Create(ctx, jsonBody(t, map[string]string{
		"po_ref_no": "PO-1", "po_date": "2024-05-01", "company_id": "1", "supplier_id": "2", "created_by": "alice",
	}))
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = items.ByRef(ctx, "PO-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	for _, amount := range []string{"10.50", "20", "30", "40", "50"} {
		_, err := costs.Create(ctx, jsonBody(t, map[string]string{
			"po_ref_no": "PO-1", "additional_cost_type": "Freight", "amount": amount, "created_by": "alice",
		}))
		require.NoError(t, err)
	}

	res, err := costs.List(ctx, url.Values{"po_ref_no": {"PO-1"}, "page": {"1"}, "limit": {"2"}})
	require.NoError(t, err)
	assert.Len(t, res.Data, 2)
	assert.Equal(t, query.Pagination{Page: 1, Limit: 2, Total: 5, Pages: 3}, res.Pagination)
	require.NotNil(t, res.Summary)

	list, summary, err := costs.ByRef(ctx, "PO-1")
	require.NoError(t, err)
	assert.Len(t, list, 5)
	assert.True(t, decimal.RequireFromString("150.50").Equal(summary.TotalAmount))

	filtered, err := costs.List(ctx, url.Values{"min_amount": {"30"}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), filtered.Pagination.Total)

	prior := list[0]
	require.Nil(t, prior.ModifiedDate)
	_, err = costs.Update(ctx, prior.Sno, jsonBody(t, map[string]string{"remarks": "checked", "modified_by": "bob"}))
	require.NoError(t, err)
	updated, err := costs.Get(ctx, prior.Sno)
	require.NoError(t, err)
	require.NotNil(t, updated.Remarks)
	assert.Equal(t, "checked", *updated.Remarks)
	require.NotNil(t, updated.ModifiedBy)
	assert.Equal(t, "bob", *updated.ModifiedBy)
	assert.NotNil(t, updated.ModifiedDate)
	assert.True(t, prior.Amount.Equal(updated.Amount))
	assert.Equal(t, prior.AdditionalCostType, updated.AdditionalCostType)
	assert.Equal(t, prior.StatusMaster, updated.StatusMaster)
	assert.Equal(t, prior.CreatedBy, updated.CreatedBy)
	assert.True(t, prior.CreatedDate.Equal(updated.CreatedDate))

	msg, err := conversations.Create(ctx, jsonBody(t, map[string]string{
		"po_ref_no": "PO-1", "respond_person": "carol", "discussion_details": "Price looks fine", "created_by": "carol",
	}))
	require.NoError(t, err)
	_, thread, err := conversations.ByRef(ctx, "PO-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), thread.TotalMessages)

	f, err := files.Create(ctx, jsonBody(t, map[string]string{
		"po_ref_no": "PO-1", "file_name": "quote.txt", "content_data": "aGVsbG8=",
	}))
	require.NoError(t, err)
	assert.Empty(t, f.ContentData)
	stored, err := files.Get(ctx, f.Sno)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", stored.ContentData)

	_, err = headers.Delete(ctx, "PO-1")
	var blocked *repository.ChildRecordsError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, "tbl_purchase_order_additional_cost_details", blocked.Table)

	for _, c := range list {
		_, err := costs.Delete(ctx, c.Sno)
		require.NoError(t, err)
	}
	_, err = conversations.Delete(ctx, msg.Sno)
	require.NoError(t, err)
	_, err = files.Delete(ctx, f.Sno)
	require.NoError(t, err)

	deleted, err := headers.Delete(ctx, "PO-1")
	require.NoError(t, err)
	assert.Equal(t, "PO-1", deleted.PORefNo)
	_, err = headers.Get(ctx, "PO-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
