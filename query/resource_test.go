package query

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testResource = &Resource{
	Name:  "PO Item",
	Table: "po_details1",
	Key:   "sno",
	Filters: []Filter{
		{Param: "po_ref_no", Column: "po_ref_no", Kind: KindString, MaxLen: 50},
		{Param: "product_id", Column: "product_id", Kind: KindID},
		{Param: "remarks", Column: "remarks", Kind: KindText, Match: Contains},
		{Param: "from_date", Column: "created_date", Kind: KindDate, Match: AtLeast},
		{Param: "to_date", Column: "created_date", Kind: KindDate, Match: AtMost},
	},
	Sortable:     []string{"sno", "created_date", "product_amount"},
	DefaultSort:  "created_date",
	DefaultLimit: 50,
	MaxLimit:     500,
	Scope:        "po_ref_no",
	CreateFields: []Field{
		String("po_ref_no", 50).Require(),
		ID("product_id"),
		Number("total_pcs"),
		String("status_entry", 20).WithDefault("ACTIVE"),
		String("created_by", 50).Require(),
	},
	CreateConst:  []Assign{{Column: "created_date", Expr: "NOW()"}},
	UpdateFields: []Field{ID("product_id"), Number("total_pcs"), String("remarks", 50)},
}

func body(t *testing.T, s string) Body {
	t.Helper()
	var b Body
	require.NoError(t, json.Unmarshal([]byte(s), &b))
	return b
}

func TestBuildWhere(t *testing.T) {
	tests := []struct {
		name    string
		params  url.Values
		sql     string
		args    []any
		wantErr string
	}{
		{
			name: "no filters",
		},
		{
			name:   "filters follow declaration order",
			params: url.Values{"remarks": {"urgent"}, "po_ref_no": {"PO-1"}},
			sql:    " WHERE po_ref_no = $1 AND remarks ILIKE $2",
			args:   []any{"PO-1", "%urgent%"},
		},
		{
			name:   "date range",
			params: url.Values{"from_date": {"2024-01-01"}, "to_date": {"2024-01-31"}},
			sql:    " WHERE created_date >= $1 AND created_date <= $2",
			args: []any{
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "blank value ignored",
			params: url.Values{"po_ref_no": {"   "}},
		},
		{
			name:    "bad id",
			params:  url.Values{"product_id": {"abc"}},
			wantErr: "product_id must be a positive number",
		},
		{
			name:    "bad date",
			params:  url.Values{"from_date": {"yesterday"}},
			wantErr: "from_date must be a valid date",
		},
		{
			name:    "too long",
			params:  url.Values{"po_ref_no": {string(make([]byte, 51))}},
			wantErr: "po_ref_no must be 50 characters or less",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := BuildWhere(testResource.Filters, tt.params)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sql, w.SQL())
			assert.Equal(t, tt.args, w.Args())
		})
	}
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage(url.Values{}, 50, 500)
	require.NoError(t, err)
	assert.Equal(t, Page{Number: 1, Limit: 50}, p)

	p, err = ParsePage(url.Values{"page": {"3"}, "limit": {"20"}}, 50, 500)
	require.NoError(t, err)
	assert.Equal(t, 40, p.Offset())

	for _, v := range []url.Values{{"page": {"0"}}, {"page": {"x"}}, {"page": {"-2"}}} {
		_, err = ParsePage(v, 50, 500)
		require.Error(t, err)
		assert.Equal(t, "page must be a positive number", err.Error())
	}

	huge := url.Values{"page": {"9223372036854775807"}, "limit": {"50"}}
	_, err = ParsePage(huge, 50, 500)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	last := math.MaxInt/50 + 1
	p, err = ParsePage(url.Values{"page": {strconv.Itoa(last)}, "limit": {"50"}}, 50, 500)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p.Offset(), 0)

	_, err = ParsePage(url.Values{"page": {strconv.Itoa(last + 1)}, "limit": {"50"}}, 50, 500)
	require.Error(t, err)

	for _, v := range []url.Values{{"limit": {"0"}}, {"limit": {"501"}}, {"limit": {"ten"}}} {
		_, err = ParsePage(v, 50, 500)
		require.Error(t, err)
		assert.Equal(t, "limit must be between 1 and 500", err.Error())
	}
}

func TestParseSort(t *testing.T) {
	allowed := testResource.Sortable
	assert.Equal(t, "created_date DESC", ParseSort(url.Values{}, allowed, "created_date").SQL())
	assert.Equal(t, "sno ASC", ParseSort(url.Values{"sort_by": {"sno"}, "sort_order": {"ASC"}}, allowed, "created_date").SQL())
	assert.Equal(t, "created_date DESC", ParseSort(url.Values{"sort_by": {"sno; DROP TABLE x"}}, allowed, "created_date").SQL())
	assert.Equal(t, "sno DESC", ParseSort(url.Values{"sort_by": {"sno"}, "sort_order": {"sideways"}}, allowed, "created_date").SQL())
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, Limit: 2, Total: 5, Pages: 3}, NewPagination(Page{Number: 1, Limit: 2}, 5))
	assert.Equal(t, int64(0), NewPagination(Page{Number: 1, Limit: 50}, 0).Pages)
	assert.Equal(t, int64(1), NewPagination(Page{Number: 1, Limit: 50}, 50).Pages)
}

func TestSelectAndCountShareWhere(t *testing.T) {
	l, err := testResource.ParseList(url.Values{
		"po_ref_no": {"PO-1"},
		"page":      {"2"},
		"limit":     {"10"},
		"sort_by":   {"sno"},
	})
	require.NoError(t, err)
	assert.True(t, l.Scoped)

	q, args := testResource.SelectSQL([]string{"sno", "po_ref_no"}, l)
	assert.Equal(t, "SELECT sno, po_ref_no FROM po_details1 WHERE po_ref_no = $1 ORDER BY sno DESC LIMIT $2 OFFSET $3", q)
	assert.Equal(t, []any{"PO-1", 10, 10}, args)

	cq, cargs := testResource.CountSQL(l.Where)
	assert.Equal(t, "SELECT COUNT(*) FROM po_details1 WHERE po_ref_no = $1", cq)
	assert.Equal(t, []any{"PO-1"}, cargs)

	aq, _ := testResource.AggregateSQL([]string{"COUNT(*)", "SUM(total_pcs)"}, l.Where)
	assert.Equal(t, "SELECT COUNT(*), SUM(total_pcs) FROM po_details1 WHERE po_ref_no = $1", aq)
}

func TestInsertSQL(t *testing.T) {
	q, args, err := testResource.InsertSQL(body(t, `{"po_ref_no":" PO-1 ","total_pcs":"12.5","created_by":"alice","ignored":1}`), []string{"sno"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO po_details1 (po_ref_no, total_pcs, status_entry, created_by, created_date) VALUES ($1, $2, $3, $4, NOW()) RETURNING sno", q)
	require.Len(t, args, 4)
	assert.Equal(t, "PO-1", args[0])
	assert.True(t, decimal.RequireFromString("12.5").Equal(args[1].(decimal.Decimal)))
	assert.Equal(t, "ACTIVE", args[2])
	assert.Equal(t, "alice", args[3])
}

func TestInsertSQLRejects(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"created_by":"alice"}`, "po_ref_no is required"},
		{`{"po_ref_no":"","created_by":"alice"}`, "po_ref_no is required"},
		{`{"po_ref_no":"PO-1"}`, "created_by is required"},
		{`{"po_ref_no":"PO-1","created_by":"a","total_pcs":-1}`, "total_pcs must be a non-negative number"},
		{`{"po_ref_no":"PO-1","created_by":"a","product_id":0}`, "product_id must be a positive number"},
		{`{"po_ref_no":"PO-1","created_by":"a","product_id":1.5}`, "product_id must be a positive number"},
		{`{"po_ref_no":{"x":1},"created_by":"a"}`, "po_ref_no must be a string"},
	}
	for _, tt := range tests {
		_, _, err := testResource.InsertSQL(body(t, tt.body), []string{"sno"})
		require.Error(t, err, tt.body)
		assert.Equal(t, tt.want, err.Error(), tt.body)
	}
}

func TestUpdateSQL(t *testing.T) {
	q, args, err := testResource.UpdateSQL(int64(7), body(t, `{"remarks":null,"total_pcs":3,"modified_by":"bob","modified_mac_address":"aa:bb"}`), []string{"sno"})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE po_details1 SET total_pcs = $1, remarks = $2, modified_by = $3, modified_mac_address = $4, modified_date = NOW() WHERE sno = $5 RETURNING sno", q)
	require.Len(t, args, 5)
	assert.Nil(t, args[1])
	assert.Equal(t, "bob", args[2])
	assert.Equal(t, int64(7), args[4])
}

func TestUpdateSQLRejects(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{}`, "No update data provided"},
		{`{"modified_by":"bob"}`, "No update data provided"},
		{`{"remarks":"x"}`, "modified_by is required for update"},
		{`{"remarks":"x","modified_by":"  "}`, "modified_by is required for update"},
		{`{"total_pcs":-5,"modified_by":"bob"}`, "total_pcs must be a non-negative number"},
	}
	for _, tt := range tests {
		_, _, err := testResource.UpdateSQL(int64(1), body(t, tt.body), nil)
		require.Error(t, err, tt.body)
		assert.Equal(t, tt.want, err.Error(), tt.body)
	}
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2024-03-01", "2024-03-01T10:00:00Z", "2024-03-01T10:00:00.123+05:30", "2024-03-01 10:00:00", "2024-03-01T10:00"} {
		_, err := ParseDate(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestFormBody(t *testing.T) {
	b := FormBody(map[string]string{"file_name": "a.pdf"})
	assert.Equal(t, "a.pdf", b.Text("file_name"))
	assert.Equal(t, "", b.Text("missing"))
}
