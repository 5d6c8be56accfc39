package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poadmin/models"
)

func TestNumberToWords(t *testing.T) {
	assert.Equal(t, "", NumberToWords(0))
	assert.Equal(t, "Nineteen", NumberToWords(19))
	assert.Equal(t, "Forty Two", NumberToWords(42))
	assert.Equal(t, "One Hundred", NumberToWords(100))
	assert.Equal(t, "One Lakh Twenty Thousand Five", NumberToWords(120005))
	assert.Equal(t, "Two Crore", NumberToWords(20000000))
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "One Hundred Dollars and Five Cents Only", AmountInWords(decimal.RequireFromString("100.05"), "usd"))
	assert.Equal(t, "Twelve Taka Only", AmountInWords(decimal.NewFromInt(12), "BDT"))
	assert.Equal(t, "Zero Rupees Only", AmountInWords(decimal.Zero, "INR"))
	assert.Equal(t, "Seven AED Only", AmountInWords(decimal.NewFromInt(7), "AED"))
}

func TestAttachmentKey(t *testing.T) {
	assert.Equal(t, "po-files/PO-1/7/invoice.pdf", AttachmentKey("PO-1", 7, "../../invoice.pdf"))
	assert.Equal(t, "po-documents/PO-1.pdf", DocumentKey("PO-1"))

	for _, ref := range []string{"../x", "..", "a/../../b", `..\x`} {
		key := AttachmentKey(ref, 7, "a.pdf")
		assert.True(t, strings.HasPrefix(key, "po-files/"), key)
		assert.Len(t, strings.Split(key, "/"), 4, key)
		assert.True(t, strings.HasPrefix(DocumentKey(ref), "po-documents/"), ref)
		assert.Len(t, strings.Split(DocumentKey(ref), "/"), 2, ref)
	}
	assert.Equal(t, "po-files/.._x/7/a.pdf", AttachmentKey("../x", 7, "a.pdf"))
	assert.Equal(t, "po-files/_/7/a.pdf", AttachmentKey("..", 7, "a.pdf"))

	s := &ObjectStore{publicBase: "https://cdn.example/"}
	assert.Equal(t, "https://cdn.example/po-files/PO%201/7/a.pdf", s.URL("po-files/PO 1/7/a.pdf"))
	assert.Equal(t, "k", (&ObjectStore{}).URL("k"))
}

func TestRenderPOHTML(t *testing.T) {
	usd := "USD"
	name := "Cotton yarn"
	doc := &models.PODocument{
		Header: &models.POHeader{
			PORefNo:                       "PO-2024-001",
			PODate:                        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			CurrencyType:                  &usd,
			TotalFinalProductionHdrAmount: decimal.NewNullDecimal(decimal.RequireFromString("1500.50")),
		},
		Items: []*models.POItem{{
			Sno:                  1,
			AlternateProductName: &name,
			FinalProductAmount:   decimal.NewNullDecimal(decimal.RequireFromString("1500.5")),
		}},
		Costs: []*models.POCost{{AdditionalCostType: "Freight", Amount: decimal.NewFromInt(20)}},
		GeneratedAt: "01-Mar-2024",
	}

	html, err := RenderPOHTML(doc)
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, "Purchase Order PO-2024-001")
	assert.Contains(t, out, "01-Mar-2024")
	assert.Contains(t, out, "Cotton yarn")
	assert.Contains(t, out, "1500.50")
	assert.Contains(t, out, "Freight")
	assert.Contains(t, out, "One Thousand Five Hundred Dollars and Fifty Cents Only")
	assert.False(t, strings.Contains(out, "No items"))
}
