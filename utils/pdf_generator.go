package utils

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/shopspring/decimal"

	"poadmin/models"
)

//go:embed templates/purchase_order.html
var templateFS embed.FS

var poTemplate = template.Must(template.New("purchase_order.html").Funcs(template.FuncMap{
	"str": func(s *string) string {
		if s == nil || *s == "" {
			return "-"
		}
		return *s
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("02-Jan-2006")
	},
	"dateptr": func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return "-"
		}
		return t.Format("02-Jan-2006")
	},
	"dec": func(d decimal.NullDecimal) string {
		if !d.Valid {
			return "-"
		}
		return d.Decimal.StringFixed(2)
	},
	"idptr": func(id *int64) string {
		if id == nil {
			return "-"
		}
		return strconv.FormatInt(*id, 10)
	},
	"inc": func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/purchase_order.html"))

type poView struct {
	*models.PODocument
	TotalWords string
}

// RenderPOHTML renders the printable purchase order.
func RenderPOHTML(doc *models.PODocument) ([]byte, error) {
	view := poView{PODocument: doc}
	if h := doc.Header; h != nil && h.TotalFinalProductionHdrAmount.Valid {
		currency := ""
		if h.CurrencyType != nil {
			currency = *h.CurrencyType
		}
		view.TotalWords = AmountInWords(h.TotalFinalProductionHdrAmount.Decimal, currency)
	}

	var buf bytes.Buffer
	if err := poTemplate.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PDFGenerator prints HTML with headless Chrome.
type PDFGenerator struct {
	Timeout time.Duration
}

// GeneratePOPDF renders doc and prints it to an A4 PDF.
func (g *PDFGenerator) GeneratePOPDF(ctx context.Context, doc *models.PODocument) ([]byte, error) {
	html, err := RenderPOHTML(doc)
	if err != nil {
		return nil, err
	}

	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}
	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.7).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
