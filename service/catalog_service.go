package service

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"storefront-core/colors"
	"storefront-core/models"
)

//go:embed templates/catalog.html
var catalogTemplateSource string

var catalogTemplate = template.Must(template.New("catalog").Funcs(template.FuncMap{
	"add":  func(a, b int) int { return a + b },
	"join": strings.Join,
}).Parse(catalogTemplateSource))

const itemsPerPage = 9

// PDFRenderer turns an HTML document into a PDF
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// CatalogService renders the "last few left" sheet
type CatalogService struct {
	products *ProductService
	renderer PDFRenderer
	baseURL  string // Base URL for swatch image endpoints (e.g., "http://localhost:8080")
	now      func() time.Time
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(products *ProductService, renderer PDFRenderer, baseURL string) *CatalogService {
	return &CatalogService{
		products: products,
		renderer: renderer,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}
}

// paginateItems splits items into pages of 9 items each
func paginateItems(items []models.CatalogItem) [][]models.CatalogItem {
	pages := [][]models.CatalogItem{}
	for i := 0; i < len(items); i += itemsPerPage {
		end := i + itemsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}
	return pages
}

// swatchStyle renders a swatch fill; image URLs become absolute so the PDF
// renderer, which has no origin, can load them.
func (s *CatalogService) swatchStyle(sw colors.Swatch) template.CSS {
	if strings.HasPrefix(sw.SwatchImage, "/") {
		sw.SwatchImage = s.baseURL + sw.SwatchImage
	}
	return template.CSS(colors.StyleFor(sw).CSS())
}

// LastFewLeftSheet collects the low-stock products into template data.
// An empty sheet has no pages.
func (s *CatalogService) LastFewLeftSheet(ctx context.Context) (*models.CatalogData, error) {
	cards, err := s.products.LastFewLeft(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.CatalogItem, 0, len(cards))
	for _, c := range cards {
		item := models.CatalogItem{
			ID:             c.ID,
			Name:           c.Name,
			PriceFormatted: c.PriceFormatted,
			StockCount:     c.StockCount,
			Message:        c.Stock.Message,
			Sizes:          c.Sizes,
			Swatches:       make([]models.CatalogSwatch, 0, len(c.Colors)),
		}
		for _, sw := range c.Colors {
			if !sw.Active {
				continue
			}
			item.Swatches = append(item.Swatches, models.CatalogSwatch{Name: sw.Name, Style: s.swatchStyle(sw)})
		}
		items = append(items, item)
	}

	pages := paginateItems(items)
	return &models.CatalogData{
		Title:       "Last few left",
		GeneratedAt: s.now().Format("2006-01-02"),
		Pages:       pages,
		PageCount:   len(pages),
	}, nil
}

// RenderCatalogHTML renders the catalog HTML template
func (s *CatalogService) RenderCatalogHTML(data *models.CatalogData) (string, error) {
	var buf bytes.Buffer
	if err := catalogTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF renders the sheet and prints it to PDF
func (s *CatalogService) GeneratePDF(ctx context.Context, data *models.CatalogData) ([]byte, error) {
	html, err := s.RenderCatalogHTML(data)
	if err != nil {
		return nil, err
	}
	if s.renderer == nil {
		return nil, fmt.Errorf("no PDF renderer configured")
	}
	return s.renderer.RenderPDF(ctx, html)
}

// ChromePDFRenderer prints HTML to PDF with a headless Chrome
type ChromePDFRenderer struct {
	chromePath string
	timeout    time.Duration
}

// Ensure ChromePDFRenderer implements PDFRenderer
var _ PDFRenderer = (*ChromePDFRenderer)(nil)

// NewChromePDFRenderer creates a renderer. An empty chromePath means auto-detect.
func NewChromePDFRenderer(chromePath string) *ChromePDFRenderer {
	return &ChromePDFRenderer{chromePath: detectChromePath(chromePath), timeout: 30 * time.Second}
}

// detectChromePath checks the configured path first, then common installation paths
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
		log.Printf("⚠️  CHROME_PATH %s not found, trying common paths", configured)
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// RenderPDF loads html into a blank page and prints it on A4 with backgrounds
func (r *ChromePDFRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	var fontsReady bool
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		// Wait for fonts and swatch images
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, &fontsReady, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// 210mm x 297mm
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✓ PDF generated: %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
