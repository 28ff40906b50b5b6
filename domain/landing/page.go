package landing

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"

	"github.com/GoliathBritton/flyfox-ai-platform/domain/landing/components"
	"github.com/GoliathBritton/flyfox-ai-platform/pkg/branding"
	"github.com/GoliathBritton/flyfox-ai-platform/pkg/tracing"
)

// Render writes the landing page for brand to w. It only fails when w does.
func Render(w io.Writer, brand branding.Brand) error {
	return components.LandingPage(brand).Render(w)
}

// Page is the landing page rendered once and kept in memory.
type Page struct {
	brand branding.Brand
	body  []byte
	etag  string
}

// NewPage renders brand. The returned Page is read-only.
func NewPage(ctx context.Context, brand branding.Brand) (*Page, error) {
	_, span := tracing.Start(ctx, "landing.render",
		attribute.String("brand.name", brand.Info.Name),
	)
	defer span.End()

	var buf bytes.Buffer
	if err := Render(&buf, brand); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("render landing page: %w", err)
	}

	sum := sha256.Sum256(buf.Bytes())
	span.SetAttributes(attribute.Int("page.size", buf.Len()))

	return &Page{
		brand: brand,
		body:  buf.Bytes(),
		etag:  `"` + hex.EncodeToString(sum[:8]) + `"`,
	}, nil
}

// Bytes returns a copy of the rendered document.
func (p *Page) Bytes() []byte {
	return bytes.Clone(p.body)
}

// WriteTo writes the document without copying it.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.body)
	return int64(n), err
}

// ETag is a strong validator derived from the document bytes.
func (p *Page) ETag() string { return p.etag }

func (p *Page) Size() int { return len(p.body) }

func (p *Page) Brand() branding.Brand { return p.brand }
