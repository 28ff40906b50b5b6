package landing

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/GoliathBritton/flyfox-ai-platform/domain/landing/components"
)

// Export writes the page as a static site into dir: index.html, the
// stylesheet under static/, and a README.md. Existing files are replaced.
// It returns the written paths in that order.
func Export(dir string, page *Page) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(dir, "static"), 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	var written []string
	write := func(name string, data []byte) error {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, path)
		return nil
	}

	if err := write("index.html", page.body); err != nil {
		return written, err
	}

	css, err := fs.ReadFile(StaticFiles(), "styles.css")
	if err != nil {
		return written, fmt.Errorf("read embedded stylesheet: %w", err)
	}
	if err := write("static/styles.css", css); err != nil {
		return written, err
	}

	if err := write("README.md", []byte(Readme(page))); err != nil {
		return written, err
	}
	return written, nil
}

// Readme is the markdown summary shipped next to an exported site.
func Readme(page *Page) string {
	info := page.Brand().Info

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Platform\n\n", info.Name)
	fmt.Fprintf(&b, "Static landing page for %s by %s.\n\n", info.Name, info.Company)
	fmt.Fprintf(&b, "## Mission\n%s\n\n", info.Mission)
	fmt.Fprintf(&b, "## Contact\n%s\n\n", info.Contact)
	b.WriteString("## Features\n")
	for _, card := range components.PromoCards {
		fmt.Fprintf(&b, "- %s %s\n", info.Name, card.Title)
	}
	return b.String()
}
