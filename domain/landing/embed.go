package landing

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// StaticFiles is the stylesheet tree served under /static/.
func StaticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
