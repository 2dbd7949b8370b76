// Package templates holds the default TypeScript client templates.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed typescript
var FS embed.FS

// TypeScript returns the default templates rooted at the typescript directory.
func TypeScript() fs.FS {
	sub, err := fs.Sub(FS, "typescript")
	if err != nil {
		panic(err)
	}
	return sub
}
