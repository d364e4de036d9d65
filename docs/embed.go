package docs

import "embed"

// FS contains long-form Markdown docs bundled with the hrn binary.
//
//go:embed *.md
var FS embed.FS
