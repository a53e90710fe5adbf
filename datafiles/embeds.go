//go:build go1.16
// +build go1.16

package datafiles

import "embed" // at least "import _ "embed"" is required

//go:embed assettable.html
var assetsHTMLEmbed string

//go:embed assettable.html
var htmlTemplatesEmbed embed.FS

// AssetTableHTML returns the HTML template used by the web handler's
// asset index page.
func AssetTableHTML() string {
	return assetsHTMLEmbed
}

// HTMLTemplates returns all embedded HTML templates as a filesystem.
func HTMLTemplates() embed.FS {
	return htmlTemplatesEmbed
}
