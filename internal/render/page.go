package render

import (
	"fmt"
	"html/template"
	"io"

	"thesaurus/internal/domain"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>body { font-family: monospace; white-space: nowrap; }</style>
</head>
<body>
<p>{{.Statistics}}</p>
<hr>
<div>{{.Markup}}</div>
</body>
</html>
`))

type pageData struct {
	Title      string
	Statistics template.HTML
	Markup     template.HTML
}

// WritePage writes HTML markup produced with HTMLStyler as a standalone page.
// statistics must already be HTML.
func WritePage(w io.Writer, title string, analysis domain.Analysis, statistics string) error {
	data := pageData{
		Title:      title,
		Statistics: template.HTML(statistics),
		Markup:     template.HTML(analysis.Markup),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}
