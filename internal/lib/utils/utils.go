// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

var (
	minifierOnce sync.Once
	minifier     *minify.M
)

// htmlMinifier returns the shared minifier. Document and end tags are kept
// so the output stays readable by mail clients that are strict about
// structure.
func htmlMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.AddFunc("text/css", css.Minify)
		minifier.Add("text/html", &html.Minifier{
			KeepDocumentTags: true,
			KeepEndTags:      true,
			KeepQuotes:       true,
		})
	})

	return minifier
}

// MinifyHTML collapses whitespace and comments in an HTML document,
// including inline <style> blocks and style attributes.
func MinifyHTML(doc string) (string, error) {
	return htmlMinifier().String("text/html", doc)
}
