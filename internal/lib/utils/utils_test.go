package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/form-handler/internal/lib/utils"
)

func TestMinifyHTML(t *testing.T) {
	out, err := utils.MinifyHTML(`
		<!doctype html>
		<html>
		<head>
			<!-- comment -->
			<style>
				body {  color : #333333 ; }
			</style>
		</head>
		<body>
			<h1>  Form Submitted!  </h1>
		</body>
		</html>
	`)
	require.NoError(t, err)

	assert.NotContains(t, out, "comment")
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, "<body>")
	assert.Contains(t, out, "</h1>")
	assert.Contains(t, out, "Form Submitted!")
	assert.Contains(t, out, "color:#333")
}
