package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContactEmail(t *testing.T) {
	html, err := renderContactEmail(ContactEmailData{
		SenderName:  "João Silva",
		SenderEmail: "joao@email.com",
		Message:     "Primeira linha\nSegunda linha",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "<h2>Novo contato do portfólio</h2>")
	assert.Contains(t, html, "João Silva")
	assert.Contains(t, html, "joao@email.com")
	// Newlines become line breaks
	assert.Contains(t, html, "Primeira linha<br>Segunda linha")
}

func TestRenderContactEmail_EscapesMarkup(t *testing.T) {
	html, err := renderContactEmail(ContactEmailData{
		SenderName:  "<script>alert(1)</script>",
		SenderEmail: "x@y.co",
		Message:     "hello <b>world</b>\nbye",
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>")
	// Escaping must not eat the line-break conversion
	assert.Contains(t, html, "<br>")
}
