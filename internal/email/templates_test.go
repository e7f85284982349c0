package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_RendersBuiltins(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	html, err := tm.Render("verification", TemplateData{
		UserName:  "Jamie",
		ActionURL: "http://localhost:8000/api/v1/auth/verify-email/abc",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Hello Jamie")
	assert.Contains(t, html, `href="http://localhost:8000/api/v1/auth/verify-email/abc"`)
	assert.Contains(t, html, "Verify email")

	html, err = tm.Render("password_reset", TemplateData{
		ActionURL: "http://localhost:3000/resetpassword?uidb64=x&token=y",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "reset your password")
}

func TestTemplateManager_UnknownName(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	_, err = tm.Render("no-such-template", TemplateData{})
	assert.Error(t, err)
}

func TestTemplateManager_EscapesHTML(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	html, err := tm.Render("verification", TemplateData{
		UserName: `<script>alert("x")</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestTemplateManager_AddTemplateOverrides(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	require.NoError(t, tm.AddTemplate("verification", `<p>Custom: {{.ActionURL}}</p>`))

	html, err := tm.Render("verification", TemplateData{ActionURL: "http://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "<p>Custom: http://example.com</p>", html)
}

func TestTemplateManager_RejectsBadTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	assert.Error(t, tm.AddTemplate("broken", `{{.Unclosed`))
}
