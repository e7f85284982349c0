package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Built-in templates. Kept in code so a fresh deployment needs no template
// directory; AddTemplate can override them.
var builtinTemplates = map[string]string{
	"verification": `<p>Hello{{if .UserName}} {{.UserName}}{{end}},</p>
<p>Please click the link below to verify your email address:</p>
<p><a href="{{.ActionURL}}">{{if .ActionText}}{{.ActionText}}{{else}}Verify email{{end}}</a></p>
<p>The link is valid for 24 hours.</p>`,

	"password_reset": `<p>Hello{{if .UserName}} {{.UserName}}{{end}},</p>
<p>Click the link below to reset your password:</p>
<p><a href="{{.ActionURL}}">{{if .ActionText}}{{.ActionText}}{{else}}Reset password{{end}}</a></p>
<p>If you did not request a reset, you can ignore this email.</p>`,
}

// TemplateManager renders named HTML templates for outbound email.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	for name, body := range builtinTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

// Render executes a template with the given data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return buf.String(), nil
}

// AddTemplate registers or replaces a template.
func (tm *TemplateManager) AddTemplate(name, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
