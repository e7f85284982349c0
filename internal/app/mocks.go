package app

import "shopcart_backend/internal/email"

// MockEmailProvider is used for tests and local development without SMTP.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error                   { return nil }
func (m *MockEmailProvider) SendVerification(to, link string) error        { return nil }
func (m *MockEmailProvider) SendPasswordReset(to, link string) error       { return nil }
func (m *MockEmailProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	return nil
}
func (m *MockEmailProvider) Validate() error { return nil }
