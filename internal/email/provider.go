package email

// Provider is the outbound email collaborator. Delivery failures are never
// swallowed: every method returns the transport error so callers can fail
// the surrounding operation.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendVerification delivers the email-verification link.
	SendVerification(to, verificationLink string) error

	// SendPasswordReset delivers the password-reset link.
	SendPasswordReset(to, resetLink string) error

	// SendTemplate renders a named template and delivers it.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// Validate checks the provider configuration.
	Validate() error
}
