package email

// Email is a single outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData feeds the HTML templates.
type TemplateData struct {
	Subject    string
	UserName   string
	ActionURL  string
	ActionText string
	Message    string
}

// Config holds SMTP settings for the provider.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
