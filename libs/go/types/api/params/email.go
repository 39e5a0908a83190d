package params

// TransactionalEmailParams contains parameters for sending transactional emails
type TransactionalEmailParams struct {
	To          []string
	Subject     string
	HTMLContent string
	TextContent string
	ReplyTo     string
	Headers     map[string]string
	Tags        map[string]string
}
