package requests

// GenerateEmail is the email generator form.
type GenerateEmail struct {
	Topic string `form:"topic" sanitize:"trim" validate:"required,max=500" message:"Please enter a topic first."`
	Kind  string `form:"kind"  sanitize:"line"`
	Tone  string `form:"tone"  sanitize:"line"`
}

// PreviewEmail carries the edited draft for rendering.
type PreviewEmail struct {
	Body string `form:"body" sanitize:"multiline"`
}

// SendEmail is the send form. Kind and Topic come from the generator form and
// are only used for the subject when no draft is stored in the session.
type SendEmail struct {
	Body           string `form:"body"            sanitize:"multiline" validate:"required"                     message:"Please generate an email first or edit the email before sending."`
	Recipient      string `form:"recipient"       sanitize:"line"      validate:"required"                     message:"Please enter recipient email to send the email."`
	SenderEmail    string `form:"sender_email"    sanitize:"line"      validate:"required_if=CustomSender true" message:"Please enter both email and app password if using custom sender."`
	SenderPassword string `form:"sender_password"                      validate:"required_if=CustomSender true" message:"Please enter both email and app password if using custom sender."`
	Kind           string `form:"kind"            sanitize:"line"`
	Topic          string `form:"topic"           sanitize:"trim"`
	CustomSender   bool   `form:"custom_sender"`
}
