package handlers

import (
	"html/template"
	"net/http"

	"github.com/semhq/campaigner/internal/generator"
	"github.com/semhq/campaigner/internal/web"
	"github.com/semhq/campaigner/pkg/mailer"
	"github.com/semhq/campaigner/pkg/markdown"
	"github.com/semhq/campaigner/pkg/prompt"
	"github.com/semhq/campaigner/requests"
	"github.com/semhq/campaigner/views"
)

// Session keys for the last generated email draft.
const (
	keyEmailSubject = "email.subject"
	keyEmailBody    = "email.body"
	keyEmailKind    = "email.kind"
	keyEmailTopic   = "email.topic"
	keyEmailTone    = "email.tone"
)

// Mailer sends a message and exposes the operator's default credentials.
type Mailer interface {
	mailer.Sender
	DefaultSender() mailer.Credentials
}

// EmailHandler serves the email generator: generate, preview and send.
type EmailHandler struct {
	gen      *generator.Service
	mail     Mailer
	markdown *markdown.Renderer
}

// NewEmailHandler creates an email handler with injected dependencies.
func NewEmailHandler(gen *generator.Service, mail Mailer, md *markdown.Renderer) *EmailHandler {
	return &EmailHandler{gen: gen, mail: mail, markdown: md}
}

// Routes declares the email generator routes.
func (h *EmailHandler) Routes(r web.Router) {
	r.GET("/", func(c web.Context) error { return c.Redirect("/email") })
	r.Route("/email", func(r web.Router) {
		r.GET("/", h.page)
		r.POST("/generate", h.generate)
		r.POST("/preview", h.preview)
		r.POST("/send", h.send)
	})
}

// view restores the last draft and generator selections from the session.
func (h *EmailHandler) view(c web.Context) views.EmailView {
	return views.EmailView{
		Topic:         c.SessionValue(keyEmailTopic),
		Kind:          prompt.DocumentKind(c.SessionValue(keyEmailKind)),
		Tone:          prompt.Tone(c.SessionValue(keyEmailTone)),
		Subject:       c.SessionValue(keyEmailSubject),
		Body:          c.SessionValue(keyEmailBody),
		DefaultSender: h.mail.DefaultSender().Configured(),
	}
}

func (h *EmailHandler) page(c web.Context) error {
	return c.Render(http.StatusOK, views.EmailPage(h.view(c)))
}

func (h *EmailHandler) generate(c web.Context) error {
	var req requests.GenerateEmail
	errs, err := c.Bind(&req)
	if err != nil {
		return web.ErrBadRequest("Invalid form submission.", web.WithError(err))
	}

	v := h.view(c)
	v.Topic = req.Topic
	v.Kind = orDefault(prompt.ParseDocumentKind(req.Kind), prompt.ProductPromotion)
	v.Tone = orDefault(prompt.ParseTone(req.Tone), prompt.Formal)

	if len(errs) > 0 {
		v.Notice = views.Warning(errs.First())
		return c.RenderPartial(http.StatusUnprocessableEntity, views.EmailPage(v), views.EmailPanel(v))
	}

	draft, err := h.gen.GenerateEmail(c, generator.NewEmailRequest(v.Kind, v.Tone, req.Topic))
	if err != nil {
		c.LogWarn("email generation failed", "error", err)
		v.Notice = views.Failure("Failed to generate email: " + err.Error())
		return c.RenderPartial(http.StatusBadGateway, views.EmailPage(v), views.EmailPanel(v))
	}

	if err := c.SetSessionValues(map[string]string{
		keyEmailSubject: draft.Subject,
		keyEmailBody:    draft.Body,
		keyEmailKind:    string(draft.Kind),
		keyEmailTopic:   draft.Topic,
		keyEmailTone:    string(v.Tone),
	}); err != nil {
		c.LogError("failed to store draft", "error", err)
	}

	v.Subject = draft.Subject
	v.Body = draft.Body
	v.Notice = views.Success("Email generated successfully!")
	return c.RenderPartial(http.StatusOK, views.EmailPage(v), views.EmailPanel(v))
}

func (h *EmailHandler) preview(c web.Context) error {
	var req requests.PreviewEmail
	if _, err := c.Bind(&req); err != nil {
		return web.ErrBadRequest("Invalid form submission.", web.WithError(err))
	}

	out, err := h.markdown.Render(req.Body)
	if err != nil {
		return err
	}
	preview := views.EmailPreview(template.HTML(out)) //nolint:gosec // sanitised by the preview policy

	if c.IsHTMX() {
		return c.Render(http.StatusOK, preview)
	}
	v := h.view(c)
	v.Body = req.Body
	v.Preview = template.HTML(out) //nolint:gosec // sanitised by the preview policy
	return c.Render(http.StatusOK, views.EmailPage(v))
}

func (h *EmailHandler) send(c web.Context) error {
	var req requests.SendEmail
	errs, err := c.Bind(&req)
	if err != nil {
		return web.ErrBadRequest("Invalid form submission.", web.WithError(err))
	}

	v := h.view(c)
	v.Body = req.Body
	v.Recipient = req.Recipient
	v.CustomSender = req.CustomSender
	v.SenderEmail = req.SenderEmail

	if len(errs) > 0 {
		v.SendNotice = views.Warning(errs.First())
		return c.RenderPartial(http.StatusUnprocessableEntity, views.EmailPage(v), views.SendNotice(v.SendNotice))
	}

	// The subject follows the draft; a body typed without generating uses the current selections.
	subject := v.Subject
	if subject == "" {
		kind := orDefault(prompt.ParseDocumentKind(req.Kind), prompt.ProductPromotion)
		subject = prompt.EmailSubject(kind, req.Topic)
		v.Subject = subject
	}

	from := h.mail.DefaultSender()
	if req.CustomSender {
		from = mailer.Credentials{Address: req.SenderEmail, Password: req.SenderPassword}
	}

	if err := c.SetSessionValues(map[string]string{keyEmailBody: req.Body}); err != nil {
		c.LogError("failed to store edited draft", "error", err)
	}

	res := h.mail.Send(c, mailer.NewMessage(from, req.Recipient, subject, req.Body))
	if !res.OK() {
		c.LogWarn("email send failed", "reason", res.Reason(), "custom_sender", req.CustomSender)
		v.SendNotice = views.Failure("Failed to send email: " + res.Reason())
		return c.RenderPartial(http.StatusBadGateway, views.EmailPage(v), views.SendNotice(v.SendNotice))
	}

	c.LogInfo("email sent", "custom_sender", req.CustomSender)
	v.SendNotice = views.Success("Email sent successfully!")
	return c.RenderPartial(http.StatusOK, views.EmailPage(v), views.SendNotice(v.SendNotice))
}

func orDefault[E ~string](v, def E) E {
	if v == "" {
		return def
	}
	return v
}
