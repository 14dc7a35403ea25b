package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semhq/campaigner/handlers"
	"github.com/semhq/campaigner/internal/generator"
	"github.com/semhq/campaigner/internal/web"
	"github.com/semhq/campaigner/pkg/mailer"
	"github.com/semhq/campaigner/pkg/markdown"
	"github.com/semhq/campaigner/pkg/session"
)

type fakeCompleter struct {
	err     error
	reply   string
	prompts []string
	mu      sync.Mutex
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, _ int, _ float64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeMailer struct {
	result mailer.Result
	def    mailer.Credentials
	sent   []mailer.Message
	mu     sync.Mutex
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) mailer.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.result
}

func (f *fakeMailer) DefaultSender() mailer.Credentials { return f.def }

func newApp(t *testing.T, llm *fakeCompleter, mail *fakeMailer) *web.App {
	t.Helper()
	gen, err := generator.New(llm)
	require.NoError(t, err)

	store := session.NewMemoryStore(session.WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	return web.New(
		web.WithSession(store),
		web.WithErrorHandler(handlers.ErrorHandler),
		web.WithNotFoundHandler(handlers.NotFound),
		web.WithHandlers(
			handlers.NewEmailHandler(gen, mail, markdown.New()),
			handlers.NewHashtagHandler(gen),
		),
	)
}

func post(path string, form url.Values, htmx bool, cookies ...*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		r.Header.Set("HX-Request", "true")
	}
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func serve(app http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, r)
	return rec
}

func TestEmail_Index(t *testing.T) {
	t.Parallel()

	app := newApp(t, &fakeCompleter{}, &fakeMailer{})

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/email", rec.Header().Get("Location"))

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/email", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="generator-form"`)
	assert.Contains(t, rec.Body.String(), "No default sender is configured")
}

func TestEmail_Generate(t *testing.T) {
	t.Parallel()

	llm := &fakeCompleter{reply: "Dear reader, meet our new bottle."}
	app := newApp(t, llm, &fakeMailer{})

	rec := serve(app, post("/email/generate", url.Values{
		"topic": {"Eco bottle"},
		"kind":  {"event_invitation"},
		"tone":  {"casual"},
	}, true))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Email generated successfully!")
	assert.Contains(t, body, "Dear reader, meet our new bottle.")
	assert.Contains(t, body, "Event Invitation regarding Eco bottle")
	assert.NotContains(t, body, "<html")

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Eco bottle")

	// The draft survives a reload.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	r := httptest.NewRequest(http.MethodGet, "/email", nil)
	r.AddCookie(cookies[0])
	rec = serve(app, r)
	assert.Contains(t, rec.Body.String(), "Dear reader, meet our new bottle.")
}

func TestEmail_Generate_EmptyTopic(t *testing.T) {
	t.Parallel()

	llm := &fakeCompleter{reply: "unused"}
	app := newApp(t, llm, &fakeMailer{})

	rec := serve(app, post("/email/generate", url.Values{"topic": {"   "}}, false))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a topic first.")
	assert.Contains(t, rec.Body.String(), "<html")
	assert.Empty(t, llm.prompts)
	assert.Empty(t, rec.Result().Cookies())
}

func TestEmail_Generate_TopicKeptVerbatim(t *testing.T) {
	t.Parallel()

	for _, topic := range []string{"Widget <Pro> for AT&T", "<launch>"} {
		llm := &fakeCompleter{reply: "Hello."}
		app := newApp(t, llm, &fakeMailer{})

		rec := serve(app, post("/email/generate", url.Values{"topic": {"  " + topic + " "}}, true))

		require.Equal(t, http.StatusOK, rec.Code, topic)
		assert.Contains(t, rec.Body.String(), "Email generated successfully!", topic)
		require.Len(t, llm.prompts, 1, topic)
		assert.Contains(t, llm.prompts[0], topic)
	}
}

func TestEmail_Generate_UpstreamFailure(t *testing.T) {
	t.Parallel()

	app := newApp(t, &fakeCompleter{err: errors.New("upstream down")}, &fakeMailer{})

	rec := serve(app, post("/email/generate", url.Values{"topic": {"Eco bottle"}}, true))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to generate email: upstream down")
}

func TestEmail_Preview(t *testing.T) {
	t.Parallel()

	app := newApp(t, &fakeCompleter{}, &fakeMailer{})

	rec := serve(app, post("/email/preview", url.Values{
		"body": {"# Hello\n\n**bold** <script>alert(1)</script>"},
	}, true))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1")
	assert.Contains(t, body, "<strong>bold</strong>")
	assert.NotContains(t, body, "<script>")
}

func TestEmail_Send(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		form       url.Values
		def        mailer.Credentials
		result     mailer.Result
		wantText   string
		wantSent   bool
		wantFrom   string
		wantSecret string
	}{
		{
			name:     "empty body",
			form:     url.Values{"recipient": {"to@example.com"}},
			wantText: "Please generate an email first or edit the email before sending.",
		},
		{
			name:     "missing recipient",
			form:     url.Values{"body": {"Hi"}},
			wantText: "Please enter recipient email to send the email.",
		},
		{
			name:     "custom sender without password",
			form:     url.Values{"body": {"Hi"}, "recipient": {"to@example.com"}, "custom_sender": {"on"}, "sender_email": {"me@example.com"}},
			wantText: "Please enter both email and app password if using custom sender.",
		},
		{
			name:       "default sender",
			form:       url.Values{"body": {"Hi"}, "recipient": {"to@example.com"}, "topic": {"Eco bottle"}},
			def:        mailer.Credentials{Address: "ops@example.com", Password: "app-pw"},
			result:     mailer.Sent(),
			wantText:   "Email sent successfully!",
			wantSent:   true,
			wantFrom:   "ops@example.com",
			wantSecret: "app-pw",
		},
		{
			name:       "custom sender",
			form:       url.Values{"body": {"Hi"}, "recipient": {"to@example.com"}, "custom_sender": {"on"}, "sender_email": {"me@example.com"}, "sender_password": {"pw"}},
			def:        mailer.Credentials{Address: "ops@example.com", Password: "app-pw"},
			result:     mailer.Sent(),
			wantText:   "Email sent successfully!",
			wantSent:   true,
			wantFrom:   "me@example.com",
			wantSecret: "pw",
		},
		{
			name:     "delivery failure",
			form:     url.Values{"body": {"Hi"}, "recipient": {"to@example.com"}},
			result:   mailer.Failed("535 authentication failed"),
			wantText: "Failed to send email: 535 authentication failed",
			wantSent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mail := &fakeMailer{def: tt.def, result: tt.result}
			app := newApp(t, &fakeCompleter{}, mail)

			rec := serve(app, post("/email/send", tt.form, true))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantText)
			if !tt.wantSent {
				assert.Empty(t, mail.sent)
				return
			}
			require.Len(t, mail.sent, 1)
			msg := mail.sent[0]
			assert.Equal(t, "to@example.com", msg.RecipientAddress)
			assert.Equal(t, "Hi", msg.Body)
			if tt.wantFrom != "" {
				assert.Equal(t, tt.wantFrom, msg.SenderAddress)
				assert.Equal(t, tt.wantSecret, msg.SenderCredential)
			}
		})
	}
}

func TestEmail_Send_UsesDraftSubject(t *testing.T) {
	t.Parallel()

	mail := &fakeMailer{result: mailer.Sent()}
	app := newApp(t, &fakeCompleter{reply: "Draft body"}, mail)

	rec := serve(app, post("/email/generate", url.Values{"topic": {"Summer sale"}, "kind": {"follow_up"}}, true))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = serve(app, post("/email/send", url.Values{
		"body":      {"Edited body"},
		"recipient": {"to@example.com"},
		"kind":      {"product_promotion"},
		"topic":     {"Something else"},
	}, true, cookies[0]))

	assert.Contains(t, rec.Body.String(), "Email sent successfully!")
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "Follow-up Message regarding Summer sale", mail.sent[0].Subject)
	assert.Equal(t, "Edited body", mail.sent[0].Body)
}

func TestEmail_Send_SubjectWithoutDraft(t *testing.T) {
	t.Parallel()

	mail := &fakeMailer{result: mailer.Sent()}
	app := newApp(t, &fakeCompleter{}, mail)

	serve(app, post("/email/send", url.Values{
		"body":      {"Hand written"},
		"recipient": {"to@example.com"},
		"topic":     {"Launch"},
	}, true))

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "Product Promotion regarding Launch", mail.sent[0].Subject)
}

func TestHashtags_Generate(t *testing.T) {
	t.Parallel()

	llm := &fakeCompleter{reply: "Glow all day.\n\n#skincare #glow"}
	app := newApp(t, llm, &fakeMailer{})

	rec := serve(app, post("/hashtags/generate", url.Values{
		"category": {"skincare"},
		"audience": {"beauty_lovers"},
		"platform": {"instagram"},
	}, true))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Generated successfully!")
	assert.Contains(t, body, "Glow all day.")
	assert.Contains(t, body, "#skincare #glow")

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "skincare")
}

func TestHashtags_Generate_CategoryKeptVerbatim(t *testing.T) {
	t.Parallel()

	llm := &fakeCompleter{reply: "Glow all day.\n\n#skincare"}
	app := newApp(t, llm, &fakeMailer{})

	rec := serve(app, post("/hashtags/generate", url.Values{"category": {"<launch> for AT&T"}}, true))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "<launch> for AT&T")
}

func TestHashtags_Generate_EmptyCategory(t *testing.T) {
	t.Parallel()

	llm := &fakeCompleter{}
	app := newApp(t, llm, &fakeMailer{})

	rec := serve(app, post("/hashtags/generate", url.Values{"category": {""}}, true))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a category or topic.")
	assert.Empty(t, llm.prompts)
}

func TestHashtags_Generate_UpstreamFailure(t *testing.T) {
	t.Parallel()

	app := newApp(t, &fakeCompleter{err: errors.New("quota exceeded")}, &fakeMailer{})

	rec := serve(app, post("/hashtags/generate", url.Values{"category": {"skincare"}}, false))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to generate hashtags and description: quota exceeded")
}

func TestHashtags_Page(t *testing.T) {
	t.Parallel()

	app := newApp(t, &fakeCompleter{}, &fakeMailer{})

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/hashtags", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hx-post="/hashtags/generate"`)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	app := newApp(t, &fakeCompleter{}, &fakeMailer{})

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "The page you are looking for does not exist.")
}
