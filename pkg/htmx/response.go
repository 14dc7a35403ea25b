package htmx

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Swap is an hx-swap strategy.
type Swap string

const (
	SwapInnerHTML Swap = "innerHTML"
	SwapOuterHTML Swap = "outerHTML"
	SwapNone      Swap = "none"
)

// Component matches templ.Component without importing templ here.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Response collects headers and out-of-band fragments for a partial render.
type Response struct {
	OOB      []Component
	Retarget string
	Reswap   Swap
	PushURL  string
	Triggers []string
}

// Option configures a Response.
type Option func(*Response)

// NewResponse applies opts to an empty Response.
func NewResponse(opts ...Option) *Response {
	r := &Response{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithOOB appends fragments rendered after the main component.
// Each fragment must carry its own id and hx-swap-oob attribute.
func WithOOB(components ...Component) Option {
	return func(r *Response) { r.OOB = append(r.OOB, components...) }
}

// WithRetarget swaps the response into selector instead of the request target.
func WithRetarget(selector string) Option {
	return func(r *Response) { r.Retarget = selector }
}

// WithReswap overrides the swap strategy.
func WithReswap(s Swap) Option {
	return func(r *Response) { r.Reswap = s }
}

// WithPushURL pushes url into the browser history.
func WithPushURL(url string) Option {
	return func(r *Response) { r.PushURL = url }
}

// WithTrigger fires client-side events after the response arrives.
func WithTrigger(events ...string) Option {
	return func(r *Response) { r.Triggers = append(r.Triggers, events...) }
}

// WriteHeaders sets the htmx response headers. It must run before WriteHeader.
func (r *Response) WriteHeaders(w http.ResponseWriter) {
	if r == nil {
		return
	}
	h := w.Header()
	if r.Retarget != "" {
		h.Set(HeaderRetarget, r.Retarget)
	}
	if r.Reswap != "" {
		h.Set(HeaderReswap, string(r.Reswap))
	}
	if r.PushURL != "" {
		h.Set(HeaderPushURL, r.PushURL)
	}
	if len(r.Triggers) > 0 {
		h.Set(HeaderTrigger, strings.Join(r.Triggers, ", "))
	}
}

// RenderOOB writes every out-of-band fragment to w in order.
func (r *Response) RenderOOB(ctx context.Context, w io.Writer) error {
	if r == nil {
		return nil
	}
	for _, c := range r.OOB {
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
