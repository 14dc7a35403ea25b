// Package htmx reads htmx request headers and writes htmx response headers.
//
// Handlers render a fragment for htmx requests and a full page otherwise:
//
//	if htmx.IsHTMX(r) {
//		return render(panel, htmx.WithTrigger("draft-updated"))
//	}
package htmx
