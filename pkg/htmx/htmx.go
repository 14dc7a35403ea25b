package htmx

import "net/http"

// Request headers sent by htmx.
const (
	HeaderRequest = "HX-Request"
	HeaderBoosted = "HX-Boosted"
	HeaderTarget  = "HX-Target"
)

// Response headers understood by htmx.
const (
	HeaderRedirect = "HX-Redirect"
	HeaderPushURL  = "HX-Push-Url"
	HeaderRetarget = "HX-Retarget"
	HeaderReswap   = "HX-Reswap"
	HeaderTrigger  = "HX-Trigger"
)

// IsHTMX reports whether the request was issued by htmx.
// Boosted navigations count as full page requests.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderRequest) == "true" && r.Header.Get(HeaderBoosted) != "true"
}

// Target returns the id of the element htmx will swap into, if any.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderTarget)
}

// Redirect sends a client-side redirect to htmx and a regular 303 otherwise.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	if IsHTMX(r) {
		w.Header().Set(HeaderRedirect, url)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
