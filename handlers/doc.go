// Package handlers implements the campaigner pages.
//
// Every form posts through htmx and gets a fragment back; without htmx the
// same routes render the full page. Validation warnings and upstream failures
// are shown inline and never reach the error handler. The last generated
// draft and hashtag result live in the browser session so a reload shows them.
package handlers
