// Package views renders the campaigner pages and htmx fragments.
//
// Markup lives in embedded html/template files; each exported constructor
// returns a templ.Component so handlers render pages and fragments through
// the same Render and RenderPartial calls. Fragments carry stable ids
// (email-panel, send-notice, preview, hashtag-panel) that the forms target.
package views
