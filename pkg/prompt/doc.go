// Package prompt builds the natural-language instructions sent to the
// completion endpoint.
//
// The package is a set of pure functions over small closed enumerations.
// Calling a builder twice with the same inputs always yields the same string.
//
// # Email Prompts
//
// BuildEmail selects an instruction template by DocumentKind, interpolates the
// lower-cased tone and the topic, and appends a directive asking the model to
// emit only the email body starting at the subject line:
//
//	p := prompt.BuildEmail("Acme Soap", prompt.ProductPromotion, prompt.Friendly)
//	// Write a friendly marketing email to promote the product: Acme Soap. Only write ...
//
// Unknown document kinds fall back to a generic "email about" template rather
// than failing.
//
// # Hashtag Prompts
//
// BuildHashtag composes a single sentence asking for a description, a blank
// line, and a comma-separated list of hashtags:
//
//	p := prompt.BuildHashtag("skincare", prompt.BeautyLovers, prompt.Instagram, prompt.Casual, prompt.ShareTips)
//
// # Form Values
//
// Every enumeration has a Parse function accepting either the slug value
// ("product_promotion") or the display label ("Product Promotion"), and a
// Label method for rendering.
package prompt
