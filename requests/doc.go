// Package requests holds the form structs bound by the handlers.
//
// Tags drive the whole input pipeline: `form` names the field, `sanitize`
// cleans it, `validate` checks it and `message` is the warning shown inline
// when the check fails. Fields are declared in the order their warnings take
// precedence.
package requests
