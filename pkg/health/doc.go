// Package health serves liveness and readiness checks.
//
// Liveness always answers OK. Readiness runs every registered check in
// parallel and answers 503 if any of them fails. Append ?format=json or send
// Accept: application/json for a per-check report.
package health
