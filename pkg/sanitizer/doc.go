// Package sanitizer cleans user input and rendered HTML with bluemonday policies.
package sanitizer
