package generator

import "errors"

var (
	// ErrNilCompleter is returned by New when no completion backend is supplied.
	ErrNilCompleter = errors.New("generator: completer is required")

	// ErrEmptyTopic indicates an email request without a topic.
	ErrEmptyTopic = errors.New("generator: topic is required")

	// ErrEmptyCategory indicates a hashtag request without a category.
	ErrEmptyCategory = errors.New("generator: category is required")
)
