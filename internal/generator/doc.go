// Package generator produces email drafts and social media descriptions.
//
// A Service builds the prompt with package prompt, runs one completion and
// shapes the answer: email bodies are paired with a subject built from the
// document kind and topic, hashtag answers are split at the first blank line.
package generator
