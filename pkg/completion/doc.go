// Package completion calls a hosted OpenAI-compatible chat-completion endpoint.
//
// A call sends a single user message and returns the trimmed content of the
// first choice. There are no retries and no streaming: one Complete call is one
// HTTP round trip.
//
// # Usage
//
//	client := completion.New(completion.Config{
//		APIKey: cfg.APIKey,
//	})
//
//	text, err := client.Complete(ctx, prompt, completion.EmailMaxTokens, completion.DefaultTemperature)
//	if err != nil {
//		if ce, ok := completion.AsError(err); ok {
//			log.Warn("completion failed", "status", ce.StatusCode, "body", ce.Body)
//		}
//		return err
//	}
//
// # Errors
//
// Every failure is an *Error. Non-200 responses carry the status code and raw
// body; transport failures carry the underlying error with a zero status.
// A 200 response without choices is an error too, never an empty string.
//
// # Drivers
//
// Client talks to the endpoint with net/http. OpenAI is an alternative built on
// the openai-go SDK, selected with COMPLETION_DRIVER=openai. Both satisfy
// Completer.
package completion
