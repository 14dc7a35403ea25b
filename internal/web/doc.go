// Package web is the HTTP kernel of the campaigner UI: a chi router behind a
// small Context API with htmx-aware rendering, form binding with sanitizing
// and validation, cookie sessions and graceful shutdown.
//
// Handlers return errors instead of writing failure responses themselves;
// the app's ErrorHandler turns them into pages or fragments. For htmx
// requests the ResponseWriter reports non-200 statuses as 200 so fragments
// are always swapped, while Status() keeps the real code for logging.
//
// Sessions are saved lazily: the first call to Context.Session registers a
// hook that persists a changed session right before headers are written.
package web
