package http

import "net/http"

// NewRouter mounts the page and API handlers. Every mutating route goes
// through the rate limiter except field activity, which browsers send on each
// keystroke and which only clears a marker.
func NewRouter(page *PageHandler, api *EOQHandler, limiter *RateLimiter) http.Handler {
	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", page.Index)
	mux.Handle("/submit", limited(page.Submit))
	mux.Handle("/reset", limited(page.Reset))
	mux.Handle("/theme/toggle", limited(page.ToggleTheme))
	mux.Handle("/log/{id}/dismiss", limited(page.Dismiss))
	mux.HandleFunc("/fields/{field}/activity", page.FieldActivity)

	mux.Handle("/api/eoq/calculate", limited(api.CalculateEOQ))
	mux.HandleFunc("/api/log", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			limited(api.Log).ServeHTTP(w, r)
			return
		}
		api.Log(w, r)
	})
	mux.HandleFunc("/api/theme", api.Theme)
	mux.Handle("/api/theme/toggle", limited(api.ToggleTheme))

	return TraceMiddleware(mux)
}
