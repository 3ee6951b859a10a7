package router

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/gostaff/internal/pkg/config"
)

// middlewareMaintenance answers 503 for routes listed in
// app.maintenance.endpoints. An entry is either a route ("/api/staff") or a
// method and route ("POST /api/staff").
func middlewareMaintenance(cfg config.Config) Middleware {
	endpoints := make(map[string]struct{})
	if cfg != nil {
		for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
			method, route, found := strings.Cut(strings.TrimSpace(endpoint), " ")
			if found {
				endpoint = strings.ToUpper(method) + " " + strings.TrimSpace(route)
			}
			if endpoint == "" {
				continue
			}
			endpoints[endpoint] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		if len(endpoints) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			_, blockedRoute := endpoints[route]
			_, blockedMethod := endpoints[r.Method+" "+route]
			if blockedRoute || blockedMethod {
				writeJSON(w, errorResponse{Message: "service is under maintenance"}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
