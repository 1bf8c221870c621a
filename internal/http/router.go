package http

import (
	"net/http"
	"strings"
)

type RouterConfig struct {
	Assignments *AssignmentHandler
	Calendar    *CalendarHandler
	Catalog     *CatalogHandler
	Middleware  []func(http.Handler) http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	if cfg.Assignments != nil {
		mux.HandleFunc("/assignments", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Assignments.Assign(w, r)
		})
		mux.HandleFunc("/assignments/", func(w http.ResponseWriter, r *http.Request) {
			// /assignments/{id}/resources/{kind}/{resourceID}
			rest := strings.TrimPrefix(r.URL.Path, "/assignments/")
			parts := strings.Split(rest, "/")
			if len(parts) != 4 || parts[1] != "resources" {
				http.NotFound(w, r)
				return
			}
			if r.Method != http.MethodDelete {
				methodNotAllowed(w, http.MethodDelete)
				return
			}
			cfg.Assignments.RemoveResource(w, r, parts[0], parts[2], parts[3])
		})
	}

	if cfg.Calendar != nil {
		mux.HandleFunc("/calendar", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Calendar.Current(w, r)
		})
		calendarActions := map[string]http.HandlerFunc{
			"/calendar/view":     cfg.Calendar.SetView,
			"/calendar/next":     cfg.Calendar.Next,
			"/calendar/previous": cfg.Calendar.Previous,
			"/calendar/today":    cfg.Calendar.Today,
			"/calendar/expand":   cfg.Calendar.Expand,
		}
		for path, action := range calendarActions {
			action := action
			mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					methodNotAllowed(w, http.MethodPost)
					return
				}
				action(w, r)
			})
		}
		mux.HandleFunc("/availability", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Calendar.Availability(w, r)
		})
	}

	if cfg.Catalog != nil {
		catalogListings := map[string]http.HandlerFunc{
			"/catalog/employees":   cfg.Catalog.ListEmployees,
			"/catalog/equipment":   cfg.Catalog.ListEquipment,
			"/catalog/attachments": cfg.Catalog.ListAttachments,
			"/catalog/tools":       cfg.Catalog.ListTools,
			"/catalog/projects":    cfg.Catalog.ListProjects,
		}
		for path, listing := range catalogListings {
			listing := listing
			mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					methodNotAllowed(w, http.MethodGet)
					return
				}
				listing(w, r)
			})
		}
	}

	var handler http.Handler = mux
	if len(cfg.Middleware) > 0 {
		for i := len(cfg.Middleware) - 1; i >= 0; i-- {
			if cfg.Middleware[i] != nil {
				handler = cfg.Middleware[i](handler)
			}
		}
	}

	return handler
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
