package routes

import "net/http"

// Group organizes routes under a common prefix.
type Group struct {
	Prefix string
	Routes []Route
}

// Register adds all routes from the given groups to the mux.
// Patterns take the form "METHOD prefix+pattern".
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		for _, route := range group.Routes {
			mux.HandleFunc(route.Full(group.Prefix), route.Handler)
		}
	}
}
