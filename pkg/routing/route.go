// Package routing models the console's client-side route table and decides,
// on every navigation attempt, whether the current actor may proceed.
package routing

import "github.com/cordalabs/adminsdk/pkg/adminsdk"

// Wildcard in a route's role list grants access to every role, including
// the unauthenticated default.
const Wildcard adminsdk.Role = "*"

// Meta is the static access requirement and menu metadata declared
// alongside each route.
type Meta struct {
	// RequiresAuth gates the route behind authentication. When false the
	// route is reachable by anyone regardless of role.
	RequiresAuth bool

	// Roles lists the roles allowed on this route. Empty means no role
	// restriction; Wildcard admits every role.
	Roles []adminsdk.Role

	Locale string
	Icon   string
	Order  int
}

// Route is one statically-declared route record. Children nest arbitrarily.
type Route struct {
	Path     string
	Name     string
	Meta     Meta
	Children []Route
}

// Aggregate flattens per-module route lists into the app route table,
// preserving declaration order. Modules are enumerated explicitly at
// startup rather than discovered.
func Aggregate(modules ...[]Route) []Route {
	var out []Route
	for _, m := range modules {
		out = append(out, m...)
	}
	return out
}

// Find looks a route up by name, descending into children.
func Find(routes []Route, name string) (Route, bool) {
	for _, r := range routes {
		if r.Name == name {
			return r, true
		}
		if found, ok := Find(r.Children, name); ok {
			return found, true
		}
	}
	return Route{}, false
}
