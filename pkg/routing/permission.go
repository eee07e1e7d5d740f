package routing

import "github.com/cordalabs/adminsdk/pkg/adminsdk"

// AccessAllowed decides whether role may enter the route. Access is a
// permissive OR over four independent escape hatches: the route does not
// require auth, it declares no role list, its list carries the wildcard,
// or its list contains the role.
func AccessAllowed(r Route, role adminsdk.Role) bool {
	if !r.Meta.RequiresAuth {
		return true
	}
	if len(r.Meta.Roles) == 0 {
		return true
	}
	for _, allowed := range r.Meta.Roles {
		if allowed == Wildcard || allowed == role {
			return true
		}
	}
	return false
}

// FirstReachable returns the first route whose declared role list admits
// the role. The traversal is breadth-first over a queue: siblings are
// visited in declaration order before any of their children, which makes
// the redirect target deterministic. Routes without a role list are
// skipped; only an explicit wildcard or role match counts.
func FirstReachable(routes []Route, role adminsdk.Role) (Route, bool) {
	queue := append([]Route(nil), routes...)
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		for _, allowed := range r.Meta.Roles {
			if allowed == Wildcard || allowed == role {
				return r, true
			}
		}
		queue = append(queue, r.Children...)
	}
	return Route{}, false
}
