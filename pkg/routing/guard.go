package routing

import (
	"context"
	"sync"

	"github.com/cordalabs/adminsdk/pkg/adminsdk"
)

// Action is the terminal outcome of one navigation attempt. Every attempt
// ends in exactly one of proceed or redirect.
type Action int

const (
	ActionProceed Action = iota
	ActionRedirect
)

// Decision is the guard's verdict for one navigation attempt. Target is
// the route name to redirect to when Action is ActionRedirect.
type Decision struct {
	Action Action
	Target string
}

// Progress is the navigation progress indicator. Start is called before
// the guard dispatches and Done after it resolves, on every branch.
type Progress interface {
	Start()
	Done()
}

// NopProgress ignores progress signals.
type NopProgress struct{}

func (NopProgress) Start() {}
func (NopProgress) Done()  {}

// RoleSource supplies the current actor's role. *adminsdk.Session
// satisfies it.
type RoleSource interface {
	Role() adminsdk.Role
}

// MenuSource fetches the server-driven menu. *adminsdk.Client satisfies it.
type MenuSource interface {
	Menu(ctx context.Context) ([]adminsdk.MenuRoute, error)
}

// GuardConfig wires a Guard.
type GuardConfig struct {
	// Roles supplies the role every decision is evaluated against.
	Roles RoleSource

	// Routes is the full static app route table, used to find a fallback
	// destination on permission denial in static-menu mode.
	Routes []Route

	// Whitelist lists routes navigable without any menu entry (login,
	// not-found). In server-menu mode they merge with the fetched menu.
	Whitelist []Route

	// NotFound is the redirect target when no destination qualifies.
	NotFound string

	// MenuFromServer switches the guard to server-menu mode: the target
	// must exist in the merged {fetched menu, whitelist} set in addition
	// to passing the role check.
	MenuFromServer bool

	// Menus is consulted only in server-menu mode.
	Menus MenuSource

	Progress Progress
}

// Guard intercepts every route transition. It consults the session's role
// and the permission rules, and in server-menu mode a remote menu fetched
// once and cached until ClearServerMenu.
type Guard struct {
	cfg GuardConfig

	mu         sync.Mutex
	serverMenu []adminsdk.MenuRoute
	menuLoaded bool
}

func NewGuard(cfg GuardConfig) *Guard {
	if cfg.Progress == nil {
		cfg.Progress = NopProgress{}
	}
	return &Guard{cfg: cfg}
}

// Resolve decides one navigation attempt to route `to`. Permission denial
// is routine, not a fault: it produces a silent redirect decision and a
// nil error. The error is non-nil only when the server menu could not be
// fetched; the decision still redirects in that case.
func (g *Guard) Resolve(ctx context.Context, to Route) (Decision, error) {
	g.cfg.Progress.Start()
	defer g.cfg.Progress.Done()

	allowed := AccessAllowed(to, g.cfg.Roles.Role())

	if g.cfg.MenuFromServer {
		return g.resolveServerMenu(ctx, to, allowed)
	}

	if allowed {
		return Decision{Action: ActionProceed}, nil
	}
	if first, ok := FirstReachable(g.cfg.Routes, g.cfg.Roles.Role()); ok {
		return Decision{Action: ActionRedirect, Target: first.Name}, nil
	}
	return Decision{Action: ActionRedirect, Target: g.cfg.NotFound}, nil
}

func (g *Guard) resolveServerMenu(ctx context.Context, to Route, allowed bool) (Decision, error) {
	// The menu fetch completes before the presence check that depends on
	// it; sequential awaiting, no locking across the network call.
	if !g.MenuLoaded() && !whitelisted(g.cfg.Whitelist, to.Name) {
		if err := g.loadServerMenu(ctx); err != nil {
			return Decision{Action: ActionRedirect, Target: g.cfg.NotFound}, err
		}
	}

	exists := g.menuContains(to.Name)
	if exists && allowed {
		return Decision{Action: ActionProceed}, nil
	}
	return Decision{Action: ActionRedirect, Target: g.cfg.NotFound}, nil
}

// loadServerMenu fetches the menu once; later attempts reuse the cache.
func (g *Guard) loadServerMenu(ctx context.Context) error {
	menu, err := g.cfg.Menus.Menu(ctx)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.serverMenu = menu
	g.menuLoaded = true
	g.mu.Unlock()
	return nil
}

// MenuLoaded reports whether the server menu cache is populated.
func (g *Guard) MenuLoaded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.menuLoaded
}

// ClearServerMenu empties the cache so the next navigation re-fetches.
// Registered as a session teardown hook.
func (g *Guard) ClearServerMenu() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.serverMenu = nil
	g.menuLoaded = false
}

// menuContains checks the merged {server menu, whitelist} set for the
// route name, breadth-first, flattening nested children.
func (g *Guard) menuContains(name string) bool {
	g.mu.Lock()
	queue := make([]menuNode, 0, len(g.serverMenu)+len(g.cfg.Whitelist))
	for _, m := range g.serverMenu {
		queue = append(queue, menuNodeFromServer(m))
	}
	g.mu.Unlock()
	for _, r := range g.cfg.Whitelist {
		queue = append(queue, menuNodeFromRoute(r))
	}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.name == name {
			return true
		}
		queue = append(queue, node.children...)
	}
	return false
}

// menuNode is the common shape BFS runs over; both server menu records and
// whitelisted static routes flatten into it.
type menuNode struct {
	name     string
	children []menuNode
}

func menuNodeFromServer(m adminsdk.MenuRoute) menuNode {
	node := menuNode{name: m.Name}
	for _, child := range m.Children {
		node.children = append(node.children, menuNodeFromServer(child))
	}
	return node
}

func menuNodeFromRoute(r Route) menuNode {
	node := menuNode{name: r.Name}
	for _, child := range r.Children {
		node.children = append(node.children, menuNodeFromRoute(child))
	}
	return node
}

func whitelisted(list []Route, name string) bool {
	for _, r := range list {
		if r.Name == name {
			return true
		}
	}
	return false
}
