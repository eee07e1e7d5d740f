package console

import (
	"github.com/cordalabs/adminsdk/pkg/adminsdk"
	"github.com/cordalabs/adminsdk/pkg/routing"
)

// Route names referenced by the guard and the shell.
const (
	RouteLogin       = "login"
	RouteNotFound    = "notFound"
	RouteCompany     = "company"
	RouteCompanyList = "CompanyList"
	RouteUsers       = "users"
	RouteUserList    = "UserList"
)

// CompanyRoutes is the company module's route list.
func CompanyRoutes() []routing.Route {
	return []routing.Route{
		{
			Path: "/company",
			Name: RouteCompany,
			Meta: routing.Meta{
				Locale:       "menu.company",
				RequiresAuth: true,
				Icon:         "icon-company",
				Order:        3,
			},
			Children: []routing.Route{
				{
					Path: "list",
					Name: RouteCompanyList,
					Meta: routing.Meta{
						Locale:       "menu.company.list",
						RequiresAuth: true,
						Roles:        []adminsdk.Role{adminsdk.RoleAdmin, adminsdk.RoleUser},
					},
				},
			},
		},
	}
}

// UserAdminRoutes is the user administration module's route list.
func UserAdminRoutes() []routing.Route {
	return []routing.Route{
		{
			Path: "/users",
			Name: RouteUsers,
			Meta: routing.Meta{
				Locale:       "menu.users",
				RequiresAuth: true,
				Icon:         "icon-user-group",
				Order:        4,
			},
			Children: []routing.Route{
				{
					Path: "list",
					Name: RouteUserList,
					Meta: routing.Meta{
						Locale:       "menu.users.list",
						RequiresAuth: true,
						Roles:        []adminsdk.Role{adminsdk.RoleRoot, adminsdk.RoleAdmin},
					},
				},
			},
		},
	}
}

// AppRoutes assembles the full route table from the explicitly enumerated
// module lists, in declaration order.
func AppRoutes() []routing.Route {
	return routing.Aggregate(CompanyRoutes(), UserAdminRoutes())
}

// LoginRoute is reachable without authentication.
func LoginRoute() routing.Route {
	return routing.Route{
		Path: "/login",
		Name: RouteLogin,
		Meta: routing.Meta{RequiresAuth: false},
	}
}

func NotFoundRoute() routing.Route {
	return routing.Route{
		Path: "/not-found",
		Name: RouteNotFound,
		Meta: routing.Meta{RequiresAuth: false},
	}
}

// WhiteList holds the routes navigable without any menu entry.
func WhiteList() []routing.Route {
	return []routing.Route{LoginRoute(), NotFoundRoute()}
}
