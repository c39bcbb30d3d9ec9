// Package guard decides whether a navigation attempt may proceed based on
// the target route's metadata and the current authentication state.
package guard

import "net/url"

const (
	HomePath     = "/"
	LoginPath    = "/login"
	RegisterPath = "/register"

	// RedirectParam carries the originally requested path through the login
	// redirect so the user can be sent back after authenticating.
	RedirectParam = "redirect"
)

type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
}

// Decision is the outcome of a guard check: either the navigation is allowed,
// or it is redirected to Redirect with optional query parameters.
type Decision struct {
	Allow    bool
	Redirect string
	Query    url.Values
}

// Routes returns the application's route table. Only login and register are
// public; every content view requires authentication.
func Routes() []Route {
	return []Route{
		{Path: LoginPath, Name: "Login", RequiresAuth: false},
		{Path: RegisterPath, Name: "Register", RequiresAuth: false},
		{Path: HomePath, Name: "PostList", RequiresAuth: true},
		{Path: "/posts/{id:[0-9]+}", Name: "PostDetail", RequiresAuth: true},
		{Path: "/posts/create", Name: "PostCreate", RequiresAuth: true},
		{Path: "/posts/{id:[0-9]+}/edit", Name: "PostEdit", RequiresAuth: true},
		{Path: "/categories", Name: "CategoryManage", RequiresAuth: true},
		{Path: "/tags", Name: "TagManage", RequiresAuth: true},
		{Path: "/search", Name: "Search", RequiresAuth: true},
	}
}

// RoutesByName indexes the route table for middleware lookup.
func RoutesByName() map[string]Route {
	out := make(map[string]Route)
	for _, route := range Routes() {
		out[route.Name] = route
	}
	return out
}

// Evaluate is a pure function of the target route and the authentication
// flag. fullPath is the originally requested path including the query string.
func Evaluate(route Route, fullPath string, authenticated bool) Decision {
	if route.RequiresAuth {
		if authenticated {
			return Decision{Allow: true}
		}
		return Decision{
			Redirect: LoginPath,
			Query:    url.Values{RedirectParam: {fullPath}},
		}
	}

	// authenticated users have no business on the login/register views
	if (route.Path == LoginPath || route.Path == RegisterPath) && authenticated {
		return Decision{Redirect: HomePath}
	}

	return Decision{Allow: true}
}

// Target renders the decision's redirect destination as a URL.
func (d Decision) Target() string {
	if len(d.Query) == 0 {
		return d.Redirect
	}
	return d.Redirect + "?" + d.Query.Encode()
}
