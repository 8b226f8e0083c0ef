package controller

// Route is a navigable client screen.
type Route string

const (
	RouteRoot      Route = "/"
	RouteLogin     Route = "/login"
	RouteRegister  Route = "/register"
	RouteSimulator Route = "/simulator"
)

// Authenticator reports whether a credential is held. The client session
// satisfies it.
type Authenticator interface {
	IsAuthenticated() bool
}

// Guard decides which route is rendered for a requested one.
type Guard struct {
	session Authenticator
}

func NewGuard(session Authenticator) Guard {
	return Guard{session: session}
}

// Resolve returns the route to render. The simulator requires a held
// credential; the root and unknown routes go to the login screen.
func (g Guard) Resolve(route Route) Route {
	switch route {
	case RouteLogin, RouteRegister:
		return route
	case RouteSimulator:
		if g.session != nil && g.session.IsAuthenticated() {
			return RouteSimulator
		}
		return RouteLogin
	default:
		return RouteLogin
	}
}
