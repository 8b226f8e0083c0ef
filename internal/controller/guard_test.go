package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticAuth bool

func (a staticAuth) IsAuthenticated() bool { return bool(a) }

func TestGuard_Resolve(t *testing.T) {
	tests := []struct {
		name  string
		auth  Authenticator
		route Route
		want  Route
	}{
		{name: "simulator with session", auth: staticAuth(true), route: RouteSimulator, want: RouteSimulator},
		{name: "simulator without session", auth: staticAuth(false), route: RouteSimulator, want: RouteLogin},
		{name: "nil session", auth: nil, route: RouteSimulator, want: RouteLogin},
		{name: "root", auth: staticAuth(true), route: RouteRoot, want: RouteLogin},
		{name: "unknown", auth: staticAuth(true), route: Route("/nope"), want: RouteLogin},
		{name: "login is public", auth: staticAuth(false), route: RouteLogin, want: RouteLogin},
		{name: "register is public", auth: staticAuth(true), route: RouteRegister, want: RouteRegister},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewGuard(tt.auth).Resolve(tt.route))
		})
	}
}
