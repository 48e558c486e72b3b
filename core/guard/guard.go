// Package guard decides, per navigation, whether the current viewer may
// reach a view. Decisions are never cached: a token revoked mid-session is
// caught on the next guarded navigation.
package guard

import (
	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/core/nav"
	"github.com/seekhobharat/client/core/session"
)

// Decision is the outcome of a guard check: either the view renders, or the
// client navigates to RedirectTo instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision                { return Decision{Allowed: true} }
func redirect(route string) Decision { return Decision{RedirectTo: route} }

type Guard struct {
	sessions *session.Store
	log      core.Logger
}

func New(sessions *session.Store, log core.Logger) *Guard {
	return &Guard{sessions: sessions, log: log}
}

// Authorize gates a navigation to route against an allow-list. An empty
// allow-list is an authentication-only gate. There is no forbidden state:
// every refusal is a redirect to the login view. A token that fails to
// decode is destroyed on the spot (fail closed) before redirecting.
func (g *Guard) Authorize(route string, allowed []session.Role) Decision {
	sess := g.sessions.Current()
	if !sess.Present() {
		return redirect(nav.RouteLogin)
	}

	claims, err := session.DecodeClaims(sess.Token)
	if err != nil {
		g.sessions.ForceClear()
		g.log.Warn("invalid session token cleared", map[string]interface{}{"route": route}, err)
		return redirect(nav.RouteLogin)
	}

	if len(allowed) == 0 {
		return allow()
	}
	for _, role := range allowed {
		if claims.Role == role {
			return allow()
		}
	}
	return redirect(nav.RouteLogin)
}

// AuthorizeRoute is Authorize with the allow-list taken from the route table.
// Unlisted routes are public.
func (g *Guard) AuthorizeRoute(route string) Decision {
	roles, guarded := nav.RolesFor(route)
	if !guarded {
		return allow()
	}
	return g.Authorize(route, roles)
}

// RedirectAuthed is the inverse guard, for views that should be unreachable
// once authenticated (the login view itself). A valid session redirects to
// the role's home; anything else renders the requested view.
func (g *Guard) RedirectAuthed(route string) Decision {
	sess := g.sessions.Current()
	if !sess.Present() {
		return allow()
	}
	claims, err := session.DecodeClaims(sess.Token)
	if err != nil {
		g.sessions.ForceClear()
		return allow()
	}
	return redirect(nav.Home(claims.Role))
}
