package controllers

import (
	"net/http"

	"github.com/calebmartin/wishlist-backend/api/middleware"
	"github.com/calebmartin/wishlist-backend/api/validators"
	"github.com/calebmartin/wishlist-backend/internal/auth"
	pkgAuth "github.com/calebmartin/wishlist-backend/pkg/auth"
	"github.com/calebmartin/wishlist-backend/pkg/logger"
	"github.com/calebmartin/wishlist-backend/pkg/render"
)

// PageRoot sends browsers to the public viewer page.
func PageRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/viewer", http.StatusSeeOther)
	}
}

// PageViewer renders the public wishlist browser. The session cookie is
// checked opportunistically so the page can greet a logged-in user, but
// an anonymous visitor sees the same lists.
func PageViewer(renderer *render.Renderer, resolver middleware.IdentityResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{
			"Role":     string(middleware.RoleClaimFromContext(r.Context())),
			"Username": "",
		}
		if cookie, err := r.Cookie(pkgAuth.SessionCookieName); err == nil {
			if identity, err := resolver.Resolve(r.Context(), cookie.Value); err == nil {
				data["Username"] = identity.Username
			}
		}
		if err := renderer.Page(w, "viewer.html", data); err != nil && logg != nil {
			logg.Error(r.Context(), "render viewer page", err)
		}
	}
}

// PageCreator renders the wishlist management page. Unlike the JSON API
// this responds to a missing session with a redirect to the login form,
// since the caller is a browser.
func PageCreator(renderer *render.Renderer, resolver middleware.IdentityResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(pkgAuth.SessionCookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		identity, err := resolver.Resolve(r.Context(), cookie.Value)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		data := map[string]any{
			"Role":     string(middleware.RoleClaimFromContext(r.Context())),
			"Username": identity.Username,
		}
		if err := renderer.Page(w, "creator.html", data); err != nil && logg != nil {
			logg.Error(r.Context(), "render creator page", err)
		}
	}
}

// PageLogin renders the login form.
func PageLogin(renderer *render.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := renderer.Page(w, "login.html", map[string]any{}); err != nil && logg != nil {
			logg.Error(r.Context(), "render login page", err)
		}
	}
}

// PageRegister renders the registration form.
func PageRegister(renderer *render.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := renderer.Page(w, "register.html", map[string]any{}); err != nil && logg != nil {
			logg.Error(r.Context(), "render register page", err)
		}
	}
}

// SetRole stores the requested UI role in the legacy plaintext cookie and
// bounces back to the matching page. The cookie only steers which page
// the UI shows; it never authorizes anything.
func SetRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := validators.ParseForm(r)
		if err != nil {
			http.Redirect(w, r, "/viewer", http.StatusSeeOther)
			return
		}

		claim := auth.ParseRoleClaim(form["role"])
		middleware.SetRoleCookie(w, claim)

		target := "/viewer"
		if claim == auth.RoleCreator {
			target = "/creator"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}
