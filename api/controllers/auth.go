package controllers

import (
	"net/http"

	"github.com/calebmartin/wishlist-backend/api/responses"
	"github.com/calebmartin/wishlist-backend/api/validators"
	"github.com/calebmartin/wishlist-backend/internal/auth"
	pkgAuth "github.com/calebmartin/wishlist-backend/pkg/auth"
	pkgerrors "github.com/calebmartin/wishlist-backend/pkg/errors"
	"github.com/calebmartin/wishlist-backend/pkg/logger"
)

// AuthRegister handles the sign-up form: username and password required,
// email optional. Success redirects the browser to the login page.
func AuthRegister(svc auth.RegisterService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "register service unavailable"))
			return
		}

		fields, err := validators.ParseForm(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		req := auth.RegisterRequest{
			Username: fields["username"],
			Password: fields["password"],
		}
		if email := fields["email"]; email != "" {
			req.Email = &email
		}
		if err := validators.ValidateStruct(&req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Register(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithUsername(r.Context(), user.Username), "user registered")
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

// AuthLogin handles the login form, sets the HTTP-only session cookie
// and redirects to the creator page.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		fields, err := validators.ParseForm(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		req := auth.LoginRequest{
			Username: fields["username"],
			Password: fields["password"],
		}
		if err := validators.ValidateStruct(&req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pkgAuth.SetSessionCookie(w, result.AccessToken)
		if logg != nil {
			logg.Info(logg.WithUsername(r.Context(), result.User.Username), "user logged in")
		}
		http.Redirect(w, r, "/creator", http.StatusSeeOther)
	}
}

// AuthLogout clears the session cookie and redirects to the login page.
func AuthLogout(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pkgAuth.ClearSessionCookie(w)
		if logg != nil {
			logg.Info(r.Context(), "user logged out")
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
