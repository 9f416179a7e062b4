package handlers

import (
	"net/http"

	"github.com/paysinc/paysinc/internal/handlers/render"
	"github.com/paysinc/paysinc/internal/logger"
)

// tokenPairResponse is returned by register and login
type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Username     string `json:"username"`
}

func handleRegister(authService authService, l logger.Logger) http.Handler {
	type request struct {
		Username string `json:"username" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6,max=128"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		user, pair, err := authService.Register(r.Context(), data.Email, data.Password, data.Username)
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to register user", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSONStatus(w, tokenPairResponse{
			AccessToken:  pair.Access.Value,
			RefreshToken: pair.Refresh.Value,
			Username:     user.Username,
		}, http.StatusCreated)
	})
}

func handleLogin(authService authService, l logger.Logger) http.Handler {
	type request struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		user, pair, err := authService.Login(r.Context(), data.Email, data.Password)
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to login user", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, tokenPairResponse{
			AccessToken:  pair.Access.Value,
			RefreshToken: pair.Refresh.Value,
			Username:     user.Username,
		})
	})
}

func handleRefresh(authService authService, l logger.Logger) http.Handler {
	type request struct {
		Token string `json:"token" validate:"required"`
	}
	type response struct {
		AccessToken string `json:"accessToken"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		access, err := authService.Refresh(r.Context(), data.Token)
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to refresh access token", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, response{AccessToken: access.Value})
	})
}

func handleLogout(authService authService, l logger.Logger) http.Handler {
	type request struct {
		Token string `json:"token" validate:"required"`
	}
	type response struct {
		Message string `json:"message"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		// Deleting an unknown token is still a successful logout
		if err := authService.Logout(r.Context(), data.Token); err != nil {
			l.Error("Failed to logout", "error", err)
			render.DomainError(w, err)
			return
		}

		render.JSON(w, response{Message: "Logout successful"})
	})
}
