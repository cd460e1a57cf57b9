package api

import (
	"net/http"

	"github.com/ShinMK-003/FoodOn/internal/webserver"
	"github.com/labstack/echo/v4"
)

type registerPayload struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type loginPayload struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type resetPayload struct {
	Email string `json:"email" form:"email"`
}

func registerAuthRoutes() {
	webserver.PubPOST("/auth/register", registerAccount)
	webserver.PubPOST("/auth/login", login)
	webserver.PubPOST("/auth/password-reset", sendPasswordReset)
	webserver.ApiGET("/auth/me", currentUser)
	webserver.ApiPOST("/auth/logout", logout)
}

func registerAccount(c echo.Context) error {
	var payload registerPayload
	if err := c.Bind(&payload); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse registration", err.Error())
	}
	user, err := srv.Auth.Register(c.Request().Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.Created(c, user)
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse login", err.Error())
	}
	token, user, err := srv.Auth.Login(c.Request().Context(), payload.Email, payload.Password)
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, echo.Map{"token": token, "user": user})
}

func sendPasswordReset(c echo.Context) error {
	var payload resetPayload
	if err := c.Bind(&payload); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	if err := srv.Auth.SendPasswordReset(c.Request().Context(), payload.Email); err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, echo.Map{"sent": true})
}

// currentUser resolves the token back to the full profile record.
func currentUser(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}
	u, err := srv.Profile.Get(c.Request().Context(), ident.UserID)
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, u)
}

// logout exists for client parity; tokens are stateless, the client just
// discards its copy.
func logout(c echo.Context) error {
	if _, err := webserver.Identity(c); err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, echo.Map{"signed_out": true})
}
