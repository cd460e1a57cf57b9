package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/ShinMK-003/FoodOn/internal/webserver"
	"github.com/labstack/echo/v4"
)

// maxAvatarBytes caps avatar uploads at 5 MiB.
const maxAvatarBytes = 5 << 20

type updateProfilePayload struct {
	Name  string `json:"name" form:"name"`
	Phone string `json:"phone" form:"phone"`
}

func registerProfileRoutes() {
	webserver.ApiGET("/profile", getProfile)
	webserver.ApiPUT("/profile", updateProfile)
	webserver.ApiPOST("/profile/avatar", uploadAvatar)

	webserver.ApiGET("/favorites", listFavorites)
	webserver.ApiPOST("/favorites/:productId/toggle", toggleFavorite)
	webserver.ApiDELETE("/favorites/:productId", removeFavorite)
}

func getProfile(c echo.Context) error {
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

func updateProfile(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}
	var payload updateProfilePayload
	if err := c.Bind(&payload); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse profile", err.Error())
	}

	u, err := srv.Profile.Update(c.Request().Context(), ident.UserID, payload.Name, payload.Phone)
	if err != nil {
		if domain.IsKind(err, domain.KindNoChanges) {
			return webserver.OK(c, echo.Map{"changed": false})
		}
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, echo.Map{"changed": true, "profile": u})
}

// uploadAvatar accepts the raw image either as a multipart "image" part or
// as the request body.
func uploadAvatar(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}

	var data []byte
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return webserver.FailError(c, domain.UploadError("failed to read image", err))
		}
		defer f.Close()
		data, err = io.ReadAll(io.LimitReader(f, maxAvatarBytes+1))
		if err != nil {
			return webserver.FailError(c, domain.UploadError("failed to read image", err))
		}
		contentType = fh.Header.Get("Content-Type")
	} else {
		data, err = io.ReadAll(io.LimitReader(c.Request().Body, maxAvatarBytes+1))
		if err != nil {
			return webserver.FailError(c, domain.UploadError("failed to read image", err))
		}
	}

	if len(data) > maxAvatarBytes {
		return webserver.Fail(c, http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "Avatar image exceeds 5 MiB", nil)
	}

	url, err := srv.Profile.UploadAvatar(c.Request().Context(), ident.UserID, data, contentType)
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, echo.Map{"avatar_url": url})
}

func listFavorites(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}
	entries, err := srv.Profile.ListFavorites(c.Request().Context(), ident.UserID)
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, entries)
}

func toggleFavorite(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}

	product, err := srv.Catalog.Get(c.Request().Context(), productID)
	if err != nil {
		return webserver.FailError(c, err)
	}

	favorited, err := srv.Profile.ToggleFavorite(c.Request().Context(), ident.UserID, product)
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, echo.Map{"product_id": c.Param("productId"), "favorited": favorited})
}

func removeFavorite(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	if err := srv.Profile.RemoveFavorite(c.Request().Context(), ident.UserID, productID); err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, echo.Map{"product_id": c.Param("productId")})
}
