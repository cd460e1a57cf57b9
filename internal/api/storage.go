package api

import (
	"errors"
	"net/http"

	"github.com/ShinMK-003/FoodOn/internal/blobstore"
	"github.com/ShinMK-003/FoodOn/internal/webserver"
	"github.com/labstack/echo/v4"
)

// registerStorageRoutes serves stored blobs back under their durable URL.
// Avatar URLs written to profiles resolve here.
func registerStorageRoutes() {
	webserver.PubGET("/storage/*", serveBlob)
}

func serveBlob(c echo.Context) error {
	key := c.Param("*")
	data, contentType, err := srv.Blobs.Get(key)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return webserver.Fail(c, http.StatusNotFound, "NOT_FOUND", "Object not found", nil)
		}
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_READ_ERROR", "Failed to read object", nil)
	}
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Blob(http.StatusOK, contentType, data)
}
