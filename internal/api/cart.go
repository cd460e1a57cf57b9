package api

import (
	"net/http"
	"strconv"

	"github.com/ShinMK-003/FoodOn/internal/cart"
	"github.com/ShinMK-003/FoodOn/internal/webserver"
	"github.com/labstack/echo/v4"
)

type setQuantityPayload struct {
	Quantity int `json:"quantity" form:"quantity"`
}

func registerCartRoutes() {
	webserver.ApiGET("/cart", listCart)
	webserver.ApiPOST("/cart/items/:productId", addToCart)
	webserver.ApiPUT("/cart/items/:productId", setCartQuantity)
	webserver.ApiDELETE("/cart/items/:productId", removeCartLine)
}

func listCart(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}
	lines, err := srv.Cart.List(c.Request().Context(), ident.UserID)
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, echo.Map{
		"lines": lines,
		"total": cart.ComputeTotal(lines),
	})
}

// addToCart puts one unit of the product in the cart; a line that already
// exists gets its quantity bumped instead of a duplicate.
func addToCart(c echo.Context) error {
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

	line, err := srv.Cart.Add(c.Request().Context(), ident.UserID, product)
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, line)
}

func setCartQuantity(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}

	var payload setQuantityPayload
	if err := c.Bind(&payload); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse quantity", err.Error())
	}

	if err := srv.Cart.SetQuantity(c.Request().Context(), ident.UserID, productID, payload.Quantity); err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, echo.Map{"product_id": strconv.FormatInt(productID, 10), "quantity": payload.Quantity})
}

func removeCartLine(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	if err := srv.Cart.Remove(c.Request().Context(), ident.UserID, productID); err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, echo.Map{"product_id": strconv.FormatInt(productID, 10)})
}
