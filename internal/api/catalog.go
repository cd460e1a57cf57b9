package api

import (
	"net/http"
	"strconv"

	"github.com/ShinMK-003/FoodOn/internal/catalog"
	"github.com/ShinMK-003/FoodOn/internal/webserver"
	"github.com/labstack/echo/v4"
)

// registerCatalogRoutes registers the menu/product endpoints. Browsing the
// catalog needs no account.
func registerCatalogRoutes() {
	webserver.PubGET("/products", listProducts)
	webserver.PubGET("/products/featured", featuredProducts)
	webserver.PubGET("/products/:id", getProduct)
}

// listProducts returns the product set with the menu screen's client-side
// filter/sort applied server-side: category, free-text title match and a
// comparator key.
func listProducts(c echo.Context) error {
	products, err := srv.Catalog.List(c.Request().Context())
	if err != nil {
		return webserver.FailError(c, err)
	}

	category := c.QueryParam("category")
	search := c.QueryParam("q")
	sortKey := c.QueryParam("sort")

	filtered := catalog.FilterAndSort(products, category, search, sortKey)
	return webserver.OK(c, echo.Map{
		"products":   filtered,
		"categories": catalog.Categories(products),
	})
}

func featuredProducts(c echo.Context) error {
	limit := 4
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}
	products, err := srv.Catalog.Featured(c.Request().Context(), limit)
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, products)
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	p, err := srv.Catalog.Get(c.Request().Context(), id)
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, p)
}
