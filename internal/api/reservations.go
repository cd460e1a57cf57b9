package api

import (
	"net/http"
	"strconv"

	"github.com/ShinMK-003/FoodOn/internal/reservation"
	"github.com/ShinMK-003/FoodOn/internal/webserver"
	"github.com/labstack/echo/v4"
)

func registerReservationRoutes() {
	webserver.ApiGET("/reservations", listReservations)
	webserver.ApiGET("/reservations/:id", getReservation)
	webserver.ApiPOST("/reservations", createReservation)
	webserver.ApiGET("/reservations/export.csv", exportReservations)
}

// createReservation runs the checkout flow. The response is 201 as soon as
// the reservation row is durable; a failed cart clear is reported in the
// body, never by failing the request.
func createReservation(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}

	var in reservation.SubmitInput
	if err := c.Bind(&in); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse reservation", err.Error())
	}

	result, err := srv.Reservations.Submit(c.Request().Context(), ident.UserID, in)
	if err != nil {
		return webserver.FailError(c, err)
	}

	body := echo.Map{
		"reservation":  result.Reservation,
		"items":        result.Items,
		"cart_cleared": result.CartCleared,
	}
	if !result.CartCleared {
		body["warning"] = "reservation confirmed, but your cart could not be cleared"
	}
	return webserver.Created(c, body)
}

func listReservations(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}
	list, err := srv.Reservations.ListByUser(c.Request().Context(), ident.UserID)
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, list)
}

// getReservation re-reads one reservation with its decoded item snapshot
// (confirmation view).
func getReservation(c echo.Context) error {
	ident, err := webserver.Identity(c)
	if err != nil {
		return webserver.FailError(c, err)
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID", nil)
	}
	res, err := srv.Reservations.Get(c.Request().Context(), ident.UserID, id)
	if err != nil {
		return webserver.FailError(c, err)
	}
	items, err := res.Items()
	if err != nil {
		return webserver.FailError(c, err)
	}
	return webserver.OK(c, echo.Map{"reservation": res, "items": items})
}

func exportReservations(c echo.Context) error {
	if _, err := webserver.Identity(c); err != nil {
		return webserver.FailError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="reservations.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return srv.Reservations.ExportCSV(c.Request().Context(), c.Response())
}
