package webserver

import (
	"fmt"
	"net/http"

	"github.com/ShinMK-003/FoodOn/config"
	"github.com/ShinMK-003/FoodOn/internal/auth"
	"github.com/ShinMK-003/FoodOn/internal/domain"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const identityKey = "identity"

type WebContext struct {
	Server *echo.Echo
	config *config.AppConfig
	pubG   *echo.Group
	apiG   *echo.Group
}

var server *WebContext

// Init builds the echo server: public routes under /api/v1, token-guarded
// routes under the same prefix behind the JWT middleware.
func Init(cfg *config.AppConfig, authSvc *auth.Service) *WebContext {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(ZapLogger())

	pub := e.Group("/api/v1")
	api := e.Group("/api/v1")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Web.JwtSecret),
		ErrorHandler: func(c echo.Context, err error) error {
			return FailError(c, domain.AuthRequiredError("authentication required"))
		},
		SuccessHandler: func(c echo.Context) {
			// Re-verify through the auth service so handlers get a typed
			// identity instead of raw claims.
			tokenStr := extractToken(c)
			ident, err := authSvc.Verify(tokenStr)
			if err == nil {
				c.Set(identityKey, ident)
			}
		},
	}))

	server = &WebContext{Server: e, config: cfg, pubG: pub, apiG: api}
	return server
}

func extractToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(h) > len(prefix) && h[:len(prefix)] == prefix {
		return h[len(prefix):]
	}
	return ""
}

// Identity returns the authenticated caller, or an AuthRequiredError when
// the request carries no valid identity.
func Identity(c echo.Context) (*auth.Identity, error) {
	ident, ok := c.Get(identityKey).(*auth.Identity)
	if !ok || ident == nil || ident.UserID == 0 {
		return nil, domain.AuthRequiredError("authentication required")
	}
	return ident, nil
}

// ZapLogger logs each request through the global zap logger.
func ZapLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			req := c.Request()
			zap.L().Debug("http request",
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", c.Response().Status))
			return err
		}
	}
}

// Public route helpers (no token required)

func PubGET(path string, h echo.HandlerFunc)  { server.pubG.GET(path, h) }
func PubPOST(path string, h echo.HandlerFunc) { server.pubG.POST(path, h) }

// Token-guarded route helpers

func ApiGET(path string, h echo.HandlerFunc)    { server.apiG.GET(path, h) }
func ApiPOST(path string, h echo.HandlerFunc)   { server.apiG.POST(path, h) }
func ApiPUT(path string, h echo.HandlerFunc)    { server.apiG.PUT(path, h) }
func ApiDELETE(path string, h echo.HandlerFunc) { server.apiG.DELETE(path, h) }

// Start runs the HTTP listener until the process exits.
func (w *WebContext) Start() error {
	addr := fmt.Sprintf("%s:%d", w.config.Web.Host, w.config.Web.Port)
	zap.L().Info("web server listening", zap.String("addr", addr))
	return w.Server.Start(addr)
}

// Response envelope, shared by every handler.

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
	Detail  interface{} `json:"detail,omitempty"`
}

type apiResponse struct {
	Data     interface{} `json:"data,omitempty"`
	Error    *apiError   `json:"error,omitempty"`
	Total    *int64      `json:"total,omitempty"`
	Page     int         `json:"page,omitempty"`
	PageSize int         `json:"page_size,omitempty"`
}

func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, apiResponse{Data: data})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, apiResponse{Data: data})
}

func Paged(c echo.Context, data interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, apiResponse{Data: data, Total: &total, Page: page, PageSize: pageSize})
}

func Fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, apiResponse{Error: &apiError{Code: code, Message: message, Detail: detail}})
}

// FailError maps a typed domain error onto the HTTP surface.
func FailError(c echo.Context, err error) error {
	if e, ok := err.(*domain.Error); ok {
		status, code := statusOf(e.Kind)
		return c.JSON(status, apiResponse{Error: &apiError{
			Code:    code,
			Message: e.Message,
			Field:   e.Field,
		}})
	}
	return Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
}

func statusOf(kind domain.ErrorKind) (int, string) {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case domain.KindAuthRequired:
		return http.StatusUnauthorized, "AUTH_REQUIRED"
	case domain.KindNotFound:
		return http.StatusNotFound, "NOT_FOUND"
	case domain.KindNoChanges:
		return http.StatusOK, "NO_CHANGES"
	case domain.KindDecode:
		return http.StatusBadGateway, "DECODE_ERROR"
	case domain.KindUpload:
		return http.StatusBadGateway, "UPLOAD_ERROR"
	case domain.KindStoreRead:
		return http.StatusInternalServerError, "STORE_READ_ERROR"
	default:
		return http.StatusInternalServerError, "STORE_WRITE_ERROR"
	}
}
