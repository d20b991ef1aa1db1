package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/centavo-app/backend/internal/auth"
	"github.com/centavo-app/backend/internal/controllers"
	"github.com/centavo-app/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router assembles the gin engine with all middlewares and routes.
func Router(db *gorm.DB, tokens *auth.TokenAuthority) (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Authorization", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// Enable pprof for debugging of resource usage
	_, ok = os.LookupEnv("ENABLE_PPROF")
	if ok {
		pprof.Register(r)
	}

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", httputil.OptionsGet)

	r.GET("/version", GetVersion)
	r.OPTIONS("/version", httputil.OptionsGet)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	co := controllers.NewController(db, tokens)

	api := r.Group("/api")
	co.RegisterSessionRoutes(api)

	// Everything except OPTIONS requires a verified caller identity. The
	// register functions keep OPTIONS outside the middleware so that
	// preflight requests, which carry no Authorization header, still get
	// their allow headers.
	authenticated := Authenticated(tokens)
	co.RegisterProfileRoutes(api.Group("/profiles"), authenticated)
	co.RegisterProfileResolveRoutes(api.Group("/profile"), authenticated)
	co.RegisterBudgetRoutes(api.Group("/budgets"), authenticated)
	co.RegisterExpenseRoutes(api.Group("/expenses"), authenticated)
	co.RegisterTransactionRoutes(api.Group("/transactions"), authenticated)

	log.Info().Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Version string `json:"version" example:"https://example.com/version"`
	API     string `json:"api" example:"https://example.com/api"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing the top level endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Version: url + "/version",
			API:     url + "/api",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}
