package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/study-event-tracker/internal/handler"
)

// RegisterRoutes wires the GraphQL endpoint and the health check onto
// the provided Echo instance. The authentication middleware wraps both
// GraphQL routes; it attaches an identity when a valid bearer token is
// present and always lets the request continue. Echo has no optional
// path parameters, so the locale-selecting variant is registered as a
// second route.
func RegisterRoutes(e *echo.Echo, g *handler.GraphQLHandler, authMW echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	gql := e.Group("/graphql", authMW)
	gql.POST("", g.Serve)
	gql.GET("", g.Serve)
	gql.POST("/:language", g.Serve)
	gql.GET("/:language", g.Serve)
}
