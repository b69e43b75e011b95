package handler // handler package exposes the HTTP surface: GraphQL transport and health

import (
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/study-event-tracker/internal/i18n"
)

// GraphQLHandler executes GraphQL requests against the parsed schema.
// It accepts POST bodies in the standard {query, operationName,
// variables} shape and GET requests with a ?query= parameter.
type GraphQLHandler struct {
	Schema *graphql.Schema
}

func NewGraphQLHandler(schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{Schema: schema}
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Serve handles a single GraphQL request. The optional :language path
// segment selects the display locale for error messages; it is
// normalized and placed in the context before execution so the
// translator can see it.
func (h *GraphQLHandler) Serve(c echo.Context) error {
	var req graphqlRequest
	if c.Request().Method == http.MethodGet {
		req.Query = c.QueryParam("query")
		req.OperationName = c.QueryParam("operationName")
	} else if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := i18n.WithLocale(c.Request().Context(), i18n.Normalize(c.Param("language")))
	resp := h.Schema.Exec(ctx, req.Query, req.OperationName, req.Variables)

	// Errors ride inside the GraphQL response envelope; the transport
	// itself always answers 200 with only the error messages exposed.
	return c.JSON(http.StatusOK, resp)
}
