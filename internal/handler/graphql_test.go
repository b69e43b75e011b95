package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/study-event-tracker/internal/graph"
	"github.com/iliyamo/study-event-tracker/internal/i18n"
)

func testHandler(t *testing.T) *GraphQLHandler {
	t.Helper()
	tr, err := i18n.New()
	require.NoError(t, err)
	// Stores stay nil: the queries exercised here never reach
	// persistence (hello is static, the rest fail authorization first).
	resolver := graph.NewRootResolver("test-secret", tr, nil, nil)
	return NewGraphQLHandler(graph.MustParseSchema(resolver))
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func exec(t *testing.T, h *GraphQLHandler, locale, query string) envelope {
	t.Helper()

	body, err := json.Marshal(map[string]string{"query": query})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if locale != "" {
		c.SetPath("/graphql/:language")
		c.SetParamNames("language")
		c.SetParamValues(locale)
	}

	require.NoError(t, h.Serve(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestServe_Hello(t *testing.T) {
	t.Parallel()

	env := exec(t, testHandler(t), "", `{ hello }`)
	require.Empty(t, env.Errors)
	require.JSONEq(t, `{"hello":"Welcome to Study Event GraphQL, version: 1.0"}`, string(env.Data))
}

func TestServe_UnauthenticatedOperation(t *testing.T) {
	t.Parallel()

	env := exec(t, testHandler(t), "", `{ studyEventGetAll { userStudyEvents { id } } }`)
	require.NotEmpty(t, env.Errors)
	require.Contains(t, env.Errors[0].Message, "forbidden")
}

func TestServe_LocalizedError(t *testing.T) {
	t.Parallel()

	// The pt segment normalizes to pt-br and localizes the message.
	env := exec(t, testHandler(t), "pt", `{ userDelete { id } }`)
	require.NotEmpty(t, env.Errors)
	require.Contains(t, env.Errors[0].Message, "acesso negado")
}

func TestServe_GETQuery(t *testing.T) {
	t.Parallel()

	h := testHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/graphql?query="+
		"%7B%20hello%20%7D", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Serve(c))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Empty(t, env.Errors)
	require.Contains(t, string(env.Data), "Welcome to Study Event GraphQL")
}
