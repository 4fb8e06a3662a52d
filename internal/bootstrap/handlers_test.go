package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/eleven-am/streetscene/docs"
	"github.com/eleven-am/streetscene/internal/auth"
	"github.com/eleven-am/streetscene/internal/scene"
	"github.com/labstack/echo/v4"
)

func newRoutedServer(t *testing.T) *echo.Echo {
	e := NewEchoServer(&Config{})
	RegisterRoutes(e, HandlerParams{
		AuthMiddleware: auth.NewMiddleware([]string{"secret"}),
		SceneHandler:   scene.NewHandler(nil, nil, t.TempDir(), t.TempDir(), nil),
	})
	return e
}

func TestRegisterRoutes(t *testing.T) {
	e := newRoutedServer(t)

	routePaths := make(map[string]bool)
	for _, r := range e.Routes() {
		routePaths[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /v1/scenes",
		"POST /v1/scenes",
		"GET /v1/scenes/:id",
		"DELETE /v1/scenes/:id",
		"GET /swagger/*",
	} {
		if !routePaths[want] {
			t.Errorf("expected route %s to be registered", want)
		}
	}
}

func TestRegisterRoutes_ScenesRequireAPIKey(t *testing.T) {
	e := newRoutedServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		req := httptest.NewRequest(method, "/v1/scenes", strings.NewReader(`{"net_path":"/etc/hostname"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s /v1/scenes: expected 401, got %d", method, rec.Code)
		}
		if strings.Contains(rec.Body.String(), "hostname") {
			t.Errorf("%s /v1/scenes: body echoes request: %s", method, rec.Body.String())
		}
	}
}

func TestRegisterRoutes_SwaggerDoc(t *testing.T) {
	e := newRoutedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"/scenes/{id}"`) {
		t.Errorf("expected scene routes in swagger doc")
	}
}

func TestNewEchoServer_CORS(t *testing.T) {
	preflight := func(e *echo.Echo) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/v1/scenes", nil)
		req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	closed := preflight(NewEchoServer(&Config{}))
	if got := closed.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "" {
		t.Errorf("expected no CORS without origins, got %q", got)
	}

	open := preflight(NewEchoServer(&Config{CORSOrigins: "https://app.example.com, https://other.example.com"}))
	if got := open.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "https://app.example.com" {
		t.Errorf("expected allowed origin, got %q", got)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected list %v", got)
	}
	if len(splitList("")) != 0 {
		t.Error("expected empty list")
	}
}
