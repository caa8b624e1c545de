package galaxy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-edsm/internal/galaxy/dto"
	"go-edsm/pkg/edsm"
	"go-edsm/pkg/edsm/decode"
	"go-edsm/pkg/edsm/models"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockClient is a testify mock of the EDSM client
type mockClient struct {
	mock.Mock
}

func (m *mockClient) Systems(ctx context.Context, name string) ([]models.System, error) {
	args := m.Called(ctx, name)
	systems, _ := args.Get(0).([]models.System)
	return systems, args.Error(1)
}

func (m *mockClient) SphereSystems(ctx context.Context, name string, opts edsm.SphereOptions) ([]models.System, error) {
	args := m.Called(ctx, name, opts)
	systems, _ := args.Get(0).([]models.System)
	return systems, args.Error(1)
}

func (m *mockClient) CubeSystems(ctx context.Context, name string, opts edsm.CubeOptions) ([]models.System, error) {
	args := m.Called(ctx, name, opts)
	systems, _ := args.Get(0).([]models.System)
	return systems, args.Error(1)
}

func single(args mock.Arguments) (*models.System, error) {
	system, _ := args.Get(0).(*models.System)
	return system, args.Error(1)
}

func (m *mockClient) System(ctx context.Context, name string) (*models.System, error) {
	return single(m.Called(ctx, name))
}

func (m *mockClient) Traffic(ctx context.Context, name string) (*models.System, error) {
	return single(m.Called(ctx, name))
}

func (m *mockClient) Deaths(ctx context.Context, name string) (*models.System, error) {
	return single(m.Called(ctx, name))
}

func (m *mockClient) Bodies(ctx context.Context, name string) (*models.System, error) {
	return single(m.Called(ctx, name))
}

func (m *mockClient) Factions(ctx context.Context, name string, withHistory bool) (*models.System, error) {
	return single(m.Called(ctx, name, withHistory))
}

func (m *mockClient) RateLimit() edsm.RateLimit {
	return m.Called().Get(0).(edsm.RateLimit)
}

func (m *mockClient) Config() edsm.Config {
	return edsm.DefaultConfig()
}

func newTestRouter(t *testing.T, client *mockClient) *chi.Mux {
	t.Helper()
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("Galaxy Test API", "1.0.0"))

	m := NewModule(client)
	m.RegisterUnifiedRoutes(api, "/galaxy")
	router.Route("/galaxy-module", m.Routes)
	return router
}

func doGet(router http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func named(name string) models.System {
	return models.System{Name: name}
}

func TestSearchSystems_RanksClosestFirst(t *testing.T) {
	client := &mockClient{}
	client.On("Systems", mock.Anything, "Sol").
		Return([]models.System{named("Solati"), named("Sol Rimi"), named("Sol")}, nil)
	router := newTestRouter(t, client)

	w := doGet(router, "/galaxy/systems?name=Sol")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body dto.SystemListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, "Sol", body.Systems[0].Name)
	assert.Equal(t, "Solati", body.Systems[1].Name)
	client.AssertExpectations(t)
}

func TestSphereSystems_PassesOptions(t *testing.T) {
	client := &mockClient{}
	client.On("SphereSystems", mock.Anything, "Sol", edsm.SphereOptions{Radius: 20, MinRadius: 5}).
		Return([]models.System{named("Alpha Centauri")}, nil)
	router := newTestRouter(t, client)

	w := doGet(router, "/galaxy/systems/sphere?name=Sol&radius=20&min_radius=5")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	client.AssertExpectations(t)
}

func TestCubeSystems(t *testing.T) {
	client := &mockClient{}
	client.On("CubeSystems", mock.Anything, "Sol", edsm.CubeOptions{Size: 50}).
		Return([]models.System{}, nil)
	router := newTestRouter(t, client)

	w := doGet(router, "/galaxy/systems/cube?name=Sol&size=50")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body dto.SystemListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Count)
}

func TestSphereSystems_RadiusRejectedWithoutUpstreamCall(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream request to %s", r.URL)
	}))
	defer upstream.Close()

	client := edsm.NewClientWithConfig(edsm.Config{SystemsURL: upstream.URL, SystemURL: upstream.URL}, nil)
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("Galaxy Test API", "1.0.0"))
	NewModule(client).RegisterUnifiedRoutes(api, "/galaxy")

	w := doGet(router, "/galaxy/systems/sphere?name=Sol&radius=150")
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestFactions_HistoryFlag(t *testing.T) {
	id := int64(1062)
	client := &mockClient{}
	client.On("Factions", mock.Anything, "Meliae", true).
		Return(&models.System{Name: "Meliae", ID: &id}, nil)
	router := newTestRouter(t, client)

	w := doGet(router, "/galaxy/systems/Meliae/factions?history=true")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body models.System
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Meliae", body.Name)
	client.AssertExpectations(t)
}

func TestSingleSystemEndpoints(t *testing.T) {
	client := &mockClient{}
	sol := &models.System{Name: "Sol"}
	for _, method := range []string{"System", "Traffic", "Deaths", "Bodies"} {
		client.On(method, mock.Anything, "Sol").Return(sol, nil)
	}
	router := newTestRouter(t, client)

	for _, target := range []string{
		"/galaxy/systems/Sol",
		"/galaxy/systems/Sol/traffic",
		"/galaxy/systems/Sol/deaths",
		"/galaxy/systems/Sol/bodies",
	} {
		t.Run(target, func(t *testing.T) {
			w := doGet(router, target)
			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		})
	}
	client.AssertExpectations(t)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"unknown system", fmt.Errorf("edsm System %q: %w", "Nowhere", edsm.ErrUnknownSystem), http.StatusNotFound},
		{"validation", &edsm.ValidationError{Op: "System", Field: "systemName", Rule: "required"}, http.StatusBadRequest},
		{"remote 503", &edsm.RemoteError{Op: "System", StatusCode: 503, Status: "503 Service Unavailable"}, http.StatusBadGateway},
		{"remote 404", &edsm.RemoteError{Op: "System", StatusCode: 404, Status: "404 Not Found"}, http.StatusNotFound},
		{"transport refused", &edsm.TransportError{Op: "System", Err: fmt.Errorf("connection refused")}, http.StatusBadGateway},
		{"transport timeout", &edsm.TransportError{Op: "System", Err: context.DeadlineExceeded}, http.StatusGatewayTimeout},
		{"decode", decode.Missing("information"), http.StatusBadGateway},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			client.On("System", mock.Anything, "Sol").Return(nil, tt.err)
			router := newTestRouter(t, client)

			w := doGet(router, "/galaxy/systems/Sol")
			assert.Equal(t, tt.expected, w.Code, w.Body.String())
		})
	}
}

func TestStatus(t *testing.T) {
	client := &mockClient{}
	client.On("RateLimit").Return(edsm.RateLimit{
		Limit:      720,
		Remaining:  0,
		Reset:      time.Now().Add(time.Minute),
		ObservedAt: time.Now(),
	})
	router := newTestRouter(t, client)

	w := doGet(router, "/galaxy/status")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body dto.GalaxyStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "galaxy", body.Module)
	assert.Equal(t, "degraded", body.Status)
	require.NotNil(t, body.RateLimit)
	assert.Equal(t, 720, body.RateLimit.Limit)
	assert.Equal(t, edsm.SystemsURL, body.Upstream.SystemsURL)
}

func TestStatus_NoRequestsYet(t *testing.T) {
	client := &mockClient{}
	client.On("RateLimit").Return(edsm.RateLimit{})
	router := newTestRouter(t, client)

	w := doGet(router, "/galaxy/status")
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.GalaxyStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Nil(t, body.RateLimit)
}

func TestModuleService(t *testing.T) {
	client := &mockClient{}
	client.On("RateLimit").Return(edsm.RateLimit{})

	m := NewModule(client)
	require.NotNil(t, m.GetService())
	status := m.GetService().GetStatus(context.Background())
	assert.Equal(t, "galaxy", status.Module)
	assert.Equal(t, "healthy", status.Status)
	client.AssertExpectations(t)
}

func TestModuleHealthRoute(t *testing.T) {
	router := newTestRouter(t, &mockClient{})

	w := doGet(router, "/galaxy-module/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"module":"galaxy"`)
}
