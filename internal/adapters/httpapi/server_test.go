package httpapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/httpapi"
	"github.com/daehan-dev/fleetworks-go/internal/adapters/persistence"
	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	factorycommands "github.com/daehan-dev/fleetworks-go/internal/application/factory/commands"
	factoryqueries "github.com/daehan-dev/fleetworks-go/internal/application/factory/queries"
	playerqueries "github.com/daehan-dev/fleetworks-go/internal/application/player/queries"
	"github.com/daehan-dev/fleetworks-go/internal/domain/factory"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/infrastructure/config"
	"github.com/daehan-dev/fleetworks-go/test/helpers"
)

func newTestServer(t *testing.T) (*httpapi.Server, shared.PlayerID) {
	db := helpers.NewSeededTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "tester")

	clock := shared.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	resolver := factory.NewResolver(rand.New(rand.NewSource(1)))
	uow := persistence.NewGormUnitOfWork(db)

	med := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*factorycommands.BeginBuildCommand](med, factorycommands.NewBeginBuildHandler(uow, resolver, clock)))
	require.NoError(t, common.RegisterHandler[*factoryqueries.ListDocksQuery](med, factoryqueries.NewListDocksHandler(
		persistence.NewGormDockRepository(db), persistence.NewGormTemplateRepository(db), clock)))
	require.NoError(t, common.RegisterHandler[*playerqueries.GetPlayerQuery](med, playerqueries.NewGetPlayerHandler(
		persistence.NewGormPlayerRepository(db))))

	cfg := &config.Config{
		Server: config.ServerConfig{Address: ":0"},
	}
	return httpapi.NewServer(cfg, med, common.LoggerFromContext(context.Background())), p.ID
}

func doRequest(t *testing.T, srv *httpapi.Server, method, path, playerID, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if playerID != "" {
		req.Header.Set("X-Player-ID", playerID)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_ListDocks(t *testing.T) {
	srv, playerID := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/factory/docks", fmt.Sprint(playerID.Value()), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Docks []struct {
			DockNumber int    `json:"dock_number"`
			Status     string `json:"status"`
		} `json:"docks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Docks, 4)
	assert.Equal(t, "empty", payload.Docks[0].Status)
}

func TestServer_BeginBuildAndProfile(t *testing.T) {
	srv, playerID := newTestServer(t)
	id := fmt.Sprint(playerID.Value())

	rec := doRequest(t, srv, http.MethodPost, "/api/factory/build", id,
		`{"dock_number":1,"fuel":30,"ammo":30,"steel":30,"bauxite":30}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var build struct {
		DockNumber      int `json:"dock_number"`
		DurationMinutes int `json:"duration_minutes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &build))
	assert.Equal(t, 1, build.DockNumber)
	assert.Equal(t, 1, build.DurationMinutes)

	rec = doRequest(t, srv, http.MethodGet, "/api/player", id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile struct {
		Fuel int `json:"fuel"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, 470, profile.Fuel)
}

func TestServer_BeginBuild_WrongRecipeIs400(t *testing.T) {
	srv, playerID := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/factory/build", fmt.Sprint(playerID.Value()),
		`{"dock_number":1,"fuel":31,"ammo":30,"steel":30,"bauxite":30}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var payload struct {
		Error struct {
			Kind string `json:"kind"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "invalid_recipe", payload.Error.Kind)
}

func TestServer_MissingIdentityHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/factory/docks", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_UnknownPlayerIs404(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/factory/docks", "999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
