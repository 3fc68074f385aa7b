package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/todoflow-labs/firebase-config/internal/config"
	"github.com/todoflow-labs/firebase-config/internal/firebaseapp"
	"github.com/todoflow-labs/firebase-config/internal/handler"
	"github.com/todoflow-labs/firebase-config/internal/logging"
)

func setFirebaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvAPIKey, "a")
	t.Setenv(config.EnvAuthDomain, "b")
	t.Setenv(config.EnvProjectID, "c")
	t.Setenv(config.EnvStorageBucket, "d")
	t.Setenv(config.EnvMessagingSenderID, "e")
	t.Setenv(config.EnvAppID, "f")
	t.Setenv(config.EnvMeasurementID, "g")
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRouter_InitJSON(t *testing.T) {
	setFirebaseEnv(t)
	r := NewRouter(nil, logging.New("error"))

	rec := serve(r, http.MethodGet, handler.InitJSONPath)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"apiKey":"a","authDomain":"b","projectId":"c","storageBucket":"d","messagingSenderId":"e","appId":"f","measurementId":"g"}`,
		rec.Body.String())
}

func TestRouter_Healthz(t *testing.T) {
	setFirebaseEnv(t)
	logger := logging.New("error")

	rec := serve(NewRouter(nil, logger), http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	fbApp, _, err := firebaseapp.Init(context.Background(), firebaseapp.Credentials{}, option.WithoutAuthentication())
	require.NoError(t, err)
	rec = serve(NewRouter(fbApp, logger), http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_Errors(t *testing.T) {
	r := NewRouter(nil, logging.New("error"))

	rec := serve(r, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"route not found"}`, rec.Body.String())

	rec = serve(r, http.MethodPost, handler.InitJSONPath)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"method not allowed"}`, rec.Body.String())
}
