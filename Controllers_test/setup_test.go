package Controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-pos/config"
	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/kds"
	"github.com/yeremiapane/restaurant-pos/router"
	"github.com/yeremiapane/restaurant-pos/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	testZone = time.FixedZone("BRT", -3*60*60)
	dbSeq    int64
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testApp struct {
	router *gin.Engine
	pos    *services.POS
	hub    *kds.Hub
	now    time.Time
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"), atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := &testApp{now: time.Date(2024, 5, 1, 12, 0, 0, 0, testZone), hub: kds.NewHub()}
	app.pos = services.NewPOS(database.NewGormDocumentStore(db),
		services.WithClock(func() time.Time { return app.now }),
		services.WithNotifier(app.hub),
	)
	require.NoError(t, app.pos.Load(context.Background()))
	app.router = router.SetupRouter(app.pos, app.hub, config.Config{CORSOrigin: "*"})
	return app
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

type menuEntry struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	BasePrice      float64 `json:"basePrice"`
	Category       string  `json:"category"`
	DisplayOrder   int     `json:"displayOrder"`
	IsFavorite     bool    `json:"isFavorite"`
	EffectivePrice float64 `json:"effectivePrice"`
	HasDiscount    bool    `json:"hasDiscount"`
}

func (a *testApp) createItem(t *testing.T, name string, price float64, category string) menuEntry {
	t.Helper()
	w, env := a.do(t, http.MethodPost, "/menu", map[string]interface{}{
		"name": name, "basePrice": price, "category": category,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item menuEntry
	decodeData(t, env, &item)
	return item
}
