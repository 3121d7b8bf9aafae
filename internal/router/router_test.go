package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"project-test-api/internal/database"
	"project-test-api/internal/domain"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Usuario{},
		&domain.AcessoUsuario{},
		&domain.Pedido{},
		&domain.EnderecoEntrega{},
		&domain.Tarefa{},
	))

	database.SetDB(db)
	t.Cleanup(func() { database.SetDB(nil) })

	return Setup(Config{
		DB:             db,
		Logger:         zap.NewNop(),
		JWTSecret:      "test-secret",
		BasePath:       "/api",
		AllowedOrigins: "*",
	})
}

func TestHealthRoute(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadyFollowsGlobalConnection(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Losing the connection flips the probe without a restart.
	database.SetDB(nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAPIRoutesRequireAuth(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tarefa", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
