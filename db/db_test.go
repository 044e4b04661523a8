package db

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"marketplace/config"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSqliteMigratesSchema(t *testing.T) {
	var c config.Configuration
	c.Database = config.DATABASE_SQLITE
	c.DbPath = filepath.Join(t.TempDir(), "dados", "marketplace.db")
	on := true
	c.AutoMigrate = &on
	SetConfigurations(c)

	db, err := Connect()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, table := range []string{"users", "products", "service_tag_links", "plan_payments"} {
		assert.True(t, db.HasTable(table), table)
	}

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Row().Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestPostgresDSN(t *testing.T) {
	c := config.Configuration{DbHost: "localhost", DbPort: "5432", DbUser: "app", DbName: "marketplace", DbPass: "x"}

	assert.Equal(t, "host=localhost port=5432 user=app dbname=marketplace password=x sslmode=disable", PostgresDSN(c))
	assert.Equal(t, "db/database.db?_foreign_keys=on", SqliteDSN("db/database.db"))
}

func TestDBInstanceFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	database := &gorm.DB{}

	var got, missing *gorm.DB
	r := gin.New()
	r.GET("/com", SetDBtoContext(database), func(c *gin.Context) { got = DBInstance(c) })
	r.GET("/sem", func(c *gin.Context) { missing = DBInstance(c) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/com", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sem", nil))

	assert.Same(t, database, got)
	assert.Nil(t, missing)
}
