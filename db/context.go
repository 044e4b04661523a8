package db

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

const contextKey = "marketplace.db"

// SetDBtoContext guarda a conexão no contexto de cada requisição.
func SetDBtoContext(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, database)
		c.Next()
	}
}

// DBInstance devolve nil quando a rota não passou por SetDBtoContext.
func DBInstance(c *gin.Context) *gorm.DB {
	if v, ok := c.Get(contextKey); ok {
		if database, ok := v.(*gorm.DB); ok {
			return database
		}
	}
	return nil
}
