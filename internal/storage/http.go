package storage

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes exposes the theme slot. The value is opaque to the
// server; the client owns its shape.
func RegisterRoutes(r *gin.Engine, store Store) {
	api := r.Group("/api")

	api.GET("/theme", func(c *gin.Context) {
		v, ok, err := store.Get(KeyTheme)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no theme set"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"theme": v})
	})

	api.PUT("/theme", func(c *gin.Context) {
		var req struct {
			Theme string `json:"theme"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		if err := store.Set(KeyTheme, req.Theme); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}
