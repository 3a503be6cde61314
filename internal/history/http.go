package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kwlam/faantally/internal/game"
)

// UserResolver extracts the authenticated user id from a request.
// History routes refuse to run without one.
type UserResolver func(c *gin.Context) (string, bool)

func RegisterRoutes(r *gin.Engine, svc *Service, resolve UserResolver) {
	api := r.Group("/api")

	requireUser := func(c *gin.Context) (string, bool) {
		uid, ok := resolve(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		}
		return uid, ok
	}

	api.GET("/history", func(c *gin.Context) {
		uid, ok := requireUser(c)
		if !ok {
			return
		}
		list, err := svc.Fetch(uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	// End the active match: archive it under the caller and clear the
	// session. The session stays intact on failure so the client can retry.
	api.POST("/history", func(c *gin.Context) {
		uid, ok := requireUser(c)
		if !ok {
			return
		}
		m, err := svc.EndMatch(uid)
		if err != nil {
			switch {
			case errors.Is(err, game.ErrNoSession):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, ErrNoGames):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, m)
	})

	api.DELETE("/history/:id", func(c *gin.Context) {
		uid, ok := requireUser(c)
		if !ok {
			return
		}
		if err := svc.Delete(uid, c.Param("id")); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})

	// CSV export of the caller's match history
	api.GET("/history.csv", func(c *gin.Context) {
		uid, ok := requireUser(c)
		if !ok {
			return
		}
		list, err := svc.Fetch(uid)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		filename := fmt.Sprintf("matches_%s.csv", time.Now().Format("2006-01-02"))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", "attachment; filename="+filename)

		w := csv.NewWriter(c.Writer)
		_ = w.Write([]string{
			"id",
			"player1_name", "player2_name",
			"player1_total_points", "player2_total_points",
			"player1_net_amount", "player2_net_amount",
			"total_games", "draw_count", "winner_name",
			"created_at", "ended_at",
		})
		for _, m := range list {
			winner := ""
			if m.WinnerName != nil {
				winner = *m.WinnerName
			}
			_ = w.Write([]string{
				m.ID,
				m.Player1Name, m.Player2Name,
				strconv.Itoa(m.Player1TotalPoints), strconv.Itoa(m.Player2TotalPoints),
				strconv.Itoa(m.Player1NetAmount), strconv.Itoa(m.Player2NetAmount),
				strconv.Itoa(m.TotalGames), strconv.Itoa(m.DrawCount), winner,
				m.CreatedAt.Format(time.RFC3339), m.EndedAt.Format(time.RFC3339),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
		}
	})
}
