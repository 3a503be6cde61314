package game

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kwlam/faantally/internal/scoring"
)

type createReq struct {
	Player1Name string `json:"player1_name"`
	Player2Name string `json:"player2_name"`
}

type winReq struct {
	WinnerID    int      `json:"winner_id"`
	CriteriaIDs []string `json:"criteria_ids"`
	OtherPoints int      `json:"other_points"`
}

func RegisterRoutes(r *gin.Engine, svc *Service) {
	api := r.Group("/api")

	api.GET("/session", func(c *gin.Context) {
		sess, ok := svc.Snapshot()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
			return
		}
		c.JSON(http.StatusOK, sessionView(sess))
	})

	api.POST("/session", func(c *gin.Context) {
		var req createReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		sess, err := svc.Create(req.Player1Name, req.Player2Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, sessionView(sess))
	})

	// The committed total is recomputed server-side from the validated
	// criteria, never trusted from the client.
	api.POST("/session/win", func(c *gin.Context) {
		var req winReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		sel, err := scoring.SelectionFromIDs(req.CriteriaIDs, req.OtherPoints)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sess, err := svc.RecordWin(req.WinnerID, sel.TotalPoints(), sel.Selected())
		if err != nil {
			status(c, err)
			return
		}
		c.JSON(http.StatusOK, sessionView(sess))
	})

	api.POST("/session/draw", func(c *gin.Context) {
		sess, err := svc.RecordDraw()
		if err != nil {
			status(c, err)
			return
		}
		c.JSON(http.StatusOK, sessionView(sess))
	})

	api.POST("/session/start-over", func(c *gin.Context) {
		sess, err := svc.StartOver()
		if err != nil {
			status(c, err)
			return
		}
		c.JSON(http.StatusOK, sessionView(sess))
	})

	api.DELETE("/session", func(c *gin.Context) {
		svc.Reset()
		c.Status(http.StatusNoContent)
	})

	api.GET("/session/results", func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Results())
	})
}

func status(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoSession):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// sessionView adds the derived fields the UI shows next to the raw state.
func sessionView(s Session) gin.H {
	return gin.H{
		"session":    s,
		"draw_count": s.DrawCount(),
		"leader":     s.Leader(),
	}
}
