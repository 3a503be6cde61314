package scoring

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var ErrUnknownCriterion = errors.New("unknown scoring criterion")

// SelectionFromIDs validates a list of criterion ids against the catalog
// and builds a selection from them. Duplicate ids collapse to a single
// selection; unknown ids are rejected.
func SelectionFromIDs(ids []string, otherPoints int) (*Selection, error) {
	sel := NewSelection()
	for _, id := range ids {
		c, ok := CriterionByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, id)
		}
		if !sel.IsSelected(c.ID) {
			sel.Toggle(c)
		}
	}
	sel.SetOtherPoints(otherPoints)
	return sel, nil
}

type previewReq struct {
	CriteriaIDs []string `json:"criteria_ids"`
	OtherPoints int      `json:"other_points"`
}

func RegisterRoutes(r *gin.Engine, table PayoutTable) {
	api := r.Group("/api")

	api.GET("/criteria", func(c *gin.Context) {
		c.JSON(http.StatusOK, Catalog())
	})

	// Confirmation summary: total faan plus the payout it would transfer.
	api.POST("/score/preview", func(c *gin.Context) {
		var req previewReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		sel, err := SelectionFromIDs(req.CriteriaIDs, req.OtherPoints)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		total := sel.TotalPoints()
		c.JSON(http.StatusOK, gin.H{
			"total_points": total,
			"payout":       table.Payout(total),
			"criteria":     sel.Selected(),
		})
	})
}
