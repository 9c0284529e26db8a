// README: Plan handler appends a generated plan to the configured sink.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studytrip/internal/modules/export"
)

// PlanSaver persists a plan and reports how many rows it wrote.
type PlanSaver interface {
	Save(ctx context.Context, req export.SaveRequest) (int, error)
}

type PlanHandler struct {
	saver PlanSaver
	log   *slog.Logger
}

func NewPlanHandler(saver PlanSaver, log *slog.Logger) *PlanHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PlanHandler{saver: saver, log: log}
}

type savePlanReq struct {
	PlanID string `json:"plan_id"`
	exportReq
}

// Save handles POST /api/plans.
func (h *PlanHandler) Save(c *gin.Context) {
	var body savePlanReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := body.validate(); err != nil {
		writePlanError(c, h.log, err)
		return
	}
	if body.PlanID == "" {
		body.PlanID = uuid.NewString()
	} else if _, err := uuid.Parse(body.PlanID); err != nil {
		writeError(c, http.StatusBadRequest, "invalid plan_id")
		return
	}

	n, err := h.saver.Save(c.Request.Context(), export.SaveRequest{
		PlanID:      body.PlanID,
		Origin:      body.Origin,
		Destination: body.Destination,
		Days:        body.Days,
		Cost:        body.Cost,
	})
	if err != nil {
		writePlanError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"plan_id": body.PlanID, "rows": n})
}
