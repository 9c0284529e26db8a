// README: Itinerary handlers: generate a plan and render its PDF, CSV and map exports.
package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"studytrip/internal/http/middleware"
	"studytrip/internal/maps"
	"studytrip/internal/modules/export"
	"studytrip/internal/modules/itinerary"
	"studytrip/internal/service"
)

// Planner generates a plan for a trip request.
type Planner interface {
	PlanTrip(ctx context.Context, req itinerary.TripRequest) (*service.Plan, error)
}

// Quota consumes one generation for a client.
type Quota interface {
	UseToken(ctx context.Context, client string) error
}

// MapRenderer draws places onto a PNG.
type MapRenderer interface {
	Render(ctx context.Context, places []itinerary.Place) ([]byte, error)
}

type ItineraryHandler struct {
	planner Planner
	quota   Quota
	maps    MapRenderer
	timeout time.Duration
	log     *slog.Logger
}

// NewItineraryHandler wires the handler. quota and mapRenderer may be nil to
// disable the generation limit and map previews.
func NewItineraryHandler(planner Planner, quota Quota, mapRenderer MapRenderer, timeout time.Duration, log *slog.Logger) *ItineraryHandler {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &ItineraryHandler{planner: planner, quota: quota, maps: mapRenderer, timeout: timeout, log: log}
}

type tripReq struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Budget      int    `json:"budget"`
	TravelStyle string `json:"travel_style"`
	StudentCard bool   `json:"student_card"`
}

func (r tripReq) toRequest() (itinerary.TripRequest, error) {
	style, err := itinerary.ParseTravelStyle(r.TravelStyle)
	if err != nil {
		return itinerary.TripRequest{}, err
	}
	return itinerary.TripRequest{
		Origin:      strings.TrimSpace(r.Origin),
		Destination: strings.TrimSpace(r.Destination),
		Days:        r.Days,
		Budget:      r.Budget,
		Style:       style,
		StudentCard: r.StudentCard,
	}, nil
}

// Generate handles POST /api/itineraries.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var body tripReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req, err := body.toRequest()
	if err != nil {
		writePlanError(c, h.log, err)
		return
	}

	if h.quota != nil {
		if err := h.quota.UseToken(c.Request.Context(), middleware.ClientKey(c)); err != nil {
			writePlanError(c, h.log, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	plan, err := h.planner.PlanTrip(ctx, req)
	if err != nil {
		writePlanError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, plan)
}

// exportReq carries a generated plan back for rendering.
type exportReq struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Days        []string `json:"days"`
	Cost        int      `json:"cost"`
}

func (r exportReq) validate() error {
	if strings.TrimSpace(r.Origin) == "" || strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: origin and destination are required", itinerary.ErrBadRequest)
	}
	if len(r.Days) == 0 {
		return fmt.Errorf("%w: days are required", itinerary.ErrBadRequest)
	}
	return nil
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func attachmentName(destination, ext string) string {
	name := unsafeFilename.ReplaceAllString(strings.TrimSpace(destination), "_")
	if name == "" {
		name = "trip"
	}
	return fmt.Sprintf("%s_itinerary.%s", name, ext)
}

// PDF handles POST /api/itineraries/pdf.
func (h *ItineraryHandler) PDF(c *gin.Context) {
	var body exportReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := body.validate(); err != nil {
		writePlanError(c, h.log, err)
		return
	}

	out, err := export.RenderPDF(export.PDFData{
		Origin:      body.Origin,
		Destination: body.Destination,
		Days:        body.Days,
		Cost:        body.Cost,
	})
	if err != nil {
		writePlanError(c, h.log, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, attachmentName(body.Destination, "pdf")))
	c.Data(http.StatusOK, "application/pdf", out)
}

// CSV handles POST /api/itineraries/csv.
func (h *ItineraryHandler) CSV(c *gin.Context) {
	var body exportReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := body.validate(); err != nil {
		writePlanError(c, h.log, err)
		return
	}

	rows := export.BuildRows("", body.Destination, body.Origin, body.Days, body.Cost, time.Now().UTC())
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows, true); err != nil {
		writePlanError(c, h.log, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, attachmentName(body.Destination, "csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

type mapReq struct {
	Places []itinerary.Place `json:"places"`
}

// Map handles POST /api/itineraries/map.
func (h *ItineraryHandler) Map(c *gin.Context) {
	if h.maps == nil {
		writeError(c, http.StatusServiceUnavailable, "maps not configured")
		return
	}
	var body mapReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	png, err := h.maps.Render(ctx, body.Places)
	switch {
	case errors.Is(err, maps.ErrNoPlaces):
		writeError(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.log.WarnContext(ctx, "map render failed", "error", err)
		writeError(c, http.StatusBadGateway, "map unavailable")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
