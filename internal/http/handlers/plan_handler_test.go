// README: Handler tests for saving plans, including Firebase auth on the route.
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrip/internal/http/handlers"
	httpmiddleware "studytrip/internal/http/middleware"
	"studytrip/internal/infra"
	"studytrip/internal/modules/export"
)

type stubSaver struct {
	got export.SaveRequest
	err error
}

func (s *stubSaver) Save(_ context.Context, req export.SaveRequest) (int, error) {
	s.got = req
	if s.err != nil {
		return 0, s.err
	}
	return len(req.Days), nil
}

// stubTokenVerifier is a test double for infra.TokenVerifier.
type stubTokenVerifier struct {
	caller *infra.Caller
	err    error
}

func (s *stubTokenVerifier) VerifyIDToken(_ context.Context, _ string) (*infra.Caller, error) {
	return s.caller, s.err
}

func newPlanRouter(saver handlers.PlanSaver, verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/plans", httpmiddleware.Auth(verifier), handlers.NewPlanHandler(saver, nil).Save)
	return r
}

func TestSavePlan_OK(t *testing.T) {
	saver := &stubSaver{}
	r := newPlanRouter(saver, nil)

	w := doJSON(r, http.MethodPost, "/api/plans", exportBody())

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		PlanID string `json:"plan_id"`
		Rows   int    `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.PlanID, 36)
	assert.Equal(t, 2, resp.Rows)
	assert.Equal(t, resp.PlanID, saver.got.PlanID)
	assert.Equal(t, "North Goa", saver.got.Destination)
	assert.Equal(t, 1150, saver.got.Cost)
}

func TestSavePlan_KeepsGivenPlanID(t *testing.T) {
	saver := &stubSaver{}
	body := exportBody()
	body["plan_id"] = "11111111-2222-3333-4444-555555555555"

	w := doJSON(newPlanRouter(saver, nil), http.MethodPost, "/api/plans", body)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", saver.got.PlanID)
}

func TestSavePlan_Errors(t *testing.T) {
	badID := exportBody()
	badID["plan_id"] = "nope"
	noDays := exportBody()
	delete(noDays, "days")

	tests := []struct {
		name       string
		body       any
		saveErr    error
		wantStatus int
	}{
		{"invalid json", "[", nil, http.StatusBadRequest},
		{"bad plan id", badID, nil, http.StatusBadRequest},
		{"no days", noDays, nil, http.StatusBadRequest},
		{"sink failure", exportBody(), errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(newPlanRouter(&stubSaver{err: tt.saveErr}, nil), http.MethodPost, "/api/plans", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestSavePlan_Auth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		saver := &stubSaver{}
		r := newPlanRouter(saver, &stubTokenVerifier{caller: &infra.Caller{UID: "u1"}})

		w := doJSON(r, http.MethodPost, "/api/plans", exportBody())

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, saver.got.PlanID)
	})

	t.Run("rejected token", func(t *testing.T) {
		r := newPlanRouter(&stubSaver{}, &stubTokenVerifier{err: errors.New("expired")})

		w := doJSON(r, http.MethodPost, "/api/plans", exportBody(), "Bearer stale")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		r := newPlanRouter(&stubSaver{}, &stubTokenVerifier{caller: &infra.Caller{UID: "u1"}})

		w := doJSON(r, http.MethodPost, "/api/plans", exportBody(), "Bearer good")

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
