package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"claims-engine/internal/engine"
	"claims-engine/internal/holiday"
	"claims-engine/internal/model"
)

const (
	pathCalculate = "/api/v1/deadlines/calculate"
	pathHolidays  = "/api/v1/holidays"
	pathHealth    = "/healthz"
)

// Handler adapts the deadline engine to fasthttp.
type Handler struct {
	engine *engine.Engine
	cal    *holiday.Calendar
	log    *zap.Logger
}

func New(eng *engine.Engine, cal *holiday.Calendar, log *zap.Logger) *Handler {
	return &Handler{engine: eng, cal: cal, log: log}
}

// Handle is the fasthttp request entry point.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch path {
	case pathHealth:
		if method != fasthttp.MethodGet {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case pathHolidays:
		if method != fasthttp.MethodGet {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string][]string{"holidays": h.cal.Entries()})
	case pathCalculate:
		if method != fasthttp.MethodPost {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.calculate(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) calculate(ctx *fasthttp.RequestCtx) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.engine.Process(&req)

	h.log.Info("deadline calculation",
		zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
		zap.String("tenant_id", req.TenantID),
		zap.String("category", req.Claim.Category),
		zap.String("scope", req.Claim.Scope),
		zap.String("outcome", resp.CalculationMetadata.CalculationOutcome),
		zap.Int64("duration_ms", resp.CalculationMetadata.CalculationDurationMs),
	)

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, body interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(body); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{Status: status, Message: message})
}
