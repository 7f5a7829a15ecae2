// Package api exposes the remapper over HTTP.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/user/map_remapper_go/internal/parser"
	"github.com/user/map_remapper_go/internal/remap"
)

// maxDecimals bounds the per-request decimals override.
const maxDecimals = 12

// RemapBody is the JSON body of /api/remap and /api/validate.
// Decimals and StrictAxes override the server defaults when present.
type RemapBody struct {
	parser.MapInputs
	Decimals   *int  `json:"decimals,omitempty"`
	StrictAxes *bool `json:"strict_axes,omitempty"`
}

type Handler struct {
	opts   remap.Options
	logger *zap.Logger
}

func NewHandler(opts remap.Options, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{opts: opts, logger: logger}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/remap", h.Remap)
	api.POST("/validate", h.Validate)
}

// --- HANDLERS ---

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindBody decodes the request and merges its overrides into the defaults.
func (h *Handler) bindBody(c echo.Context) (parser.MapInputs, remap.Options, error) {
	var body RemapBody
	if err := c.Bind(&body); err != nil {
		return parser.MapInputs{}, remap.Options{}, echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	opts := h.opts
	if body.Decimals != nil {
		if *body.Decimals < 0 || *body.Decimals > maxDecimals {
			return parser.MapInputs{}, remap.Options{}, echo.NewHTTPError(http.StatusBadRequest, "decimals must be between 0 and 12")
		}
		opts.Decimals = *body.Decimals
	}
	if body.StrictAxes != nil {
		opts.StrictAxes = *body.StrictAxes
	}
	return body.MapInputs, opts, nil
}

// statusCode maps a remap outcome to its HTTP status.
func statusCode(res *remap.Result) int {
	switch res.Status {
	case remap.StatusOK:
		return http.StatusOK
	case remap.StatusInvalid:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Remap runs the full pipeline and returns the formatted result.
func (h *Handler) Remap(c echo.Context) error {
	in, opts, err := h.bindBody(c)
	if err != nil {
		return err
	}
	res := remap.Process(in, opts)
	h.logger.Info("remap",
		zap.String("run_id", res.RunID),
		zap.Stringer("status", res.Status),
		zap.Int("new_rows", len(res.Request.NewY)),
		zap.Int("new_cols", len(res.Request.NewX)),
	)
	if res.Status == remap.StatusFailed {
		h.logger.Error("remap failed", zap.String("run_id", res.RunID), zap.Error(res.Err))
	}
	return c.JSON(statusCode(res), res.View())
}

// Validate parses and validates without remapping.
func (h *Handler) Validate(c echo.Context) error {
	in, opts, err := h.bindBody(c)
	if err != nil {
		return err
	}
	req := remap.ParseRequest(in)
	errs := remap.Validate(req)
	if opts.StrictAxes {
		errs = append(errs, remap.ValidateMonotonic(req)...)
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"status": remap.StatusInvalid.String(),
			"errors": errs.Messages(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": remap.StatusOK.String(),
	})
}
