package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/liuren-go/internal/app"
	"github.com/randomtoy/liuren-go/internal/domain"
	"github.com/randomtoy/liuren-go/internal/prompt"
)

const maxQuestionRunes = 500

// Diviner is the application surface the handler serves.
type Diviner interface {
	Interpret(ctx context.Context, req app.InterpretRequest) (app.InterpretResponse, error)
	Cast(ctx context.Context, req app.CastRequest) (app.Outcome, error)
}

type Handler struct {
	svc    Diviner
	logger *slog.Logger
}

func NewHandler(svc Diviner, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/v1/interpret", h.Interpret)
	e.POST("/v1/divinations", h.Divine)
	e.GET("/v1/positions", h.Positions)
	e.GET("/v1/hours", h.Hours)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Interpret(c echo.Context) error {
	var req InterpretRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	lang := resolveLanguage(c, req.Lang, req.Question)
	if utf8.RuneCountInString(req.Question) > maxQuestionRunes {
		return h.mapError(c, fmt.Errorf("%w: %d characters", domain.ErrQuestionTooLong, maxQuestionRunes), lang)
	}

	resp, err := h.svc.Interpret(c.Request().Context(), app.InterpretRequest{
		ResultName:        req.ResultName,
		ResultDescription: req.ResultDescription,
		ResultFortune:     req.ResultFortune,
		Question:          req.Question,
	})
	if err != nil {
		return h.mapError(c, err, lang)
	}

	return c.JSON(http.StatusOK, InterpretResponse{
		Interpretation: resp.Interpretation,
		Category:       string(resp.Category),
		SourceData:     toSourceData(resp.Source),
		Prompt:         toPromptResp(resp.Prompt),
	})
}

func (h *Handler) Divine(c echo.Context) error {
	var req DivinationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	lang := resolveLanguage(c, req.Lang, req.Question)
	if utf8.RuneCountInString(req.Question) > maxQuestionRunes {
		return h.mapError(c, fmt.Errorf("%w: %d characters", domain.ErrQuestionTooLong, maxQuestionRunes), lang)
	}

	out, err := h.svc.Cast(c.Request().Context(), app.CastRequest{
		Year:      req.Year,
		Month:     req.Month,
		Day:       req.Day,
		Hour:      req.Hour,
		ClockHour: req.ClockHour,
		Question:  req.Question,
		Lang:      lang,
	})
	if err != nil {
		return h.mapError(c, err, lang)
	}

	resp := DivinationResponse{
		Lunar: LunarResp{
			Year:  out.Lunar.Year,
			Month: out.Lunar.Month,
			Day:   out.Lunar.Day,
			Leap:  out.Lunar.Leap,
		},
		Hour:           toHourResp(out.Hour),
		Position:       toPositionResp(out.Position),
		Category:       string(out.Category),
		CategorySlug:   out.Category.Slug(),
		Interpretation: out.Interpretation,
		SourceData:     toSourceData(out.Source),
		Prompt:         toPromptResp(out.Prompt),
		Meta: MetaResp{
			Model:     out.Model,
			RequestID: requestID(c),
			LatencyMS: out.LatencyMS,
		},
	}
	if out.Err != nil {
		resp.Error = &GenerationErrorResp{
			Kind:    errorKind(out.Err),
			Message: domain.UserMessage(out.Err, lang),
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Positions(c echo.Context) error {
	lang := resolveLanguage(c, c.QueryParam("lang"), "")
	positions := domain.Positions(lang)
	out := make([]PositionResp, len(positions))
	for i, p := range positions {
		out[i] = toPositionResp(p)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Hours(c echo.Context) error {
	hours := domain.TraditionalHours()
	out := make([]HourResp, len(hours))
	for i, hr := range hours {
		out[i] = toHourResp(hr)
	}
	return c.JSON(http.StatusOK, out)
}

func toSourceData(s app.Source) SourceData {
	return SourceData{
		HexagramName:           s.HexagramName,
		FiveElements:           s.FiveElements,
		Fortune:                s.Fortune,
		Direction:              s.Direction,
		CategoryInterpretation: s.CategoryInterpretation,
		CoreCharacteristics:    s.CoreCharacteristics,
	}
}

func toPromptResp(p *prompt.Prompt) *PromptResp {
	if p == nil {
		return nil
	}
	return &PromptResp{System: p.System, User: p.User}
}

func toHourResp(h domain.TraditionalHour) HourResp {
	return HourResp{
		ID:     h.ID,
		Branch: h.Branch,
		Start:  h.Start,
		End:    h.End,
		Label:  h.Label(),
	}
}

func toPositionResp(p domain.Position) PositionResp {
	return PositionResp{
		ID:          p.ID,
		Position:    p.DisplayPosition,
		Name:        p.Name,
		Canonical:   p.Canonical,
		Element:     p.Element.Label(p.Lang),
		Fortune:     p.Fortune.Label(p.Lang),
		Direction:   p.Direction.Label(p.Lang),
		Color:       string(p.Color),
		Description: p.Description,
		Lang:        string(p.Lang),
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, domain.ErrQuotaExceeded):
		return "quota_exceeded"
	case errors.Is(err, domain.ErrEmptyGeneration):
		return "empty_generation"
	case errors.Is(err, domain.ErrBackendUnavailable):
		return "backend_unavailable"
	default:
		return "internal"
	}
}

func requestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}

func (h *Handler) mapError(c echo.Context, err error, lang domain.Language) error {
	msg := domain.UserMessage(err, lang)

	switch {
	case errors.Is(err, domain.ErrEmptyQuestion),
		errors.Is(err, domain.ErrQuestionTooLong),
		errors.Is(err, domain.ErrInvalidHour),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrUnknownPosition):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	case errors.Is(err, domain.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: msg})
	case errors.Is(err, domain.ErrQuotaExceeded):
		return c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: msg})
	case errors.Is(err, domain.ErrBackendUnavailable), errors.Is(err, domain.ErrEmptyGeneration):
		h.logger.ErrorContext(c.Request().Context(), "generation failure", "request_id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
	default:
		h.logger.ErrorContext(c.Request().Context(), "internal error", "request_id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
	}
}
