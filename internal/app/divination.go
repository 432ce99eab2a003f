package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/randomtoy/liuren-go/internal/domain"
	"github.com/randomtoy/liuren-go/internal/ports"
	"github.com/randomtoy/liuren-go/internal/prompt"
)

const unknownAttribute = "未知"

// Options are the fixed generation settings.
type Options struct {
	Model        string
	Temperature  float64
	MaxTokens    int
	ExposePrompt bool
}

// InterpretRequest asks for an interpretation of an already computed result.
type InterpretRequest struct {
	ResultName        string
	ResultDescription string
	ResultFortune     string
	Question          string
}

// Source is the reference data the interpretation was generated from.
type Source struct {
	HexagramName           string
	FiveElements           string
	Fortune                string
	Direction              string
	CategoryInterpretation string
	CoreCharacteristics    string
}

// InterpretResponse is the application-level output of Interpret.
type InterpretResponse struct {
	Interpretation string
	Category       domain.Category
	Source         Source
	// Prompt is set only when prompts are exposed.
	Prompt    *prompt.Prompt
	Model     string
	LatencyMS int64
}

// CastRequest runs the whole pipeline from a solar date. Exactly one of Hour
// (traditional period, 1-12) and ClockHour (0-23) is used; Hour wins.
type CastRequest struct {
	Year      int
	Month     int
	Day       int
	Hour      *int
	ClockHour *int
	Question  string
	// Lang localizes the position; empty means detect from the question.
	Lang domain.Language
}

// Placement is the calendar part of a divination.
type Placement struct {
	Lunar    domain.LunarDate
	Hour     domain.TraditionalHour
	Position domain.Position
}

// Outcome is one complete divination. When generation failed, Interpretation
// holds the fallback text and Err the generator error.
type Outcome struct {
	Placement
	Category       domain.Category
	Interpretation string
	Source         Source
	Prompt         *prompt.Prompt
	Model          string
	LatencyMS      int64
	Err            error
}

// DivinationService orchestrates classification, prompt building and
// generation.
type DivinationService struct {
	calendar   ports.Calendar
	knowledge  ports.KnowledgeBase
	classifier ports.Classifier
	generator  ports.Generator
	opts       Options
	logger     *slog.Logger
}

func NewDivinationService(
	cal ports.Calendar,
	kb ports.KnowledgeBase,
	cls ports.Classifier,
	gen ports.Generator,
	opts Options,
	logger *slog.Logger,
) *DivinationService {
	return &DivinationService{
		calendar:   cal,
		knowledge:  kb,
		classifier: cls,
		generator:  gen,
		opts:       opts,
		logger:     logger,
	}
}

// Interpret classifies the question and generates an interpretation for the
// named result. Generator failures are returned as the domain generator
// errors; the caller decides how to present them.
func (s *DivinationService) Interpret(ctx context.Context, req InterpretRequest) (InterpretResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return InterpretResponse{}, domain.ErrEmptyQuestion
	}

	subject, err := s.subjectByName(req)
	if err != nil {
		return InterpretResponse{}, err
	}

	res := s.interpret(ctx, subject, question)
	if res.err != nil {
		return InterpretResponse{}, fmt.Errorf("interpret: %w", res.err)
	}
	return InterpretResponse{
		Interpretation: res.text,
		Category:       res.built.Category,
		Source:         res.source,
		Prompt:         res.prompt,
		Model:          res.model,
		LatencyMS:      res.latencyMS,
	}, nil
}

// Cast converts the date, computes the position and interprets the question.
// Input errors abort before classification; generator errors are carried in
// Outcome.Err next to the fallback interpretation.
func (s *DivinationService) Cast(ctx context.Context, req CastRequest) (Outcome, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Outcome{}, domain.ErrEmptyQuestion
	}

	lang := req.Lang
	if lang == "" {
		lang = domain.DetectLanguage(question)
	}
	req.Lang = lang

	placed, err := Locate(s.calendar, req)
	if err != nil {
		return Outcome{}, err
	}
	pos := placed.Position

	entry, ok := s.knowledge.Entry(pos.Canonical)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: no reference text for %s", domain.ErrUnknownPosition, pos.Canonical)
	}

	res := s.interpret(ctx, subject{
		name:    pos.Canonical,
		fortune: entry.Fortune,
		element: entry.Element,
		dir:     entry.Direction,
		entry:   entry,
	}, question)

	out := Outcome{
		Placement:      placed,
		Category:       res.built.Category,
		Interpretation: res.text,
		Source:         res.source,
		Prompt:         res.prompt,
		Model:          res.model,
		LatencyMS:      res.latencyMS,
		Err:            res.err,
	}
	if res.err != nil {
		out.Interpretation = domain.FallbackInterpretation(lang)
	}
	return out, nil
}

// Locate converts the date and computes the position without classifying or
// generating. The question is ignored; an empty Lang localizes in Chinese.
func Locate(cal ports.Calendar, req CastRequest) (Placement, error) {
	hour, err := resolveHour(req.Hour, req.ClockHour)
	if err != nil {
		return Placement{}, err
	}

	lunar, err := cal.ToLunar(req.Year, req.Month, req.Day)
	if err != nil {
		return Placement{}, fmt.Errorf("convert %04d-%02d-%02d: %w", req.Year, req.Month, req.Day, err)
	}

	return Placement{
		Lunar:    lunar,
		Hour:     hour,
		Position: domain.CalculatePosition(lunar.Month, lunar.Day, hour.ID, req.Lang),
	}, nil
}

// subject is the position as the prompt sees it.
type subject struct {
	name    string
	fortune string
	element string
	dir     string
	entry   domain.KnowledgeEntry
}

// subjectByName looks up a named result. The knowledge table is
// authoritative for the attributes; a name it does not know is described by
// the request itself.
func (s *DivinationService) subjectByName(req InterpretRequest) (subject, error) {
	if pos, ok := domain.PositionByName(req.ResultName); ok {
		if entry, ok := s.knowledge.Entry(pos.Canonical); ok {
			return subject{
				name:    pos.Canonical,
				fortune: firstNonEmpty(entry.Fortune, req.ResultFortune),
				element: entry.Element,
				dir:     entry.Direction,
				entry:   entry,
			}, nil
		}
	}

	name := strings.TrimSpace(req.ResultName)
	desc := strings.TrimSpace(req.ResultDescription)
	if desc == "" {
		return subject{}, fmt.Errorf("%w: %q", domain.ErrUnknownPosition, req.ResultName)
	}
	return subject{
		name:    name,
		fortune: strings.TrimSpace(req.ResultFortune),
		entry:   domain.NewKnowledgeEntry(name, "", req.ResultFortune, "", desc, nil),
	}, nil
}

type interpretation struct {
	built     prompt.Result
	source    Source
	prompt    *prompt.Prompt
	text      string
	model     string
	latencyMS int64
	err       error
}

func (s *DivinationService) interpret(ctx context.Context, sub subject, question string) interpretation {
	category := s.classifier.Classify(ctx, question)

	built := prompt.Build(prompt.Input{
		Name:      sub.name,
		Fortune:   sub.fortune,
		Element:   sub.element,
		Direction: sub.dir,
		Entry:     sub.entry,
		Category:  category,
		Question:  question,
	})
	s.logger.DebugContext(ctx, "question classified",
		"position", sub.name,
		"classified", category,
		"category", built.Category,
	)

	res := interpretation{
		built: built,
		source: Source{
			HexagramName:           sub.name,
			FiveElements:           orUnknown(sub.element),
			Fortune:                orUnknown(sub.fortune),
			Direction:              orUnknown(sub.dir),
			CategoryInterpretation: built.CategoryText,
			CoreCharacteristics:    built.CoreText,
		},
	}
	if s.opts.ExposePrompt {
		p := built.Prompt
		res.prompt = &p
	}

	start := time.Now()
	gen, err := s.generator.Generate(ctx, ports.GenerateRequest{
		System:      built.Prompt.System,
		User:        built.Prompt.User,
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	res.latencyMS = time.Since(start).Milliseconds()

	if err != nil {
		s.logger.WarnContext(ctx, "generation failed",
			"position", sub.name,
			"category", built.Category,
			"latency_ms", res.latencyMS,
			"error", err,
		)
		res.err = err
		return res
	}

	res.text = gen.Text
	res.model = interpretationModel(gen.Model, s.opts.Model)
	return res
}

func resolveHour(hour, clock *int) (domain.TraditionalHour, error) {
	var id int
	switch {
	case hour != nil:
		if !domain.ValidTraditionalHour(*hour) {
			return domain.TraditionalHour{}, fmt.Errorf("%w: traditional hour %d", domain.ErrInvalidHour, *hour)
		}
		id = *hour
	case clock != nil:
		if !domain.ValidClockHour(*clock) {
			return domain.TraditionalHour{}, fmt.Errorf("%w: clock hour %d", domain.ErrInvalidHour, *clock)
		}
		id = domain.NormalizeHour(*clock)
	default:
		return domain.TraditionalHour{}, fmt.Errorf("%w: no hour given", domain.ErrInvalidHour)
	}
	return domain.TraditionalHours()[id-1], nil
}

func interpretationModel(fromLLM, fallback string) string {
	if fromLLM != "" {
		return fromLLM
	}
	return fallback
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknownAttribute
	}
	return s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
