package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/randomtoy/liuren-go/internal/adapters/calendar"
	"github.com/randomtoy/liuren-go/internal/app"
	"github.com/randomtoy/liuren-go/internal/config"
	"github.com/randomtoy/liuren-go/internal/domain"
	"github.com/randomtoy/liuren-go/internal/render"
)

type castOptions struct {
	date     string
	hour     int
	clock    int
	question string
	lang     string
	plain    bool
}

func newCastCmd() *cobra.Command {
	var opts castOptions

	cmd := &cobra.Command{
		Use:   "cast",
		Short: "Cast a divination for a date and hour",
		Long: "Cast computes the position for a solar date and hour. With --question it also\n" +
			"classifies the question and asks the configured backend for an interpretation.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCast(cmd.Context(), cmd.OutOrStdout(), opts, time.Now())
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "Solar date as YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&opts.hour, "hour", 0, "Traditional hour 1-12 (overrides --clock)")
	cmd.Flags().IntVar(&opts.clock, "clock", -1, "Clock hour 0-23 (default now)")
	cmd.Flags().StringVarP(&opts.question, "question", "q", "", "Question to interpret")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "Display language: zh or en")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Disable styling")
	return cmd
}

func runCast(ctx context.Context, w io.Writer, opts castOptions, now time.Time) error {
	req, err := castRequest(opts, now)
	if err != nil {
		return err
	}
	r := render.New(opts.plain || !isTerminal(w))

	if strings.TrimSpace(req.Question) == "" {
		placed, err := app.Locate(calendar.NewLunar(), req)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, r.Placement(placed))
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := buildService(ctx, cfg, newLogger(cfg.LogLevel))
	if err != nil {
		return err
	}
	out, err := svc.Cast(ctx, req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, r.Outcome(out))
	return err
}

func castRequest(opts castOptions, now time.Time) (app.CastRequest, error) {
	day := now
	if opts.date != "" {
		d, err := time.Parse(time.DateOnly, opts.date)
		if err != nil {
			return app.CastRequest{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, opts.date)
		}
		day = d
	}

	req := app.CastRequest{
		Year:     day.Year(),
		Month:    int(day.Month()),
		Day:      day.Day(),
		Question: opts.question,
	}

	switch {
	case opts.hour != 0:
		req.Hour = &opts.hour
	case opts.clock >= 0:
		req.ClockHour = &opts.clock
	default:
		h := now.Hour()
		req.ClockHour = &h
	}

	if opts.lang != "" {
		lang, ok := domain.ParseLanguage(opts.lang)
		if !ok {
			return app.CastRequest{}, fmt.Errorf("unsupported language %q", opts.lang)
		}
		req.Lang = lang
	}
	return req, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func newHoursCmd() *cobra.Command {
	var (
		plain bool
		lang  string
	)

	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Print the traditional hour table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, ok := domain.ParseLanguage(lang)
			if !ok {
				return fmt.Errorf("unsupported language %q", lang)
			}
			w := cmd.OutOrStdout()
			r := render.New(plain || !isTerminal(w))
			_, err := fmt.Fprint(w, r.Hours(domain.TraditionalHours(), l))
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styling")
	cmd.Flags().StringVar(&lang, "lang", "zh", "Display language: zh or en")
	return cmd
}
