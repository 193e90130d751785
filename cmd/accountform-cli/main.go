package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"

	accountform "github.com/goliatone/go-accountform"
	"github.com/goliatone/go-accountform/internal/config"
	"github.com/goliatone/go-accountform/internal/logger"
	"github.com/goliatone/go-accountform/pkg/form"
	"github.com/goliatone/go-accountform/pkg/openapi"
	"github.com/goliatone/go-accountform/pkg/render"
	"github.com/goliatone/go-accountform/pkg/renderers/tui"
	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/values"
	"github.com/goliatone/go-accountform/pkg/visibility"
)

func main() {
	configDir := flag.String("config", "", "directory holding config.yaml")
	schemaPath := flag.String("schema", "", "YAML schema file (built-in account schema if empty)")
	format := flag.String("format", "", "output format: json, form, yaml, pretty, html")
	output := flag.String("output", "", "output file (stdout if empty)")
	contract := flag.Bool("contract", false, "print the OpenAPI payload contract and exit")
	flag.Parse()

	var paths []string
	if *configDir != "" {
		paths = append(paths, *configDir)
	}
	cfg, err := config.LoadConfig("", paths...)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *schemaPath != "" {
		cfg.Schema.Path = *schemaPath
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *output != "" {
		cfg.Output.Path = *output
	}

	if err := logger.Init(cfg.Log.Level); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *contract); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(130)
		}
		log.Fatalf("accountform: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, contractOnly bool) error {
	cliLog := logger.WithModule("cli")

	s, err := accountform.LoadSchema(ctx, cfg.Schema.Path)
	if err != nil {
		return err
	}

	if contractOnly {
		doc := openapi.Document(s, "Account Setup", "1.0.0")
		raw, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal contract: %w", err)
		}
		return write(cfg.Output.Path, append(raw, '\n'))
	}

	outFormat, err := render.ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	initial, err := initialValues(s, cfg)
	if err != nil {
		return err
	}

	opts := []form.Option{
		form.WithValues(initial),
		form.WithLogger(logger.WithModule("form")),
	}
	if cfg.Form.ScrubHidden {
		opts = append(opts, form.WithScrubHidden(visibility.FromSchema(s)))
	}
	session, err := form.NewSession(s, opts...)
	if err != nil {
		return err
	}

	hints := accountform.Hints()
	renderer := tui.New(
		tui.WithHints(hints),
		tui.WithMaxAttempts(cfg.Form.MaxAttempts),
		tui.WithLogger(logger.WithModule("tui")),
		tui.WithTheme(tui.Theme{
			PromptPrefix: cfg.Theme.PromptPrefix,
			InfoPrefix:   cfg.Theme.InfoPrefix,
			ErrorPrefix:  cfg.Theme.ErrorPrefix,
		}),
	)
	cliLog.Debug("rendering form", zap.String("renderer", renderer.Name()), zap.Int("fields", s.Len()))
	if err := renderer.Render(ctx, session); err != nil {
		return err
	}

	serializer := render.NewSerializer(s, hints)
	sink := form.SubmitterFunc(func(_ context.Context, set values.Set) error {
		payload := render.Payload(s, set)
		if err := openapi.CheckPayload(s, payload); err != nil {
			var cerr *openapi.ContractError
			if errors.As(err, &cerr) {
				mapping := render.MapErrors(s, cerr.Violations)
				cliLog.Warn("payload rejected by contract",
					zap.Any("fields", mapping.Fields),
					zap.Strings("form", mapping.Form),
				)
			}
			return err
		}
		raw, err := serializer.Serialize(payload, outFormat)
		if err != nil {
			return err
		}
		return write(cfg.Output.Path, raw)
	})

	if err := session.Submit(ctx, sink); err != nil {
		if errors.Is(err, form.ErrInvalid) {
			fmt.Fprintln(os.Stderr, render.SummaryLine(s, session.Result(), hints))
		}
		return err
	}
	if cfg.Output.Path != "" {
		fmt.Printf("Account written to %s\n", cfg.Output.Path)
	}
	return nil
}

// initialValues seeds the built-in schema with its defaults and overlays any
// configured prefill entries.
func initialValues(s *schema.Schema, cfg *config.Config) (values.Set, error) {
	base := values.NewSet(nil)
	if cfg.Schema.Path == "" {
		base = accountform.Defaults()
	}
	prefill, err := values.ParseStrings(s, cfg.Prefill)
	if err != nil {
		return values.Set{}, fmt.Errorf("prefill: %w", err)
	}
	for _, field := range prefill.Fields() {
		base = base.With(field, prefill.Get(field))
	}
	return values.Complete(base, s), nil
}

func write(path string, raw []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(raw)
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
