package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-relay/internal/bootstrap"
	"resume-relay/internal/normalize"
	"resume-relay/internal/shared/config"
)

func main() {
	cfg := config.Load()

	op := flag.String("op", "analyze-text", "Operation: analyze-text|analyze-file|list-languages|translate-labels|translate-resume")
	filePath := flag.String("file", "", "Path to resume file (pdf, docx or txt) for analyze-file")
	text := flag.String("text", "", "Resume text for analyze-text (reads -file as text when empty)")
	lang := flag.String("lang", "fr", "Target language code")
	resumeJSON := flag.String("resume-json", "", "Path to resume JSON for translate-resume")
	outPath := flag.String("out", "", "Path to write JSON output (optional)")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	flag.Parse()

	cfg.LLMModel = *model
	ctx := context.Background()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		exitErr(fmt.Sprintf("bootstrap build: %v", err))
	}

	var (
		value  any
		source normalize.Source
	)

	switch strings.TrimSpace(*op) {
	case "analyze-text":
		input := *text
		if strings.TrimSpace(input) == "" && *filePath != "" {
			raw, err := os.ReadFile(*filePath)
			if err != nil {
				exitErr(fmt.Sprintf("read resume: %v", err))
			}
			input = string(raw)
		}
		out, err := app.AnalysesService.AnalyzeText(ctx, input)
		if err != nil {
			exitErr(fmt.Sprintf("analyze text: %v", err))
		}
		value, source = out.Value, out.Source
	case "analyze-file":
		if strings.TrimSpace(*filePath) == "" {
			exitErr("-file is required for analyze-file")
		}
		mimeType, err := mimeFromExt(*filePath)
		if err != nil {
			exitErr(err.Error())
		}
		data, err := os.ReadFile(*filePath)
		if err != nil {
			exitErr(fmt.Sprintf("read resume: %v", err))
		}
		out, err := app.AnalysesService.AnalyzeFile(ctx, data, mimeType, filepath.Base(*filePath))
		if err != nil {
			exitErr(fmt.Sprintf("analyze file: %v", err))
		}
		value, source = out.Value, out.Source
	case "list-languages":
		out, err := app.TranslationsService.ListLanguages(ctx)
		if err != nil {
			exitErr(fmt.Sprintf("list languages: %v", err))
		}
		value, source = out.Value, out.Source
	case "translate-labels":
		out, err := app.TranslationsService.TranslateLabels(ctx, *lang)
		if err != nil {
			exitErr(fmt.Sprintf("translate labels: %v", err))
		}
		value, source = out.Value, out.Source
	case "translate-resume":
		if strings.TrimSpace(*resumeJSON) == "" {
			exitErr("-resume-json is required for translate-resume")
		}
		raw, err := os.ReadFile(*resumeJSON)
		if err != nil {
			exitErr(fmt.Sprintf("read resume json: %v", err))
		}
		var data map[string]any
		if err := json.Unmarshal(raw, &data); err != nil {
			exitErr(fmt.Sprintf("invalid resume json: %v", err))
		}
		out, err := app.TranslationsService.TranslateResume(ctx, data, *lang)
		if err != nil {
			exitErr(fmt.Sprintf("translate resume: %v", err))
		}
		value, source = out.Value, out.Source
	default:
		exitErr(fmt.Sprintf("unsupported op: %s", *op))
	}

	pretty, err := prettyJSON(value)
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	_, _ = fmt.Fprintf(os.Stderr, "source: %s\n", source)
	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
}

func mimeFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf", nil
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	case ".txt":
		return "text/plain", nil
	default:
		return "", fmt.Errorf("unsupported resume file type: %s", filepath.Ext(path))
	}
}

func prettyJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
