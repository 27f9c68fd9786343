package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"listfmt/internal/config"
	"listfmt/internal/excel"
	"listfmt/internal/form"
	"listfmt/internal/generator"
	"listfmt/internal/logger"
	"listfmt/internal/tui"
)

func main() {
	command := "ui"
	if len(os.Args) >= 2 {
		command = os.Args[1]
	}

	cfg, err := config.LoadConfig("configs/config.toml")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.File, cfg.Log.Level); err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := generator.New(cfg.API.BaseURL, generator.WithEndpoint(cfg.API.Endpoint))

	var code int
	switch command {
	case "ui":
		code = runUI(ctx, cfg, client)
	case "generate":
		if len(os.Args) < 3 {
			fmt.Println("Error: generate command requires a layout file")
			fmt.Println("Usage: listfmt generate <layout.json>")
			code = 1
			break
		}
		code = runGenerate(ctx, cfg, client, os.Args[2])
	case "inspect":
		if len(os.Args) < 3 {
			fmt.Println("Error: inspect command requires an Excel file")
			fmt.Println("Usage: listfmt inspect <file.xlsx>")
			code = 1
			break
		}
		code = runInspect(os.Args[2])
	case "ping":
		code = runPing(ctx, cfg, client)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		code = 1
	}

	if code != 0 {
		logger.Close()
		os.Exit(code)
	}
}

func printUsage() {
	fmt.Println("listfmt - Customer list Excel format generator")
	fmt.Println("\nUsage:")
	fmt.Println("  listfmt [ui]                     - Open the interactive column form")
	fmt.Println("  listfmt generate <layout.json>   - Generate a format from a saved layout")
	fmt.Println("  listfmt inspect <file.xlsx>      - Show the headers and dropdowns of a format")
	fmt.Println("  listfmt ping                     - Check that the generation API is reachable")
}

func runUI(ctx context.Context, cfg *config.Config, client *generator.Client) int {
	uiConfig := tui.UIConfig{
		ShowHelp: cfg.UI.ShowHelp,
	}

	if err := tui.RunFormTUI(ctx, client, cfg.Output.Directory, uiConfig); err != nil {
		logger.Error("Form failed", "error", err)
		fmt.Printf("Error running form: %v\n", err)
		return 1
	}
	return 0
}

func runGenerate(ctx context.Context, cfg *config.Config, client *generator.Client, layoutPath string) int {
	logger.Info("Starting generate operation", "layout", layoutPath)

	layout, err := form.LoadLayout(layoutPath)
	if err != nil {
		logger.Error("Failed to load layout", "error", err)
		fmt.Printf("Error loading layout: %v\n", err)
		return 1
	}

	state, err := form.ApplyLayout(form.New(), layout)
	if err != nil {
		logger.Error("Invalid layout", "error", err)
		fmt.Printf("Invalid layout: %v\n", err)
		return 1
	}

	state, req, _ := state.BeginGenerate()
	path, summary, err := client.Download(ctx, cfg.Output.Directory, req)
	_, notice := state.FinishGenerate(path, err)
	if err != nil {
		logger.Error("Generate operation failed", "error", err)
		fmt.Printf("❌ %s\n", notice.Text)
		return 1
	}

	fmt.Printf("✓ %s\n", notice.Text)
	fmt.Printf("✓ %d columns on sheet '%s'\n", len(summary.Headers), summary.Sheet)
	return 0
}

func runInspect(path string) int {
	summary, err := excel.InspectFile(path)
	if err != nil {
		logger.Error("Inspect operation failed", "file", path, "error", err)
		fmt.Printf("Error reading Excel file: %v\n", err)
		return 1
	}

	fmt.Printf("Sheet: %s\n", summary.Sheet)
	fmt.Printf("Columns (%d):\n", len(summary.Headers))
	for i, header := range summary.Headers {
		fmt.Printf("  %2d. %s\n", i+1, header)
	}

	if len(summary.Dropdowns) > 0 {
		names := make([]string, 0, len(summary.Dropdowns))
		for name := range summary.Dropdowns {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println("Dropdowns:")
		for _, name := range names {
			fmt.Printf("  %s: %s\n", name, strings.Join(summary.Dropdowns[name], ", "))
		}
	}
	return 0
}

func runPing(ctx context.Context, cfg *config.Config, client *generator.Client) int {
	msg, err := client.Ping(ctx)
	if err != nil {
		logger.Error("Ping failed", "base_url", cfg.API.BaseURL, "error", err)
		fmt.Printf("❌ API server at %s is not reachable: %v\n", cfg.API.BaseURL, err)
		return 1
	}

	fmt.Printf("✓ %s (%s)\n", msg, cfg.API.BaseURL)
	return 0
}
