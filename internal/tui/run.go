package tui

import (
	"context"
	"fmt"

	"listfmt/internal/form"
	"listfmt/internal/generator"
	"listfmt/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
)

// RunFormTUI starts the interactive column configuration form. Generated
// workbooks are saved into outputDir.
func RunFormTUI(ctx context.Context, client *generator.Client, outputDir string, uiConfig UIConfig) error {
	generate := func(ctx context.Context, req form.Request) (string, error) {
		path, _, err := client.Download(ctx, outputDir, req)
		return path, err
	}

	m := initialModel(ctx, generate, uiConfig)

	logger.Info("Starting form", "output_directory", outputDir)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	final := finalModel.(model)
	logger.Info("Form closed",
		"dynamic_columns", len(final.form.DynamicColumns),
		"custom_columns", len(final.form.CustomColumns))
	return nil
}
