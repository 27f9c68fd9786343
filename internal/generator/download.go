package generator

import (
	"context"

	"listfmt/internal/columns"
	"listfmt/internal/excel"
	"listfmt/internal/form"
	"listfmt/internal/logger"
)

// Download generates the workbook for req and saves it into dir.
func (c *Client) Download(ctx context.Context, dir string, req form.Request) (string, *excel.Summary, error) {
	result, err := c.Generate(ctx, req)
	if err != nil {
		return "", nil, err
	}

	if result.FileName != "" && result.FileName != FileName {
		logger.Debug("Ignoring suggested file name", "suggested", result.FileName, "using", FileName)
	}

	expected := columns.HeaderRow(req.DynamicColumns, req.CustomColumns)
	if !result.Summary.MatchesHeaders(expected) {
		logger.Warn("Generated headers differ from the configuration",
			"expected", expected,
			"actual", result.Summary.Headers)
	}

	path, err := Save(dir, result.Payload)
	if err != nil {
		return "", nil, err
	}
	return path, result.Summary, nil
}
