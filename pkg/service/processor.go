package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/grupobu/tabelao/pkg/config"
	"github.com/grupobu/tabelao/pkg/models"
	"github.com/grupobu/tabelao/pkg/partition"
	"github.com/grupobu/tabelao/pkg/render"
	"github.com/grupobu/tabelao/pkg/transform"
	"github.com/grupobu/tabelao/pkg/workbook"
)

// Processor runs one batch transform: load the workbook, clean every
// BU sheet, partition by month and write the configured output.
type Processor struct {
	cfg    *config.Config
	logger *log.Logger
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		cfg:    cfg,
		logger: logger,
	}
}

// Run executes the whole pipeline. A missing source file fails before
// anything is written; a single unreadable sheet only skips its BU, the
// rest of the run proceeds.
func (p *Processor) Run() error {
	if p.cfg.SourcePath == "" {
		return fmt.Errorf("no source spreadsheet configured")
	}
	if _, err := os.Stat(p.cfg.SourcePath); err != nil {
		return fmt.Errorf("source spreadsheet: %w", err)
	}
	source := filepath.Base(p.cfg.SourcePath)

	transformer := transform.New(p.cfg.DefaultYear, p.cfg.MaxRowsPerBU, p.cfg.MoneyAliases, p.logger)
	builder := partition.NewManifestBuilder(source)

	var allChunks []partition.Chunk
	var tables []render.BUTable
	monthSet := make(map[string]bool)

	for _, bu := range p.cfg.BUs {
		table, err := workbook.ReadSheet(p.cfg.SourcePath, bu.Sheet)
		if err != nil {
			p.logger.Error("skipping business unit", "bu", bu.Key, "sheet", bu.Sheet, "error", err)
			continue
		}

		res := transformer.Transform(table)
		p.logger.Info("sheet transformed",
			"bu", bu.Key,
			"rows", len(res.Rows),
			"dropped", res.Dropped,
			"date_column", res.DateColumn)

		chunks := partition.Split(bu.Key, res.Rows, res.MonthKeys, p.cfg.MaxChunkRows)
		builder.AddChunks(chunks)
		builder.AddDropped(bu.Key, res.Dropped)
		allChunks = append(allChunks, chunks...)

		tables = append(tables, render.BUTable{
			Key:       bu.Key,
			Label:     bu.Label,
			Columns:   res.Columns,
			Kinds:     res.Kinds,
			Rows:      res.Rows,
			MonthKeys: res.MonthKeys,
		})
		for _, m := range res.MonthKeys {
			if m != models.MonthNone {
				monthSet[m] = true
			}
		}
	}

	switch p.cfg.Mode {
	case config.ModeJSON:
		if err := render.JSON(p.cfg.OutputDir, allChunks, builder.Build()); err != nil {
			return err
		}
		p.logger.Info("json output written", "dir", p.cfg.OutputDir, "chunks", len(allChunks))
	case config.ModeHTML:
		months := make([]string, 0, len(monthSet))
		for m := range monthSet {
			months = append(months, m)
		}
		sort.Strings(months)
		if err := render.HTML(p.cfg.OutputDir, source, tables, months); err != nil {
			return err
		}
		p.logger.Info("dashboard written", "file", filepath.Join(p.cfg.OutputDir, "index.html"))
	default:
		return fmt.Errorf("unknown output mode %q", p.cfg.Mode)
	}
	return nil
}
