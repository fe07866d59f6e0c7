package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/gate-register/internal/app"
	"github.com/pkordes/gate-register/internal/config"
	"github.com/pkordes/gate-register/internal/domain"
	"github.com/pkordes/gate-register/internal/service"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type exportOptions struct {
	status string
	search string
	sort   string
	dir    string
	out    string
	bom    bool
	env    []string
}

// newRootCmd builds the command. open and now are injected so tests can run
// it without a database or a real clock.
func newRootCmd(open app.OpenFunc, now func() time.Time) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "gate-export",
		Short: "Export the gate register as CSV",
		Long: `Export the gate register as CSV, one row per vehicle.

The data source is configured the same way as the API server
(DATA_SOURCE, DATABASE_URL, REGISTER_API_URL, REGISTER_API_TOKEN).`,
		Example: `  gate-export --status owner --out /srv/exports
  gate-export --search "acacia" --sort erf_nr --dir desc --out -`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts, open, now)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.status, "status", "all", "resident status: all, resident, owner, owner-resident")
	f.StringVar(&opts.search, "search", "", "only entries matching this text")
	f.StringVar(&opts.sort, "sort", string(domain.ColumnStreetName), "sort column")
	f.StringVar(&opts.dir, "dir", string(domain.Asc), "sort direction: asc or desc")
	f.StringVarP(&opts.out, "out", "o", ".", `directory for the export file, a file path ending in .csv, or "-" for stdout`)
	f.BoolVar(&opts.bom, "bom", true, "start the file with a UTF-8 byte order mark")
	f.StringSliceVar(&opts.env, "env-file", nil, "env files to load before reading configuration (default .env)")

	return cmd
}

func runExport(cmd *cobra.Command, opts exportOptions, open app.OpenFunc, now func() time.Time) error {
	criteria, spec, err := opts.view()
	if err != nil {
		return err
	}

	if err := config.LoadDotEnv(opts.env...); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	ctx := cmd.Context()
	src, closeSource, err := open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	export, err := service.NewGateRegisterService(src, logger).Export(ctx, criteria, spec, now())
	if err != nil {
		return err
	}

	if opts.out == "-" {
		return writeExport(cmd.OutOrStdout(), export, opts.bom)
	}

	path := opts.out
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		path = filepath.Join(path, export.Filename)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := writeExport(f, export, opts.bom); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", export.Rows, path)
	return nil
}

// view parses the filter and sort flags.
func (o exportOptions) view() (domain.FilterCriteria, domain.SortSpec, error) {
	status, err := domain.ParseStatusFilter(o.status)
	if err != nil {
		return domain.FilterCriteria{}, domain.SortSpec{}, err
	}
	col, err := domain.ParseSortColumn(o.sort)
	if err != nil {
		return domain.FilterCriteria{}, domain.SortSpec{}, err
	}
	dir, err := domain.ParseSortDirection(o.dir)
	if err != nil {
		return domain.FilterCriteria{}, domain.SortSpec{}, err
	}
	return domain.FilterCriteria{Status: status, Search: strings.TrimSpace(o.search)},
		domain.SortSpec{Column: col, Direction: dir}, nil
}

func writeExport(w io.Writer, export domain.Export, bom bool) error {
	if bom {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	}
	if _, err := w.Write(export.Content); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
