package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/gate-register/internal/app"
	"github.com/pkordes/gate-register/internal/config"
	"github.com/pkordes/gate-register/internal/domain"
	"github.com/pkordes/gate-register/internal/source"
)

// maxImportBytes caps the file read so a wrong path cannot exhaust memory.
const maxImportBytes = 32 << 20

// importFunc writes entries to the configured store. app.ImportEntries in
// production.
type importFunc func(ctx context.Context, cfg config.Config, log *slog.Logger, entries []domain.GateEntry) ([]domain.GateEntry, error)

type importOptions struct {
	dryRun bool
	env    []string
}

func newRootCmd(importEntries importFunc) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "gate-import FILE",
		Short: "Import gate entries from a JSON file",
		Long: `Import gate entries into the Postgres register.

FILE holds a JSON array of entries in the register API format; "-" reads
stdin. Every entry needs an ERF number. The import runs in one transaction,
so a failure leaves the register unchanged.`,
		Example: `  gate-import residents.json
  curl -s "$REGISTER_API_URL/api/gate-register" | gate-import -`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], opts, importEntries)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.dryRun, "dry-run", false, "parse the file and report what would be imported without writing")
	f.StringSliceVar(&opts.env, "env-file", nil, "env files to load before reading configuration (default .env)")

	return cmd
}

func runImport(cmd *cobra.Command, path string, opts importOptions, importEntries importFunc) error {
	entries, err := readEntries(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "would import %d entries with %d vehicles\n", len(entries), vehicleTotal(entries))
		return nil
	}

	if err := config.LoadDotEnv(opts.env...); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	created, err := importEntries(cmd.Context(), cfg, logger, entries)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries with %d vehicles\n", len(created), vehicleTotal(created))
	return nil
}

func readEntries(stdin io.Reader, path string) ([]domain.GateEntry, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	body, err := io.ReadAll(io.LimitReader(r, maxImportBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	if len(body) > maxImportBytes {
		return nil, fmt.Errorf("%w: import file is larger than %d bytes", domain.ErrValidation, maxImportBytes)
	}

	entries, err := source.DecodeEntries(body)
	if err != nil {
		return nil, fmt.Errorf("%w: decode import file: %v", domain.ErrValidation, err)
	}
	return entries, nil
}

func vehicleTotal(entries []domain.GateEntry) int {
	n := 0
	for _, e := range entries {
		n += e.VehicleCount()
	}
	return n
}
