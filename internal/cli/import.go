package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/fx_deal_system/internal/core/domain"
	portssvc "github.com/SscSPs/fx_deal_system/internal/core/ports/services"
	"github.com/SscSPs/fx_deal_system/internal/core/services"
	"github.com/SscSPs/fx_deal_system/internal/dto"
	"github.com/SscSPs/fx_deal_system/internal/middleware"
	"github.com/SscSPs/fx_deal_system/internal/platform/validation"
	"github.com/SscSPs/fx_deal_system/internal/repositories/database/pgsql"
	"github.com/SscSPs/fx_deal_system/internal/utils"
	"github.com/SscSPs/fx_deal_system/pkg/database"
	"github.com/spf13/cobra"
)

var (
	strictImport bool
	dryRunImport bool
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a JSON array of deals straight into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger := getConfig()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open deal file: %w", err)
		}
		defer f.Close()

		batch, err := decodeDeals(f)
		if err != nil {
			return err
		}

		if dryRunImport {
			v, err := validation.New()
			if err != nil {
				return err
			}
			return checkDeals(batch, cmd.OutOrStdout(), v, strictImport)
		}

		if err := requireDatabaseURL(cfg); err != nil {
			return err
		}
		ctx := middleware.WithLogger(cmd.Context(), logger)
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
			MaxConns:        cfg.DBMaxConns,
			MinConns:        cfg.DBMinConns,
			MaxConnLifetime: cfg.DBConnMaxLifetime,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize database pool: %w", err)
		}
		defer database.ClosePgxPool(dbPool)

		svcs := services.NewServiceContainer(pgsql.NewRepositoryProvider(dbPool))
		return importDeals(ctx, batch, cmd.OutOrStdout(), svcs.Deal, strictImport)
	},
}

func init() {
	importCmd.Flags().BoolVar(&strictImport, "strict", false, "Exit with an error if any deal fails")
	importCmd.Flags().BoolVar(&dryRunImport, "dry-run", false, "Only check the shape of each deal, without touching the database")
}

// decodeDeals reads a JSON array of deals; only a file that is not such an array is rejected.
func decodeDeals(r io.Reader) (*dto.DealBatch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read deal file: %w", err)
	}
	batch, err := dto.DecodeDealBatch(data)
	if err != nil {
		return nil, fmt.Errorf("invalid deal file: %w", err)
	}
	return batch, nil
}

// importDeals runs every deal through the bulk importer and writes one line per result plus a summary.
func importDeals(ctx context.Context, batch *dto.DealBatch, w io.Writer, importer portssvc.DealBulkImporterSvc, strict bool) error {
	results := batch.Merge(importer.ImportDeals(ctx, batch.Requests()))

	failed := 0
	for _, res := range results {
		if res.Status == domain.DealStatusFailed {
			failed++
		}
		line := fmt.Sprintf("%-7s %s: %s", res.Status, res.DealUniqueID, res.Message)
		if res.DealAmount != nil {
			line += fmt.Sprintf(" (%s %s -> %s)", res.FromCurrencyISOCode,
				utils.FormatWithCurrencyPrecision(*res.DealAmount, res.FromCurrencyISOCode), res.ToCurrencyISOCode)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "imported %d of %d deals, %d failed\n", len(results)-failed, len(results), failed)

	if strict && failed > 0 {
		return fmt.Errorf("%d of %d deals failed to import", failed, len(results))
	}
	return nil
}

// checkDeals applies the transport-shape rules to every deal without importing anything.
func checkDeals(batch *dto.DealBatch, w io.Writer, v *validation.Validator, strict bool) error {
	invalid := 0
	for i, item := range batch.Items {
		err := item.DecodeErr
		if err == nil {
			err = v.ValidateStruct(item.Request)
		}
		if err == nil {
			fmt.Fprintf(w, "OK      #%d %s\n", i, item.DealUniqueID)
			continue
		}
		invalid++
		fmt.Fprintf(w, "INVALID #%d %s: %s\n", i, item.DealUniqueID, err.Error())
	}
	fmt.Fprintf(w, "checked %d deals, %d invalid\n", len(batch.Items), invalid)

	if strict && invalid > 0 {
		return fmt.Errorf("%d of %d deals are invalid", invalid, len(batch.Items))
	}
	return nil
}
