package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ledgerconv/internal/convert"
	"github.com/MrJamesThe3rd/ledgerconv/internal/format"
	"github.com/MrJamesThe3rd/ledgerconv/internal/ledger"
)

var (
	convertOutput string
	convertFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert <statement-file>",
	Short: "Convert one statement file to ledger CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file (default: <input>.ledger.csv)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "format name (default: auto-detect from the saved formats)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, log, store, err := setup()
	if err != nil {
		return err
	}

	conv := convert.New(convert.Options{
		PayeeMaxLength: cfg.Output.PayeeMaxLength,
		MemoMaxLength:  cfg.Output.MemoMaxLength,
		Logger:         log,
	})

	def, err := pickFormat(conv, store, input)
	if err != nil {
		var matchErr *convert.MatchError
		if errors.As(err, &matchErr) && matchErr.Ambiguous() {
			return fmt.Errorf("%w\nre-run with -f to pick one", matchErr)
		}

		return err
	}

	report, err := conv.ConvertFile(input, def)
	if err != nil {
		return err
	}

	output := convertOutput
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".ledger.csv"
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := ledger.WriteCSV(f, report.Transactions); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("%s: %d rows, %d converted, %d failed (format %q) -> %s\n",
		input, report.NormalizedRows, report.Succeeded(), report.Failed(), report.Format, output)

	for _, rowErr := range report.RowErrors {
		fmt.Printf("  %s\n", rowErr.Error())
	}

	return nil
}

// pickFormat uses the named saved format, or matches the file's header
// against every saved format when none is named.
func pickFormat(conv *convert.Converter, store *format.Store, input string) (*format.Definition, error) {
	if convertFormat != "" {
		return store.Load(convertFormat)
	}

	defs, err := store.LoadAll()
	if err != nil {
		return nil, err
	}

	return conv.MatchFile(input, defs)
}
