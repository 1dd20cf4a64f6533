package cmd

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ledgerconv/internal/config"
	"github.com/MrJamesThe3rd/ledgerconv/internal/format"
	"github.com/MrJamesThe3rd/ledgerconv/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "ledgerconv",
	Short: "Convert bank statement exports to five-column ledger CSV",
	Long: `ledgerconv converts bank statement exports (CSV, xlsx) into the fixed
Date,Payee,Memo,Inflow,Outflow format a budgeting application imports.

Describe a bank's layout once as a format definition, then reuse it:

  ledgerconv convert statement.csv
  ledgerconv convert statement.xlsx -f mybank -o ledger.csv
  ledgerconv formats list`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads environment config and wires the logger and format store.
func setup() (*config.Config, *logrus.Logger, *format.Store, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log := logging.New(cfg.App.LogLevel)

	return cfg, log, format.NewStore(cfg.Formats.Dir), nil
}
