package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Inspect saved format definitions",
}

var formatsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved format definitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, store, err := setup()
		if err != nil {
			return err
		}

		defs, err := store.LoadAll()
		if err != nil {
			return err
		}

		if len(defs) == 0 {
			fmt.Println("no saved formats")
			return nil
		}

		for _, def := range defs {
			fmt.Printf("%-20s %-13s date=%s\n", def.Name, def.AmountMode, def.DateFormat)
		}

		return nil
	},
}

var formatsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print one format definition as TOML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, store, err := setup()
		if err != nil {
			return err
		}

		def, err := store.Load(args[0])
		if err != nil {
			return err
		}

		data, err := toml.Marshal(def)
		if err != nil {
			return err
		}

		fmt.Print(string(data))

		return nil
	},
}

func init() {
	formatsCmd.AddCommand(formatsListCmd, formatsShowCmd)
	rootCmd.AddCommand(formatsCmd)
}
