// Command seffaflik queries the EPİAŞ transparency platform from the shell.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:           "seffaflik",
	Short:         "Query the EPİAŞ transparency platform.",
	Long:          `seffaflik fetches Turkish electricity market series and prints them as tables, CSV, JSON or Parquet.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(entitiesCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(shapeCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to YAML config file")
	flags.String("api-key", "", "API key (default: credentials file or SEFFAFLIK_API_KEY)")
	flags.String("start", "", "Start date YYYY-MM-DD (default: today)")
	flags.String("end", "", "End date YYYY-MM-DD (default: today)")
	flags.String("output", "table", "Output format: table or csv or json or parquet")
	flags.String("out", "", "Optional path to write output to")
	flags.Int("workers", 0, "Fan-out workers (0 = number of CPUs)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("color", "auto", "Colored output: auto, yes or no")
	if err := viper.BindPFlags(flags); err != nil {
		fatal("Error binding root flags", err)
	}

	getCmd.Flags().String("entity", "", "Organization EIC code or plant/organization id")
	getCmd.Flags().String("period", "", "Period for period-aware series: hourly, daily, monthly, yearly")
	if err := viper.BindPFlags(getCmd.Flags()); err != nil {
		fatal("Error binding get flags", err)
	}

	for _, c := range []*cobra.Command{allCmd, rankCmd} {
		c.Flags().String("volume-type", "NET", "Volume side for volume fan-outs: NET, ARZ or TALEP")
	}
	rankCmd.Flags().Int("limit", 10, "Number of entities to show")
	entitiesCmd.Flags().Bool("from-file", false, "Read the snapshot written by update-entities")
	shapeCmd.Flags().String("file", "", "Saved API response (JSON) to shape offline")
	_ = shapeCmd.MarkFlagRequired("file")
}

// initConfig wires environment variables and the optional config file.
func initConfig() {
	viper.SetEnvPrefix("SEFFAFLIK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	switch strings.ToLower(viper.GetString("color")) {
	case "yes", "true", "1":
		color.NoColor = false
	case "no", "false", "0":
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func fatal(msg string, err error) {
	fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.Bold).Sprint(msg+":"), err)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal("Error", err)
	}
}
