// Package cmd implements the emag-catalog CLI: the MCP and HTTP servers
// plus one command per catalog operation.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "emag-catalog",
	Short: "Browse the eMAG catalog from MCP hosts and the terminal",
	Long: "emag-catalog exposes the eMAG product catalog (categories, faceted search,\n" +
		"product pages and reviews) as MCP tools, as a REST API and as CLI commands.\n\n" +
		"Catalog commands call eMAG directly unless --server points them at a\n" +
		"running serve-http instance.",
	SilenceUsage: true,
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file path (defaults apply when empty)")
	flags.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.String("log-format", "", "log format: text, json (overrides config)")
	flags.String("server", "", "emag-catalog API URL; catalog commands call eMAG directly when empty")
	flags.String("output", "table", "output format (table, json)")

	for _, name := range []string{"config", "log-level", "log-format", "server", "output"} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(serveHTTPCommand())
	rootCmd.AddCommand(categoriesCommand())
	rootCmd.AddCommand(categoryCommand())
	rootCmd.AddCommand(searchCommand())
	rootCmd.AddCommand(productCommand())
	rootCmd.AddCommand(reviewsCommand())
	rootCmd.AddCommand(versionCommand())
}

func initConfig() {
	viper.SetEnvPrefix("EMAG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
