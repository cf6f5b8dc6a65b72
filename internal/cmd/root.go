// Package cmd implements the haggle command line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/haggle/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "haggle",
	Short: "Two-party price negotiation simulator",
	Long: `Haggle simulates alternating-offer price negotiations between a buyer
and a seller, each driven by a pluggable bargaining policy. Run single
sessions with full transcripts or whole tournaments comparing policies.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/haggle/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/haggle")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("HAGGLE")
	// HAGGLE_SESSION_BUDGET maps to session.budget and so on.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing config file is fine, defaults apply.
	_ = viper.ReadInConfig()
}
