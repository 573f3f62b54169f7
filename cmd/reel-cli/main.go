package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/janhq/reel-api/internal/client"
)

var version = "1.0.0"

const (
	keyServer  = "server"
	keyTimeout = "timeout"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("REEL_API")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyServer, client.DefaultServerURL)
	// The server URL comes from REEL_API_URL rather than REEL_API_SERVER.
	_ = v.BindEnv(keyServer, "REEL_API_URL")

	rootCmd := &cobra.Command{
		Use:   "reel-cli",
		Short: "Fetch direct download links for social video reels",
		Long: `reel-cli asks a running reel-api server for the downloadable media of a reel link
and shows the recommended download.

Examples:
  reel-cli fetch ` + client.ExampleLink + `
  reel-cli fetch ` + client.ExampleLink + ` --all
  reel-cli fetch ` + client.ExampleLink + ` --output json
  REEL_API_URL=http://reels.internal:8290 reel-cli fetch ` + client.ExampleLink,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(keyServer, client.DefaultServerURL, "reel-api base URL (env REEL_API_URL)")
	rootCmd.PersistentFlags().Duration(keyTimeout, 0, "request timeout, 0 for none")
	_ = v.BindPFlag(keyServer, rootCmd.PersistentFlags().Lookup(keyServer))
	_ = v.BindPFlag(keyTimeout, rootCmd.PersistentFlags().Lookup(keyTimeout))

	rootCmd.AddCommand(newFetchCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
