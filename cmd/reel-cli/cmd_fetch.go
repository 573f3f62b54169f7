package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/janhq/reel-api/internal/client"
)

func newFetchCmd(v *viper.Viper) *cobra.Command {
	var (
		output string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <link>",
		Short: "Fetch download links for a reel",
		Long: `Resolve a reel link through reel-api and print the recommended download.

The recommended download is the highest quality video; when the reel has no
video the highest quality media of any type is used.

Example:
  reel-cli fetch ` + client.ExampleLink,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(output)
			if err != nil {
				return err
			}

			api := client.New(v.GetString(keyServer), v.GetDuration(keyTimeout))
			session := client.NewSession(api)

			view := session.Submit(cmd.Context(), args[0])
			if view.State == client.StateError {
				return errors.New(view.Message)
			}

			return render(cmd.OutOrStdout(), view, format, all)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(formatText), "output format: text, json or yaml")
	cmd.Flags().BoolVar(&all, "all", false, "list every media variant")

	return cmd
}
