package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/freedomd-dev/freedomd/internal/server"
)

func newServeCommand(dir *string) *cobra.Command {
	var addr string
	var jsonLogs bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis engine as a read-only JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if jsonLogs {
				log.SetFormatter(&logrus.JSONFormatter{})
			}
			return server.New(*dir, log).ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "log in JSON format")

	return cmd
}
