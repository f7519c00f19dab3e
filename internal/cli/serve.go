package cli

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pdfapi/internal/server"
	"pdfapi/pkg/config"
)

func ServeAppCommand() *cobra.Command {
	var (
		port           string
		envFile        string
		maxRequestSize string
	)

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to merge and split PDF documents over the web",
		Example: "pdfapi serve --port 8888 --max-request-size 32MiB",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := config.LoadServerConfig(envFile)
			if cmd.Flags().Changed("port") {
				c.Port = port
			}
			if cmd.Flags().Changed("max-request-size") {
				size, err := humanize.ParseBytes(maxRequestSize)
				if err != nil {
					return err
				}
				c.MaxRequestBytes = int64(size)
			}
			return server.StartServer(c)
		},
	}

	command.Flags().StringVar(&port, "port", config.DefaultPort, "Port on which to start the server")
	command.Flags().StringVar(&envFile, "env-file", ".env", "Env file with PDFAPI_* settings, ignored when missing")
	command.Flags().StringVar(&maxRequestSize, "max-request-size", humanize.IBytes(config.DefaultMaxRequestBytes), "Largest accepted request body, e.g. 64MiB")

	return command
}
