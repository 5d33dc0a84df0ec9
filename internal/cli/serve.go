package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/russross/blockdown/internal/server"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP preview server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			logger := a.log
			if logger == nil {
				logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			root := a.cfg.GetString("serve.root")
			logger.Printf("serve: documents from %s", root)
			return server.New(a.cfg, server.Dir(root), logger).ListenAndServe(ctx)
		},
	}
	cmd.Flags().String("addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().String("root", ".", "directory served under /doc/")
	_ = v.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("serve.root", cmd.Flags().Lookup("root"))
	return cmd
}
