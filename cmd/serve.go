package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/tutils/untwist/logger"
	"github.com/tutils/untwist/server"
	"github.com/tutils/untwist/tcp"
	"golang.org/x/sync/errgroup"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve sequences over websocket and plain tcp",
	Long: `Start a websocket server streaming one value per message, For example:
  untwist serve --listen=0.0.0.0:8080
  then connect to ws://127.0.0.1:8080/stream?algo=lcg&seed=1000&kind=double&count=100
With --tcp-listen the same queries are also accepted as a single line over tcp:
  echo 'seed=1000&count=5' | nc 127.0.0.1 8081`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.NewServer(
			server.WithListenAddress(serveListenAddress),
			server.WithPath(servePath),
			server.WithMaxCount(serveMaxCount),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		var lineSrv *tcp.Server
		if serveTCPListenAddress != "" {
			lineSrv = tcp.NewServer(
				tcp.WithListenAddress(serveTCPListenAddress),
				tcp.WithHandler(srv),
				tcp.WithKeepAlive(30*time.Second, 3),
				tcp.WithBaseContextFunc(func(net.Listener) context.Context { return ctx }),
			)
			g.Go(func() error {
				if err := lineSrv.ListenAndServe(); !errors.Is(err, tcp.ErrServerClosed) {
					return err
				}
				return nil
			})
		}

		g.Go(func() error {
			<-ctx.Done()
			logger.Log().Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err := srv.Shutdown(shutdownCtx)
			if lineSrv != nil {
				err = errors.Join(err, lineSrv.Shutdown(shutdownCtx))
			}
			return err
		})
		return g.Wait()
	},
}

var (
	serveListenAddress    string
	serveTCPListenAddress string
	servePath             string
	serveMaxCount         int64
)

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringVarP(&serveListenAddress, "listen", "l", server.DefaultListenAddress, "websocket listen address")
	flags.StringVar(&serveTCPListenAddress, "tcp-listen", "", "line protocol listen address, disabled when empty")
	flags.StringVar(&servePath, "path", server.DefaultPath, "websocket endpoint path")
	flags.Int64Var(&serveMaxCount, "max-count", server.DefaultMaxCount, "longest sequence a client may request")
}
