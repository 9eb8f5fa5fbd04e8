/*
Copyright © 2025 Paula Iglesias Rivas <paula.iglesias.rivas@uvigo.es>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/iocatalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/ioexport"
	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/ioweb"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/config"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getServeCmd returns the serve command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the EModelDB web interface",
		Long: `Start the web interface for browsing the model catalog.

This command:
  1. Loads the model catalog from the SQLite database
  2. Serves the listing with filters, selection and matrix download
  3. Shuts down cleanly on SIGINT/SIGTERM

Examples:
  emodeldb serve
  emodeldb serve --port 8080
  emodeldb serve --host 0.0.0.0 -p 80`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runServe(cmd, host, port)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	serveCmd.Flags().StringVarP(&host, "host", "H", "",
		"interface to bind (overrides config)")
	serveCmd.Flags().IntVarP(&port, "port", "p", 0,
		"port to bind (overrides config)")

	return serveCmd
}

func runServe(cmd *cobra.Command, host string, port int) error {
	ctx, stop := signal.NotifyContext(
		cmd.Context(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	var serveOpts []config.Option
	if cmd.Flags().Changed("host") {
		serveOpts = append(serveOpts, config.OptWebHost(host))
	}
	if cmd.Flags().Changed("port") {
		serveOpts = append(serveOpts, config.OptWebPort(port))
	}
	if len(serveOpts) > 0 {
		cfg.Update(serveOpts)
	}

	records, err := iocatalog.New(cfg).Load(ctx)
	if err != nil {
		return err
	}

	gn.Info("Loaded <em>%s</em> substitution models from %s",
		humanize.Comma(int64(len(records))), cfg.Catalog.Database)

	srv, err := ioweb.New(cfg, records, ioexport.New(cfg))
	if err != nil {
		return err
	}

	gn.Info("EModelDB is listening on <em>http://%s</em>", srv.Addr())
	gn.Info("Press Ctrl-C to stop")

	return srv.Run(ctx)
}
