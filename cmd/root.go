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
	"fmt"
	"log/slog"
	"os"

	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/ioconfig"
	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/iofs"
	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/iologger"
	app "github.com/Paula-Iglesias-Rivas/EModelDB/pkg"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	cfg     *config.Config
)

// getRootCmd returns the root command. Extracted as a function to
// facilitate testing and dynamic command registration.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf(
			"version: %s\nbuild:   %s", app.Version, app.Build,
		),
		Use:   "emodeldb",
		Short: "EModelDB browses empirical substitution models of protein evolution",
		Long: `EModelDB is a browser over a curated catalog of empirical amino acid
substitution models. Each model carries its publication metadata and a
substitution matrix file ready for phylogenetic software.

The tool provides three commands:
  - serve:  start the web interface for filtering, selecting and
            downloading matrices
  - check:  verify that every cataloged model resolves to a matrix file
  - export: bundle matrices from the command line, bypassing the web UI

Configuration precedence (highest to lowest):
  1. CLI flags (--host, --port, etc.)
  2. Environment variables (EMODELDB_*)
  3. Config file (~/.config/emodeldb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (web.port becomes EMODELDB_WEB_PORT).

  Examples:
    EMODELDB_CATALOG_DATABASE    path to the SQLite catalog
    EMODELDB_CATALOG_MATRIX_DIR  directory with matrix files
    EMODELDB_WEB_HOST            interface to bind
    EMODELDB_WEB_PORT            port to bind
    EMODELDB_LOG_LEVEL           log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "emodeldb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for emodeldb")

	rootCmd.AddCommand(getServeCmd())
	rootCmd.AddCommand(getCheckCmd())
	rootCmd.AddCommand(getExportCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	err = iologger.Init(config.LogDir(homeDir), defaultLog, false)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgFile *config.Config
	if cfgFile, err = ioconfig.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgFile.ToOptions())

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the log
	// file opened above.
	err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
