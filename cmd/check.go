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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/iocatalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/errcode"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getCheckCmd returns the check command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCheckCmd() *cobra.Command {
	var reportPath string

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify catalog integrity",
		Long: `Verify that every cataloged model resolves to a matrix file.

This command:
  1. Loads the model catalog from the SQLite database
  2. Stats the matrix file of every record
  3. Reports totals and names the records with missing files

The command exits with an error when any matrix file is missing, so it
can gate a deployment of a new catalog.

Examples:
  emodeldb check
  emodeldb check --report report.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCheck(cmd, reportPath)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	checkCmd.Flags().StringVarP(&reportPath, "report", "r", "",
		"write a YAML report to this path")

	return checkCmd
}

// checkReport is the YAML document written by --report.
type checkReport struct {
	CheckedAt string   `yaml:"checked_at"`
	Database  string   `yaml:"database"`
	MatrixDir string   `yaml:"matrix_dir"`
	Models    int      `yaml:"models"`
	Found     int      `yaml:"found"`
	TotalSize string   `yaml:"total_size"`
	Missing   []string `yaml:"missing,omitempty"`
}

func runCheck(_ *cobra.Command, reportPath string) error {
	ctx := context.Background()
	start := time.Now()

	records, err := iocatalog.New(cfg).Load(ctx)
	if err != nil {
		return err
	}

	var missing []string
	var totalSize uint64

	bar := pb.Full.Start(len(records))
	bar.Set("prefix", "Checking matrix files: ")
	bar.Set(pb.CleanOnFinish, true)

	for _, rec := range records {
		path := filepath.Join(cfg.Catalog.MatrixDir, rec.MatrixFile)
		fi, err := os.Stat(path)
		if err != nil || fi.IsDir() {
			missing = append(missing, rec.Name)
		} else {
			totalSize += uint64(fi.Size())
		}
		bar.Add(1)
	}
	bar.Finish()

	rep := checkReport{
		CheckedAt: time.Now().Format(time.RFC3339),
		Database:  cfg.Catalog.Database,
		MatrixDir: cfg.Catalog.MatrixDir,
		Models:    len(records),
		Found:     len(records) - len(missing),
		TotalSize: humanize.Bytes(totalSize),
		Missing:   missing,
	}

	if reportPath != "" {
		data, err := yaml.Marshal(rep)
		if err != nil {
			return err
		}
		if err = os.WriteFile(reportPath, data, 0644); err != nil {
			return err
		}
		gn.Info("Report written to <em>%s</em>", reportPath)
	}

	gn.Info("Checked <em>%s</em> models in %s: %s of matrix data",
		humanize.Comma(int64(rep.Models)),
		gnfmt.TimeString(time.Since(start).Seconds()),
		rep.TotalSize,
	)

	if len(missing) > 0 {
		return &gn.Error{
			Code: errcode.MissingMatrixError,
			Msg: `Some models have no matrix file

<em>Missing:</em> %s`,
			Vars: []any{strings.Join(missing, ", ")},
			Err: fmt.Errorf(
				"%d of %d matrix files missing",
				len(missing), len(records),
			),
		}
	}

	gn.Info("All matrix files are in place")
	return nil
}
