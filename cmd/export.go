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

	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/iocatalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/ioexport"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/errcode"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/filter"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/selection"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getExportCmd() *cobra.Command {
	var (
		output      string
		groups      []string
		matrixTypes []string
		name        string
		authors     string
		years       []int
		all         bool
	)

	exportCmd := &cobra.Command{
		Use:   "export [model ...]",
		Short: "Bundle matrix files from the command line",
		Long: `Export matrix files without the web interface.

Models are picked by name arguments, or by the same filters the web
interface offers. A single model downloads as the matrix file itself;
several models are bundled into a ZIP archive. If any selected model
lacks its matrix file the export aborts and no artifact is written.

Examples:
  # By name
  emodeldb export WAG LG

  # By filter
  emodeldb export --taxonomic-group Mammalia --year 2005,2010

  # Everything
  emodeldb export --all -o /tmp/matrices.zip`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(
				args, output, groups, matrixTypes,
				name, authors, years, all,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringVarP(&output, "output", "o", ".",
		"output file or directory")
	exportCmd.Flags().StringSliceVarP(&groups, "taxonomic-group", "g",
		nil, "filter by taxonomic group")
	exportCmd.Flags().StringSliceVarP(&matrixTypes, "matrix-type", "m",
		nil, "filter by matrix type")
	exportCmd.Flags().StringVarP(&name, "name", "n", "",
		"filter by name substring")
	exportCmd.Flags().StringVarP(&authors, "authors", "a", "",
		"filter by authors substring")
	exportCmd.Flags().IntSliceVarP(&years, "year", "y", nil,
		"filter by publication year")
	exportCmd.Flags().BoolVar(&all, "all", false,
		"export every cataloged model")

	return exportCmd
}

func runExport(
	args []string,
	output string,
	groups, matrixTypes []string,
	name, authors string,
	years []int,
	all bool,
) error {
	ctx := context.Background()

	records, err := iocatalog.New(cfg).Load(ctx)
	if err != nil {
		return err
	}

	sel := selection.New()

	if len(args) > 0 {
		var unknown []string
		for _, arg := range args {
			if _, ok := catalog.ByName(records, arg); !ok {
				unknown = append(unknown, arg)
				continue
			}
			sel.Add(arg)
		}
		if len(unknown) > 0 {
			return unknownModelError(unknown)
		}
	}

	preds := filter.Predicates{
		Name:            name,
		Authors:         authors,
		Years:           years,
		TaxonomicGroups: groups,
		MatrixTypes:     matrixTypes,
	}
	if all || !preds.IsZero() {
		sel.AddAll(filter.Apply(records, preds))
	}

	artifact, err := ioexport.New(cfg).Export(ctx, sel.Records(records))
	if err != nil {
		return err
	}

	path := output
	if fi, err := os.Stat(output); err == nil && fi.IsDir() {
		path = filepath.Join(output, artifact.Filename)
	}
	if err = os.WriteFile(path, artifact.Data, 0644); err != nil {
		return ioexport.WriteError(artifact.Filename, err)
	}

	gn.Info("Wrote <em>%s</em> (%s, %s models)",
		path,
		humanize.Bytes(uint64(len(artifact.Data))),
		humanize.Comma(int64(sel.Len())),
	)

	return nil
}

func unknownModelError(names []string) error {
	msg := `Some requested models are not in the catalog

<em>Unknown:</em> %s

Run <em>'emodeldb export --all'</em> or the web interface to see the
cataloged model names.`

	return &gn.Error{
		Code: errcode.UnknownModelError,
		Msg:  msg,
		Vars: []any{strings.Join(names, ", ")},
		Err: fmt.Errorf(
			"unknown models: %s", strings.Join(names, ", "),
		),
	}
}
