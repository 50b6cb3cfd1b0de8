package main

import (
	"fmt"

	"github.com/CodMac/go-treesitter-java-checks/checks"
	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/CodMac/go-treesitter-java-checks/noisefilter"
	"github.com/CodMac/go-treesitter-java-checks/output"
	"github.com/CodMac/go-treesitter-java-checks/processor"
	"github.com/spf13/cobra"
)

func newHierarchyCmd() *cobra.Command {
	var (
		out          string
		showImplicit bool
	)
	cmd := &cobra.Command{
		Use:   "hierarchy [path]",
		Short: "Render the per-file type hierarchy as a Mermaid diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			logger := newLogger()

			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			files, err := processor.Discover(root, model.LangJava, cfg.Paths.Exclude)
			if err != nil {
				return err
			}
			engine, err := checks.NewEngine(cfg.ChecksConfig(), logger)
			if err != nil {
				return err
			}
			proc, err := processor.NewFileProcessor(model.LangJava, engine, processor.WithLogger(logger))
			if err != nil {
				return err
			}

			var contexts []*core.FileContext
			for _, path := range files {
				fc, err := proc.AnalyzeFile(path)
				if err != nil {
					logger.Warn("skipping file", "file", path, "err", err)
					continue
				}
				contexts = append(contexts, fc)
			}

			noise := noisefilter.GetNoiseFilter(model.LangJava)
			if showImplicit {
				noise = nil
			}

			if out == "" {
				return output.WriteMermaidGraph(cmd.OutOrStdout(), contexts, noise)
			}
			if err := output.ExportMermaidHTML(out, contexts, noise); err != nil {
				return fmt.Errorf("error writing %s: %w", out, err)
			}
			logger.Info("hierarchy written", "file", out, "types", countTypes(contexts))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write an HTML page to file instead of the graph to stdout")
	cmd.Flags().BoolVar(&showImplicit, "show-implicit", false, "keep edges to implicit supertypes such as java.lang.Object")
	return cmd
}

func countTypes(contexts []*core.FileContext) int {
	n := 0
	for _, fc := range contexts {
		for _, def := range fc.Definitions() {
			if def.Symbol.IsType() {
				n++
			}
		}
	}
	return n
}
