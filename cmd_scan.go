package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/CodMac/go-treesitter-java-checks/checks"
	"github.com/CodMac/go-treesitter-java-checks/config"
	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/CodMac/go-treesitter-java-checks/output"
	"github.com/CodMac/go-treesitter-java-checks/processor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type scanOptions struct {
	format  string
	output  string
	workers int
	rules   []string
	failOn  bool
}

func newScanCmd() *cobra.Command {
	opts := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Analyze Java sources under path (default: current directory)",
		Example: `  # Scan the current project
  javacheck scan

  # Only run S2057 and write JSONL to a file
  javacheck scan ./src --rules S2057 --format jsonl --output findings.jsonl`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runScan(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text|jsonl")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write results to file instead of stdout")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "number of concurrent workers (overrides config)")
	cmd.Flags().StringSliceVar(&opts.rules, "rules", nil, "comma separated rule keys to run (overrides config)")
	cmd.Flags().BoolVar(&opts.failOn, "fail-on-findings", false, "exit with status 2 when any finding is reported")
	return cmd
}

var errFindings = errors.New("findings reported")

func runScan(cmd *cobra.Command, root string, opts *scanOptions) error {
	logger := newLogger()

	if opts.format != "text" && opts.format != "jsonl" {
		return fmt.Errorf("unsupported format %q (want text or jsonl)", opts.format)
	}

	// 1. 加载配置，命令行参数优先
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if opts.workers > 0 {
		cfg.Analysis.Workers = opts.workers
	}
	if len(opts.rules) > 0 {
		cfg.Rules.Enabled = opts.rules
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}

	// 2. 查找所有要分析的文件
	files, err := processor.Discover(root, model.LangJava, cfg.Paths.Exclude)
	if err != nil {
		return err
	}

	// 3. 启动处理器
	engine, err := checks.NewEngine(cfg.ChecksConfig(), logger, cfg.RuleKeys()...)
	if err != nil {
		return err
	}
	registry := prometheus.NewRegistry()
	proc, err := processor.NewFileProcessor(model.LangJava, engine,
		processor.WithWorkers(cfg.Analysis.Workers),
		processor.WithSemantic(cfg.Analysis.Semantic),
		processor.WithLogger(logger),
		processor.WithMetrics(processor.NewMetrics(registry)),
	)
	if err != nil {
		return err
	}

	findings, err := proc.ProcessFiles(cmd.Context(), files)
	if err != nil {
		return err
	}
	if verbose {
		if err := processor.ReportMetrics(registry, logger); err != nil {
			logger.Warn("metrics unavailable", "err", err)
		}
	}

	// 4. 输出结果
	var w io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch opts.format {
	case "jsonl":
		var keys []model.RuleKey
		for _, c := range engine.Checks() {
			keys = append(keys, c.Key())
		}
		err = output.NewJSONLWriter(w).WriteFindings(output.NewRunHeader(keys, len(files)), findings)
	default:
		err = output.NewTextWriter(w).WriteFindings(findings)
	}
	if err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	if opts.failOn && len(findings) > 0 {
		return errFindings
	}
	return nil
}

// loadConfig 配置文件默认在扫描目录 (或扫描文件所在目录) 中查找
func loadConfig(root string) (*config.Config, error) {
	dir := root
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		dir = filepath.Dir(root)
	}
	return config.NewLoader(dir, cfgFile).Load()
}
