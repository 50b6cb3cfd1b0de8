package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	// 导入所有语言的实现，以触发其 init() 函数注册 Language/Collector/Extractor
	_ "github.com/CodMac/go-treesitter-java-checks/x/java"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "javacheck",
	Short: "Structural quality checks for Java sources",
	Long: `javacheck parses Java sources with tree-sitter, builds a per-file semantic
model and reports rule violations:

  S1068  Unused private fields should be removed
  S2057  "Serializable" classes should have a version id
  S1872  Classes should not be compared by name`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <path>/.javacheck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newScanCmd(), newRulesCmd(), newHierarchyCmd())
}

// newLogger 日志统一输出到 stderr，stdout 只留给结果
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
