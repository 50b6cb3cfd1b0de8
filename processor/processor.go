package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/CodMac/go-treesitter-java-checks/checks"
	"github.com/CodMac/go-treesitter-java-checks/collector"
	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/extractor"
	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/CodMac/go-treesitter-java-checks/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
	"golang.org/x/sync/errgroup"
)

// ErrSyntax 表示源码存在语法错误，此时文件只有语法树，没有语义模型
var ErrSyntax = errors.New("source contains syntax errors")

// FileProcessor 负责并发处理文件列表，并聚合所有规则产生的问题。
// 每个文件独立完成 解析 -> 收集 -> 提取 -> 规则，文件之间不共享可变状态。
type FileProcessor struct {
	Language model.Language
	Workers  int  // 并发协程数量
	Semantic bool // false 时跳过语义提取，所有依赖语义的规则不产生结果

	engine    *checks.Engine
	collector collector.Collector
	extractor extractor.Extractor
	pool      *parser.ParserPool
	logger    *slog.Logger
	metrics   *Metrics
}

type Option func(*FileProcessor)

func WithWorkers(n int) Option {
	return func(fp *FileProcessor) {
		if n > 0 {
			fp.Workers = n
		}
	}
}

func WithSemantic(enabled bool) Option {
	return func(fp *FileProcessor) { fp.Semantic = enabled }
}

func WithLogger(logger *slog.Logger) Option {
	return func(fp *FileProcessor) {
		if logger != nil {
			fp.logger = logger
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(fp *FileProcessor) { fp.metrics = m }
}

// NewFileProcessor 创建 FileProcessor 实例。语言对应的 Collector/Extractor 必须已注册。
func NewFileProcessor(lang model.Language, engine *checks.Engine, opts ...Option) (*FileProcessor, error) {
	col, err := collector.GetCollector(lang)
	if err != nil {
		return nil, err
	}
	ext, err := extractor.GetExtractor(lang)
	if err != nil {
		return nil, err
	}
	pool, err := parser.NewParserPool(lang)
	if err != nil {
		return nil, err
	}

	fp := &FileProcessor{
		Language:  lang,
		Workers:   4, // 默认并发数
		Semantic:  true,
		engine:    engine,
		collector: col,
		extractor: ext,
		pool:      pool,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(fp)
	}
	return fp, nil
}

// ProcessFiles 并发分析所有文件。单个文件失败只记录日志并跳过，不影响其它文件；
// 只有 ctx 被取消时才返回错误。
func (fp *FileProcessor) ProcessFiles(ctx context.Context, filePaths []string) ([]model.Finding, error) {
	if len(filePaths) == 0 {
		return nil, nil
	}

	fp.logger.Info("analysis started", "files", len(filePaths), "workers", fp.Workers, "language", fp.Language)

	var (
		mu       sync.Mutex
		findings []model.Finding
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fp.Workers)
	for _, path := range filePaths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fileFindings, err := fp.ProcessFile(path)
			if err != nil {
				fp.logger.Warn("skipping file", "file", path, "err", err)
				fp.metrics.fileSkipped()
				return nil
			}

			mu.Lock()
			findings = append(findings, fileFindings...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	model.SortFindings(findings)
	fp.logger.Info("analysis complete", "findings", len(findings))
	return findings, nil
}

// ProcessFile 读取并分析单个文件，运行全部启用的规则
func (fp *FileProcessor) ProcessFile(filePath string) ([]model.Finding, error) {
	start := time.Now()
	fc, err := fp.AnalyzeFile(filePath)
	if err != nil {
		return nil, err
	}

	findings := fp.engine.Run(fc)
	fp.metrics.fileAnalyzed(time.Since(start), fc.HasSemantic(), findings)
	return findings, nil
}

// AnalyzeFile 读取并解析单个文件，构建 FileContext。存在语法错误时 Semantic 为 nil。
func (fp *FileProcessor) AnalyzeFile(filePath string) (*core.FileContext, error) {
	p := fp.pool.Get()
	defer fp.pool.Put(p)

	tree, sourceBytes, err := p.ParseFile(filePath)
	if err != nil {
		return nil, err
	}
	return fp.analyze(tree, filePath, sourceBytes)
}

// AnalyzeSource 解析内存中的源码并构建 FileContext。存在语法错误时返回的 FileContext
// 没有语义模型，同时返回 ErrSyntax。
func (fp *FileProcessor) AnalyzeSource(filePath string, sourceBytes []byte) (*core.FileContext, error) {
	p := fp.pool.Get()
	defer fp.pool.Put(p)

	tree, err := p.ParseSource(sourceBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, filePath)
	}
	hasError := tree.RootNode().HasError()
	fc, err := fp.analyze(tree, filePath, sourceBytes)
	if err != nil {
		return nil, err
	}
	if hasError {
		return fc, ErrSyntax
	}
	return fc, nil
}

// analyze 收集定义并提取语义，完成后释放 tree-sitter 语法树
func (fp *FileProcessor) analyze(tree *sitter.Tree, filePath string, sourceBytes []byte) (*core.FileContext, error) {
	defer tree.Close()

	root := tree.RootNode()
	fc, err := fp.collector.CollectDefinitions(root, filePath, sourceBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to collect definitions in %s: %w", filePath, err)
	}

	if !fp.Semantic {
		return fc, nil
	}
	if root.HasError() {
		fp.logger.Debug("syntax errors, semantic checks disabled", "file", filePath)
		return fc, nil
	}

	sem, err := fp.extractor.Extract(fc)
	if err != nil {
		// 语义提取失败不影响语法树本身，降级为无语义
		fp.logger.Warn("semantic extraction failed", "file", filePath, "err", err)
		return fc, nil
	}
	fc.Semantic = sem
	return fc, nil
}
