package processor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 记录一次或多次分析的运行指标。nil *Metrics 可以直接使用，所有记录方法为空操作。
type Metrics struct {
	FilesAnalyzed   prometheus.Counter
	FilesSkipped    prometheus.Counter
	FilesNoSemantic prometheus.Counter
	Findings        *prometheus.CounterVec
	FileDuration    prometheus.Histogram
}

// NewMetrics 在 reg 上注册指标。reg 为 nil 时使用独立的 Registry，避免污染全局默认注册表。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		FilesAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Name: "javacheck_files_analyzed_total",
			Help: "Total number of source files analyzed.",
		}),
		FilesSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "javacheck_files_skipped_total",
			Help: "Total number of source files skipped because they could not be read or parsed.",
		}),
		FilesNoSemantic: factory.NewCounter(prometheus.CounterOpts{
			Name: "javacheck_files_without_semantic_total",
			Help: "Total number of analyzed files without semantic information.",
		}),
		Findings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "javacheck_findings_total",
			Help: "Total number of findings reported, by rule.",
		}, []string{"rule"}),
		FileDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "javacheck_file_seconds",
			Help:    "Time spent analyzing a single source file.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) fileAnalyzed(d time.Duration, semantic bool, findings []model.Finding) {
	if m == nil {
		return
	}
	m.FilesAnalyzed.Inc()
	m.FileDuration.Observe(d.Seconds())
	if !semantic {
		m.FilesNoSemantic.Inc()
	}
	for _, f := range findings {
		m.Findings.WithLabelValues(string(f.Rule)).Inc()
	}
}

func (m *Metrics) fileSkipped() {
	if m == nil {
		return
	}
	m.FilesSkipped.Inc()
}

// ReportMetrics 把 g 中的指标逐条写入日志，用于命令行运行结束时的汇总
func ReportMetrics(g prometheus.Gatherer, logger *slog.Logger) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				attrs = append(attrs, "count", m.GetHistogram().GetSampleCount(), "sum", m.GetHistogram().GetSampleSum())
			}
			logger.Info("metric", attrs...)
		}
	}
	return nil
}
