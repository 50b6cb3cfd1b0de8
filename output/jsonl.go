package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/google/uuid"
)

// RunHeader 是 JSONL 输出的第一行，描述本次运行
type RunHeader struct {
	Type      string          `json:"Type"`
	RunID     string          `json:"RunID"`
	StartedAt time.Time       `json:"StartedAt"`
	Rules     []model.RuleKey `json:"Rules"`
	Files     int             `json:"Files"`
}

type findingRecord struct {
	Type string `json:"Type"`
	model.Finding
}

type JSONLWriter struct {
	encoder *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		encoder: json.NewEncoder(w),
	}
}

func (w *JSONLWriter) Write(v any) error {
	return w.encoder.Encode(v)
}

// NewRunHeader 生成带随机 RunID 的运行头
func NewRunHeader(rules []model.RuleKey, files int) RunHeader {
	return RunHeader{
		Type:      "run",
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Rules:     rules,
		Files:     files,
	}
}

// WriteFindings 先写运行头，再逐行写出问题
func (w *JSONLWriter) WriteFindings(header RunHeader, findings []model.Finding) error {
	if err := w.Write(header); err != nil {
		return err
	}
	for _, f := range findings {
		if err := w.Write(findingRecord{Type: "finding", Finding: f}); err != nil {
			return err
		}
	}
	return nil
}

// ExportFindings 把结果写入 path 指定的 JSONL 文件，返回写出的问题数量
func ExportFindings(path string, header RunHeader, findings []model.Finding) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := NewJSONLWriter(f).WriteFindings(header, findings); err != nil {
		return 0, err
	}
	return len(findings), nil
}
