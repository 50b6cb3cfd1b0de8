package output

import (
	"fmt"
	"io"

	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/charmbracelet/lipgloss"
)

// TextWriter 以终端友好的格式输出问题，按文件分组。
// 样式由 w 对应的渲染器决定，写入非终端时不输出颜色控制符。
type TextWriter struct {
	w io.Writer

	fileStyle    lipgloss.Style
	posStyle     lipgloss.Style
	ruleStyle    lipgloss.Style
	summaryStyle lipgloss.Style
	successStyle lipgloss.Style
}

func NewTextWriter(w io.Writer) *TextWriter {
	r := lipgloss.NewRenderer(w)
	return &TextWriter{
		w:            w,
		fileStyle:    r.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true),
		posStyle:     r.NewStyle().Foreground(lipgloss.Color("#64748B")),
		ruleStyle:    r.NewStyle().Foreground(lipgloss.Color("#F87171")).Bold(true),
		summaryStyle: r.NewStyle().Foreground(lipgloss.Color("#FBBF24")).Bold(true),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
	}
}

// WriteFindings 输出已排序的问题列表与汇总行
func (t *TextWriter) WriteFindings(findings []model.Finding) error {
	if len(findings) == 0 {
		_, err := fmt.Fprintln(t.w, t.successStyle.Render("No issues found."))
		return err
	}

	currentFile := ""
	for _, f := range findings {
		if f.Location.FilePath != currentFile {
			currentFile = f.Location.FilePath
			if _, err := fmt.Fprintln(t.w, t.fileStyle.Render(currentFile)); err != nil {
				return err
			}
		}
		pos := fmt.Sprintf("%d:%d", f.Location.StartLine, f.Location.StartColumn)
		if _, err := fmt.Fprintf(t.w, "  %s  %s  %s\n", t.posStyle.Render(pos), t.ruleStyle.Render(string(f.Rule)), f.Message); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(t.w, t.summaryStyle.Render(fmt.Sprintf("%d issue(s) found.", len(findings))))
	return err
}
