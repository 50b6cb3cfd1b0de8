package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/CodMac/go-treesitter-java-checks/noisefilter"
)

// ExportMermaidHTML 生成包含 Mermaid.js 渲染逻辑的静态网页，展示类型继承与嵌套关系。
// noise 判定为噪音的父类型不画边，传 nil 时保留全部边。
func ExportMermaidHTML(outputPath string, files []*core.FileContext, noise noisefilter.NoiseFilter) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteMermaidHTML(f, files, noise)
}

func WriteMermaidHTML(w io.Writer, files []*core.FileContext, noise noisefilter.NoiseFilter) error {
	// 1. 写入 HTML 模板头部
	if _, err := io.WriteString(w, `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Type Hierarchy</title>
    <script src="https://cdn.jsdelivr.net/npm/mermaid/dist/mermaid.min.js"></script>
    <style>
        body { font-family: -apple-system, sans-serif; background: #f0f2f5; margin: 20px; }
        .mermaid { background: white; padding: 20px; border-radius: 12px; box-shadow: 0 4px 15px rgba(0,0,0,0.1); }
        h1 { color: #1a1a1a; text-align: center; }
    </style>
</head>
<body>
    <h1>Type Hierarchy</h1>
    <div class="mermaid">
`); err != nil {
		return err
	}

	if err := WriteMermaidGraph(w, files, noise); err != nil {
		return err
	}

	// 4. 写入脚本初始化和结尾
	_, err := io.WriteString(w, `    </div>
    <script>
        mermaid.initialize({
            startOnLoad: true,
            maxTextSize: 100000,
            theme: 'default',
            flowchart: { useMaxWidth: false, htmlLabels: true }
        });
    </script>
</body>
</html>
`)
	return err
}

// WriteMermaidGraph 只输出 "graph LR" 图定义。没有语义模型的文件只列出类型，不画边。
func WriteMermaidGraph(w io.Writer, files []*core.FileContext, noise noisefilter.NoiseFilter) error {
	if noise == nil {
		noise = noisefilter.DefaultNoiseFilter{}
	}

	var b strings.Builder
	b.WriteString("    graph LR\n")

	// 2. 按 Package 分组，文件作为更细一级的 subgraph
	var pkgOrder []string
	packageGroups := make(map[string][]*core.FileContext)
	for _, fc := range files {
		if _, ok := packageGroups[fc.PackageName]; !ok {
			pkgOrder = append(pkgOrder, fc.PackageName)
		}
		packageGroups[fc.PackageName] = append(packageGroups[fc.PackageName], fc)
	}

	for _, pkgName := range pkgOrder {
		hasPkg := pkgName != ""
		if hasPkg {
			fmt.Fprintf(&b, "    subgraph \"📦 %s\"\n", pkgName)
		}
		for _, fc := range packageGroups[pkgName] {
			fmt.Fprintf(&b, "        subgraph \"📄 %s\"\n", filepath.Base(fc.FilePath))
			for _, def := range fc.Definitions() {
				if !def.Symbol.IsType() {
					continue
				}
				fmt.Fprintf(&b, "            %s[\"%s <small>(%s)</small>\"]\n", safeID(def.Symbol.QualifiedName), displayName(def.Symbol), def.Symbol.Kind)
			}
			b.WriteString("        end\n")
		}
		if hasPkg {
			b.WriteString("    end\n")
		}
	}

	// 3. 继承/实现与嵌套关系
	for _, fc := range files {
		if !fc.HasSemantic() {
			continue
		}
		h := fc.Semantic.Hierarchy
		for _, def := range fc.Definitions() {
			sym := def.Symbol
			if !sym.IsType() {
				continue
			}
			for _, super := range h.Supertypes(sym) {
				if noise.IsNoise(super.QualifiedName) {
					continue
				}
				fmt.Fprintf(&b, "    %s ==继承/实现==> %s\n", safeID(sym.QualifiedName), safeID(super.QualifiedName))
			}
			if outer := h.Enclosing(sym); outer != nil {
				fmt.Fprintf(&b, "    %s -.嵌套.-> %s\n", safeID(sym.QualifiedName), safeID(outer.QualifiedName))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func displayName(sym *model.Symbol) string {
	if sym.IsAnonymous() {
		return sym.QualifiedName[strings.LastIndex(sym.QualifiedName, ".")+1:]
	}
	return sym.Name
}

// safeID 确保 QualifiedName 符合 Mermaid 的 ID 命名规范
func safeID(id string) string {
	r := strings.NewReplacer(".", "_", "/", "_", "-", "_", "\\", "_", ":", "_", "@", "_", "$", "_")
	return "n_" + r.Replace(id)
}
