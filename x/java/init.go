package java

import (
	"github.com/CodMac/go-treesitter-java-checks/collector"
	"github.com/CodMac/go-treesitter-java-checks/context"
	"github.com/CodMac/go-treesitter-java-checks/extractor"
	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/CodMac/go-treesitter-java-checks/noisefilter"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

func init() {
	resolver := NewJavaSymbolResolver()

	// 注册 Tree-sitter Java 语言对象
	model.RegisterLanguage(model.LangJava, sitter.NewLanguage(tree_sitter_java.Language()))
	// 注册 SymbolResolver(符号解析)
	context.RegisterSymbolResolver(model.LangJava, resolver)
	// 注册 Collector
	collector.RegisterCollector(model.LangJava, NewJavaCollector(resolver))
	// 注册 Extractor
	extractor.RegisterExtractor(model.LangJava, NewJavaExtractor(resolver))
	// 注册 NoiseFilter
	noisefilter.RegisterNoiseFilter(model.LangJava, NewJavaNoiseFilter())
}
