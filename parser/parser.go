package parser

import (
	"fmt"
	"os"

	"github.com/CodMac/go-treesitter-java-checks/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Parser 定义了所有语言解析器的通用能力
type Parser interface {
	// ParseFile 读取文件内容并解析，返回语法树与源码。调用方负责 tree.Close()。
	ParseFile(filePath string) (*sitter.Tree, []byte, error)
	// ParseSource 解析内存中的源码
	ParseSource(sourceBytes []byte) (*sitter.Tree, error)
	Close()
}

// TreeSitterParser 是 Parser 的具体实现。底层 sitter.Parser 不是并发安全的，
// 每个 worker 应持有自己的实例，或通过 ParserPool 租用。
type TreeSitterParser struct {
	Language model.Language
	tsParser *sitter.Parser
}

// NewParser 创建一个新的 TreeSitterParser 实例
func NewParser(lang model.Language) (*TreeSitterParser, error) {
	tsLang, err := model.GetLanguage(lang)
	if err != nil {
		return nil, err
	}

	tsParser := sitter.NewParser()
	if err := tsParser.SetLanguage(tsLang); err != nil {
		tsParser.Close()
		return nil, fmt.Errorf("failed to set language %s: %w", lang, err)
	}

	return &TreeSitterParser{
		Language: lang,
		tsParser: tsParser,
	}, nil
}

func (p *TreeSitterParser) ParseFile(filePath string) (*sitter.Tree, []byte, error) {
	// 1. 读取文件内容
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	// 2. 解析文件内容
	tree, err := p.ParseSource(content)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", err, filePath)
	}
	return tree, content, nil
}

func (p *TreeSitterParser) ParseSource(sourceBytes []byte) (*sitter.Tree, error) {
	tree := p.tsParser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil, ErrParseFailed
	}
	return tree, nil
}

// Close 释放 Tree-sitter 内部资源
func (p *TreeSitterParser) Close() {
	if p.tsParser != nil {
		p.tsParser.Close()
		p.tsParser = nil
	}
}
