package parser

import (
	"errors"
	"sync"

	"github.com/CodMac/go-treesitter-java-checks/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrParseFailed 表示 tree-sitter 没有返回语法树 (通常是被取消或语言未设置)
var ErrParseFailed = errors.New("tree-sitter failed to parse")

// ParserPool 复用同一语言的 tree-sitter 解析器，避免每个文件都重新分配。
// 可被多个 goroutine 同时使用；租出的解析器在归还前只属于一个调用方。
type ParserPool struct {
	lang model.Language
	pool sync.Pool
}

// NewParserPool 为已注册的语言创建解析器池
func NewParserPool(lang model.Language) (*ParserPool, error) {
	tsLang, err := model.GetLanguage(lang)
	if err != nil {
		return nil, err
	}

	p := &ParserPool{lang: lang}
	p.pool.New = func() any {
		sp := sitter.NewParser()
		_ = sp.SetLanguage(tsLang)
		return &TreeSitterParser{Language: lang, tsParser: sp}
	}
	return p, nil
}

// Get 租用一个解析器，用完必须 Put 归还
func (p *ParserPool) Get() *TreeSitterParser {
	return p.pool.Get().(*TreeSitterParser)
}

// Put 归还解析器。归还前会 Reset，不保留上一次解析的状态。
func (p *ParserPool) Put(tp *TreeSitterParser) {
	if tp == nil || tp.tsParser == nil {
		return
	}
	tp.tsParser.Reset()
	p.pool.Put(tp)
}

// Language 返回池对应的语言
func (p *ParserPool) Language() model.Language { return p.lang }
