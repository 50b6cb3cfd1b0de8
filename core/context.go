package core

import (
	"slices"

	"github.com/CodMac/go-treesitter-java-checks/model"
)

// DefinitionEntry 是文件内一个声明的登记项
type DefinitionEntry struct {
	Symbol   *model.Symbol
	ParentQN string
	Node     *model.Node // 声明节点
}

type ImportEntry struct {
	RawImportPath string            `json:"RawImportPath"`
	Alias         string            `json:"Alias"`
	Kind          model.ElementKind `json:"Kind"`
	IsWildcard    bool              `json:"IsWildcard"`
	IsStatic      bool              `json:"IsStatic"`
	Location      *model.Location   `json:"Location,omitempty"`
}

// FileContext 是一个编译单元的全部分析输入：语法树、声明与 (可选的) 语义模型。
// 收集与提取阶段结束后只读，不同文件的 FileContext 之间互不共享可变状态。
type FileContext struct {
	FilePath        string
	PackageName     string
	RootNode        *model.Node
	SourceBytes     []byte
	DefinitionsBySN map[string][]*DefinitionEntry
	Imports         map[string][]*ImportEntry

	// Semantic 为 nil 表示该文件没有可用的语义信息，依赖语义的规则应跳过
	Semantic *SemanticModel

	byNode map[*model.Node]*DefinitionEntry
	order  []*DefinitionEntry
}

func NewFileContext(filePath string, sourceBytes []byte) *FileContext {
	return &FileContext{
		FilePath:        filePath,
		SourceBytes:     sourceBytes,
		DefinitionsBySN: make(map[string][]*DefinitionEntry),
		Imports:         make(map[string][]*ImportEntry),
		byNode:          make(map[*model.Node]*DefinitionEntry),
	}
}

func (fc *FileContext) AddDefinition(sym *model.Symbol, parentQN string, node *model.Node) {
	entry := &DefinitionEntry{Symbol: sym, ParentQN: parentQN, Node: node}
	fc.DefinitionsBySN[sym.Name] = append(fc.DefinitionsBySN[sym.Name], entry)
	fc.byNode[node] = entry
	fc.order = append(fc.order, entry)
}

func (fc *FileContext) AddImport(alias string, imp *ImportEntry) {
	fc.Imports[alias] = append(fc.Imports[alias], imp)
}

// DefinitionOf 返回以 node 为声明节点的登记项
func (fc *FileContext) DefinitionOf(node *model.Node) *DefinitionEntry {
	return fc.byNode[node]
}

// Definitions 按登记顺序返回全部声明
func (fc *FileContext) Definitions() []*DefinitionEntry {
	return slices.Clone(fc.order)
}

// HasSemantic 判断语义信息是否可用
func (fc *FileContext) HasSemantic() bool {
	return fc.Semantic != nil
}
