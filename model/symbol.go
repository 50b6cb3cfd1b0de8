package model

import (
	"slices"
	"strings"
)

// TypeRef 是对类型的引用，仅保留相等性判断需要的结构信息
type TypeRef struct {
	QualifiedName string `json:"QualifiedName"` // 完整限定名，基本类型为关键字本身 (e.g., "long")
	Primitive     bool   `json:"Primitive,omitempty"`
	Dimensions    int    `json:"Dimensions,omitempty"` // 数组维数
	Arity         int    `json:"Arity,omitempty"`      // 泛型参数个数
}

// Is 判断是否恰好是名为 qn 的非数组类型
func (t TypeRef) Is(qn string) bool {
	return t.Dimensions == 0 && t.QualifiedName == qn
}

// IsZero 判断类型是否未解析
func (t TypeRef) IsZero() bool {
	return t.QualifiedName == ""
}

// String 返回用于签名比较的类型名 (e.g., "java.lang.String", "int[]")
func (t TypeRef) String() string {
	return t.QualifiedName + strings.Repeat("[]", t.Dimensions)
}

// Symbol 是声明的语义身份。每个声明对应唯一一个 Symbol，由解析阶段创建，之后只读。
type Symbol struct {
	Kind          ElementKind `json:"Kind"`
	Name          string      `json:"Name"`          // 短名称，匿名类为空
	QualifiedName string      `json:"QualifiedName"` // 完整限定名 (e.g., "com.example.Foo.bar")
	Owner         *Symbol     `json:"-"`             // 直接所属的类型或方法
	Modifiers     []string    `json:"Modifiers,omitempty"`
	Type          TypeRef     `json:"Type"` // 字段/变量的声明类型，方法的返回类型
	Parameters    []TypeRef   `json:"Parameters,omitempty"`
	Decl          *Node       `json:"-"` // 声明节点，JDK 内置符号为 nil
}

// HasModifier 判断是否带有指定关键字修饰符
func (s *Symbol) HasModifier(m string) bool {
	return slices.Contains(s.Modifiers, m)
}

// IsType 判断是否为类型符号
func (s *Symbol) IsType() bool { return s.Kind.IsType() }

// IsAnonymous 判断是否为匿名类
func (s *Symbol) IsAnonymous() bool { return s.IsType() && s.Name == "" }

// EnclosingType 返回包含该符号的最近类型声明
func (s *Symbol) EnclosingType() *Symbol {
	for o := s.Owner; o != nil; o = o.Owner {
		if o.IsType() {
			return o
		}
	}
	return nil
}

// UsageRecord 表示一次对符号的引用
type UsageRecord struct {
	Symbol *Symbol
	Node   *Node
}
