package model

import "cmp"

// --- 代码元素类型 (Code Element Kinds) ---

// ElementKind 是表示代码实体类型的字符串常量
type ElementKind string

const (
	Package ElementKind = "PACKAGE" // 对应包

	// 面向对象/复合类型
	Class       ElementKind = "CLASS"      // 对应类 (含匿名类)
	Interface   ElementKind = "INTERFACE"  // 对应接口
	Enum        ElementKind = "ENUM"       // 对应枚举
	Record      ElementKind = "RECORD"     // 对应 record
	KAnnotation ElementKind = "ANNOTATION" // 对应注解类型声明

	// 可执行体
	Method ElementKind = "METHOD" // 对应方法与构造函数

	// 存储和声明
	Field        ElementKind = "FIELD"         // 对应类/枚举的成员字段
	EnumConstant ElementKind = "ENUM_CONSTANT" // 对应枚举常量
	Variable     ElementKind = "VARIABLE"      // 对应局部变量、参数

	// 未知类型
	Unknown ElementKind = "UNKNOWN"
)

// IsType 判断是否为类、接口等类型声明
func (k ElementKind) IsType() bool {
	switch k {
	case Class, Interface, Enum, Record, KAnnotation:
		return true
	default:
		return false
	}
}

// IsVariable 判断是否为字段或变量
func (k ElementKind) IsVariable() bool {
	return k == Field || k == EnumConstant || k == Variable
}

// Location 描述了代码元素或问题在源码中的位置
type Location struct {
	FilePath    string `json:"FilePath"`
	StartLine   int    `json:"StartLine"`
	EndLine     int    `json:"EndLine"`
	StartColumn int    `json:"StartColumn"`
	EndColumn   int    `json:"EndColumn"`
}

// Compare 按 (文件, 行, 列) 比较两个位置，返回 -1/0/1
func (l Location) Compare(o Location) int {
	if c := cmp.Compare(l.FilePath, o.FilePath); c != 0 {
		return c
	}
	if c := cmp.Compare(l.StartLine, o.StartLine); c != 0 {
		return c
	}
	return cmp.Compare(l.StartColumn, o.StartColumn)
}
