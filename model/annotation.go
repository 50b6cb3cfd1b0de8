package model

import "strings"

// AnnotationArgument 是注解的一个实参。只有字面量会被求值，常量引用等保持未解析。
type AnnotationArgument struct {
	Name    string `json:"Name"` // 参数名，单值形式为 "value"
	Value   string `json:"Value,omitempty"`
	Literal bool   `json:"Literal"`
}

// AnnotationInstance 是声明上的一个注解实例。
// Resolved 为 false 时 QualifiedName 只是按同包规则猜测的名称。
type AnnotationInstance struct {
	QualifiedName string               `json:"QualifiedName"`
	Resolved      bool                 `json:"Resolved"`
	Arguments     []AnnotationArgument `json:"Arguments,omitempty"` // 按源码顺序，数组元素被展开
	Node          *Node                `json:"-"`
}

// LiteralArguments 返回所有字面量实参的值，按源码顺序
func (a AnnotationInstance) LiteralArguments() []string {
	var values []string
	for _, arg := range a.Arguments {
		if arg.Literal {
			values = append(values, arg.Value)
		}
	}
	return values
}

// LiteralArgument 返回第 i 个实参的字面量值；非字面量或越界时 ok 为 false
func (a AnnotationInstance) LiteralArgument(i int) (value string, ok bool) {
	if i < 0 || i >= len(a.Arguments) || !a.Arguments[i].Literal {
		return "", false
	}
	return a.Arguments[i].Value, true
}

// TrimQuotes 去掉字符串/字符字面量两端的引号
func TrimQuotes(literal string) string {
	if strings.HasPrefix(literal, `"""`) && strings.HasSuffix(literal, `"""`) && len(literal) >= 6 {
		return literal[3 : len(literal)-3]
	}
	if len(literal) >= 2 {
		first, last := literal[0], literal[len(literal)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return literal[1 : len(literal)-1]
		}
	}
	return literal
}
