package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/CodMac/go-treesitter-java-checks/model"
)

// Signature 描述一个方法签名模式。Params 为 nil 表示不约束参数。
type Signature struct {
	Owner  string   // 声明所在类型的限定名
	Name   string   // 方法名
	Params []string // 参数类型名 (e.g., "java.lang.Object", "int[]")
}

func NewSignature(owner, name string) Signature {
	return Signature{Owner: owner, Name: name}
}

// WithParameters 返回约束了参数列表的副本，空参数列表表示无参方法
func (s Signature) WithParameters(params ...string) Signature {
	if params == nil {
		params = []string{}
	}
	s.Params = slices.Clone(params)
	return s
}

func (s Signature) String() string {
	if s.Params == nil {
		return fmt.Sprintf("%s#%s", s.Owner, s.Name)
	}
	return fmt.Sprintf("%s#%s(%s)", s.Owner, s.Name, strings.Join(s.Params, ","))
}

// matches 对所属类型做精确比较：子类型上调用的继承方法，其 Owner 仍是声明它的类型
func (s Signature) matches(method *model.Symbol) bool {
	if method == nil || method.Kind != model.Method || method.Owner == nil {
		return false
	}
	if method.Owner.QualifiedName != s.Owner || method.Name != s.Name {
		return false
	}
	if s.Params == nil {
		return true
	}
	if len(s.Params) != len(method.Parameters) {
		return false
	}
	for i, p := range method.Parameters {
		if p.String() != s.Params[i] {
			return false
		}
	}
	return true
}

// SignatureMatcher 是不可变的签名集合
type SignatureMatcher struct {
	sigs []Signature
}

func NewSignatureMatcher(sigs ...Signature) *SignatureMatcher {
	return &SignatureMatcher{sigs: slices.Clone(sigs)}
}

// Match 判断方法调用节点的目标是否命中任一签名，返回注册顺序中第一个命中的签名。
// 节点不是方法调用或目标未解析时返回 false。
func (m *SignatureMatcher) Match(sem *SemanticModel, invocation *model.Node) (Signature, bool) {
	if !invocation.Is(model.NodeMethodInvocation) {
		return Signature{}, false
	}
	target := sem.TargetOf(invocation)
	if target == nil {
		return Signature{}, false
	}
	for _, s := range m.sigs {
		if s.matches(target) {
			return s, true
		}
	}
	return Signature{}, false
}

func (m *SignatureMatcher) Matches(sem *SemanticModel, invocation *model.Node) bool {
	_, ok := m.Match(sem, invocation)
	return ok
}
