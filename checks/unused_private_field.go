package checks

import (
	"fmt"

	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
)

func init() {
	Register(UnusedPrivateField{})
}

// UnusedPrivateField 报告本文件内从未被引用的 private 字段
type UnusedPrivateField struct{}

func (UnusedPrivateField) Key() model.RuleKey { return "S1068" }
func (UnusedPrivateField) Name() string       { return "Unused private fields should be removed" }

func (UnusedPrivateField) Run(p *Pass) {
	if p.Semantic == nil {
		return
	}
	core.Walk(p.File.RootNode, &unusedFieldVisitor{pass: p})
}

type unusedFieldVisitor struct {
	core.BaseVisitor
	pass *Pass
}

// VisitClass 先处理嵌套类型，再检查当前类型的直接成员
func (v *unusedFieldVisitor) VisitClass(n *model.Node) core.Action {
	for child := range n.Children() {
		core.Walk(child, v)
	}

	sem := v.pass.Semantic
	cls := sem.SymbolOf(n)
	if cls == nil || v.hasAnnotation(cls, v.pass.Config.UsedTypeAnnotations) {
		return core.SkipChildren
	}

	for _, member := range sem.Members(cls) {
		if member.Kind == model.Field {
			v.checkIfUnused(member)
		}
	}
	return core.SkipChildren
}

func (v *unusedFieldVisitor) checkIfUnused(field *model.Symbol) {
	if v.hasAnnotation(field, v.pass.Config.UsedFieldAnnotations) {
		return
	}
	if !field.HasModifier("private") || field.Name == SerialVersionUID {
		return
	}
	if v.pass.Semantic.Usages.IsUnused(field) {
		v.pass.Report(field.Decl, fmt.Sprintf("Remove this unused %q private field.", field.Name))
	}
}

func (v *unusedFieldVisitor) hasAnnotation(sym *model.Symbol, names core.NameSet) bool {
	for _, a := range v.pass.Semantic.Annotations.All(sym) {
		if !a.Resolved {
			v.pass.Logger.Warn("annotation type could not be resolved", "symbol", sym.QualifiedName, "annotation", a.QualifiedName)
		}
		if names.Contains(a.QualifiedName) {
			return true
		}
	}
	return false
}
