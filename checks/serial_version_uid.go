package checks

import (
	"fmt"
	"strings"

	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
)

func init() {
	Register(SerialVersionUid{})
}

// SerialVersionUid 要求可序列化的类声明 "static final long serialVersionUID"
type SerialVersionUid struct{}

func (SerialVersionUid) Key() model.RuleKey { return "S2057" }
func (SerialVersionUid) Name() string       { return `"Serializable" classes should have a version id` }

func (SerialVersionUid) Run(p *Pass) {
	if p.Semantic == nil {
		return
	}
	core.Inspect(p.File.RootNode, func(n *model.Node) bool {
		if n.Is(model.NodeClass) {
			checkSerialVersionUid(p, n)
		}
		return true
	})
}

func checkSerialVersionUid(p *Pass, n *model.Node) {
	sem := p.Semantic
	cls := sem.SymbolOf(n)
	if cls == nil || cls.IsAnonymous() || !sem.Hierarchy.IsSubtypeOf(cls, SerializableInterface) {
		return
	}

	uid := sem.LookupMember(cls, SerialVersionUID, model.Field, model.EnumConstant)
	if uid == nil {
		if !isSerialExclusion(p, cls) {
			p.Report(n, `Add a "static final long serialVersionUID" field to this class.`)
		}
		return
	}

	var missing []string
	if !uid.HasModifier("static") {
		missing = append(missing, "static")
	}
	if !uid.HasModifier("final") {
		missing = append(missing, "final")
	}
	if !uid.Type.Is("long") {
		missing = append(missing, "long")
	}
	if len(missing) > 0 {
		p.Report(uid.Decl, fmt.Sprintf(`Make this "serialVersionUID" field "%s".`, strings.Join(missing, " ")))
	}
}

func isSerialExclusion(p *Pass, cls *model.Symbol) bool {
	sem := p.Semantic
	gui := p.Config.guiPrefixes()
	return cls.HasModifier("abstract") ||
		sem.Hierarchy.IsSubtypeOf(cls, ThrowableClass) ||
		sem.Hierarchy.HasAncestorWithPrefix(cls, gui) ||
		sem.Hierarchy.EnclosingHasAncestorWithPrefix(cls, gui) ||
		sem.Annotations.HasLiteralArgument(cls, SuppressWarningsAnnotation, SuppressSerial)
}
