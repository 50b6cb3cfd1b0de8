package java

import (
	"strings"
	"sync"

	"github.com/CodMac/go-treesitter-java-checks/model"
)

// builtinType 是 JDK 及常见库中的类型，只记录规则需要的继承关系与方法
type builtinType struct {
	kind    model.ElementKind
	supers  []string
	methods []builtinMethod
}

type builtinMethod struct {
	name   string
	ret    string
	params []string
}

var builtinTypes = map[string]builtinType{
	objectQN: {kind: model.Class, methods: []builtinMethod{
		{name: "getClass", ret: classQN},
		{name: "equals", ret: "boolean", params: []string{objectQN}},
		{name: "hashCode", ret: "int"},
		{name: "toString", ret: stringQN},
	}},
	stringQN: {kind: model.Class, supers: []string{objectQN, "java.io.Serializable", "java.lang.Comparable", "java.lang.CharSequence"}, methods: []builtinMethod{
		{name: "equals", ret: "boolean", params: []string{objectQN}},
		{name: "equalsIgnoreCase", ret: "boolean", params: []string{stringQN}},
		{name: "hashCode", ret: "int"},
		{name: "toString", ret: stringQN},
		{name: "length", ret: "int"},
		{name: "isEmpty", ret: "boolean"},
		{name: "trim", ret: stringQN},
		{name: "toLowerCase", ret: stringQN},
		{name: "toUpperCase", ret: stringQN},
		{name: "intern", ret: stringQN},
		{name: "substring", ret: stringQN, params: []string{"int"}},
		{name: "contains", ret: "boolean", params: []string{"java.lang.CharSequence"}},
		{name: "startsWith", ret: "boolean", params: []string{stringQN}},
		{name: "endsWith", ret: "boolean", params: []string{stringQN}},
		{name: "compareTo", ret: "int", params: []string{stringQN}},
		{name: "valueOf", ret: stringQN, params: []string{objectQN}},
	}},
	classQN: {kind: model.Class, supers: []string{objectQN, "java.io.Serializable"}, methods: []builtinMethod{
		{name: "getName", ret: stringQN},
		{name: "getSimpleName", ret: stringQN},
		{name: "getCanonicalName", ret: stringQN},
		{name: "getTypeName", ret: stringQN},
		{name: "getSuperclass", ret: classQN},
		{name: "isInstance", ret: "boolean", params: []string{objectQN}},
		{name: "isAssignableFrom", ret: "boolean", params: []string{classQN}},
	}},
	"java.lang.CharSequence":             {kind: model.Interface, methods: []builtinMethod{{name: "length", ret: "int"}, {name: "toString", ret: stringQN}}},
	"java.lang.Comparable":               {kind: model.Interface, methods: []builtinMethod{{name: "compareTo", ret: "int", params: []string{objectQN}}}},
	"java.lang.Cloneable":                {kind: model.Interface},
	"java.lang.Runnable":                 {kind: model.Interface, methods: []builtinMethod{{name: "run", ret: "void"}}},
	"java.lang.Iterable":                 {kind: model.Interface},
	"java.lang.AutoCloseable":            {kind: model.Interface, methods: []builtinMethod{{name: "close", ret: "void"}}},
	"java.lang.Throwable":                {kind: model.Class, supers: []string{objectQN, "java.io.Serializable"}, methods: []builtinMethod{{name: "getMessage", ret: stringQN}}},
	"java.lang.Exception":                {kind: model.Class, supers: []string{"java.lang.Throwable"}},
	"java.lang.RuntimeException":         {kind: model.Class, supers: []string{"java.lang.Exception"}},
	"java.lang.IllegalArgumentException": {kind: model.Class, supers: []string{"java.lang.RuntimeException"}},
	"java.lang.IllegalStateException":    {kind: model.Class, supers: []string{"java.lang.RuntimeException"}},
	"java.lang.Error":                    {kind: model.Class, supers: []string{"java.lang.Throwable"}},
	"java.lang.Number":                   {kind: model.Class, supers: []string{objectQN, "java.io.Serializable"}, methods: []builtinMethod{{name: "longValue", ret: "long"}, {name: "intValue", ret: "int"}}},
	"java.lang.Long":                     {kind: model.Class, supers: []string{"java.lang.Number", "java.lang.Comparable"}},
	"java.lang.Integer":                  {kind: model.Class, supers: []string{"java.lang.Number", "java.lang.Comparable"}},
	"java.lang.Boolean":                  {kind: model.Class, supers: []string{objectQN, "java.io.Serializable", "java.lang.Comparable"}},
	"java.lang.StringBuilder":            {kind: model.Class, supers: []string{objectQN, "java.io.Serializable", "java.lang.CharSequence"}, methods: []builtinMethod{{name: "toString", ret: stringQN}}},
	enumQN:                               {kind: model.Class, supers: []string{objectQN, "java.io.Serializable", "java.lang.Comparable"}, methods: []builtinMethod{{name: "name", ret: stringQN}, {name: "ordinal", ret: "int"}}},
	recordQN:                             {kind: model.Class, supers: []string{objectQN}},
	"java.lang.System":                   {kind: model.Class, supers: []string{objectQN}},
	"java.lang.Thread":                   {kind: model.Class, supers: []string{objectQN, "java.lang.Runnable"}},
	"java.lang.SuppressWarnings":         {kind: model.KAnnotation},
	"java.lang.Override":                 {kind: model.KAnnotation},
	"java.lang.Deprecated":               {kind: model.KAnnotation},
	"java.lang.FunctionalInterface":      {kind: model.KAnnotation},

	"java.io.Serializable":   {kind: model.Interface},
	"java.io.Externalizable": {kind: model.Interface, supers: []string{"java.io.Serializable"}},
	"java.io.IOException":    {kind: model.Class, supers: []string{"java.lang.Exception"}},

	"java.util.Collection":  {kind: model.Interface, supers: []string{"java.lang.Iterable"}, methods: []builtinMethod{{name: "size", ret: "int"}, {name: "isEmpty", ret: "boolean"}}},
	"java.util.List":        {kind: model.Interface, supers: []string{"java.util.Collection"}},
	"java.util.Set":         {kind: model.Interface, supers: []string{"java.util.Collection"}},
	"java.util.Map":         {kind: model.Interface, methods: []builtinMethod{{name: "size", ret: "int"}}},
	"java.util.ArrayList":   {kind: model.Class, supers: []string{objectQN, "java.util.List", "java.io.Serializable", "java.lang.Cloneable"}},
	"java.util.LinkedList":  {kind: model.Class, supers: []string{objectQN, "java.util.List", "java.io.Serializable", "java.lang.Cloneable"}},
	"java.util.HashMap":     {kind: model.Class, supers: []string{objectQN, "java.util.Map", "java.io.Serializable", "java.lang.Cloneable"}},
	"java.util.HashSet":     {kind: model.Class, supers: []string{objectQN, "java.util.Set", "java.io.Serializable", "java.lang.Cloneable"}},
	"java.util.Date":        {kind: model.Class, supers: []string{objectQN, "java.io.Serializable", "java.lang.Cloneable", "java.lang.Comparable"}},
	"java.util.EventObject": {kind: model.Class, supers: []string{objectQN, "java.io.Serializable"}},

	"java.awt.Component":            {kind: model.Class, supers: []string{objectQN, "java.io.Serializable"}},
	"java.awt.Container":            {kind: model.Class, supers: []string{"java.awt.Component"}},
	"java.awt.Window":               {kind: model.Class, supers: []string{"java.awt.Container"}},
	"java.awt.Frame":                {kind: model.Class, supers: []string{"java.awt.Window"}},
	"java.awt.Dialog":               {kind: model.Class, supers: []string{"java.awt.Window"}},
	"java.awt.Panel":                {kind: model.Class, supers: []string{"java.awt.Container"}},
	"java.awt.Canvas":               {kind: model.Class, supers: []string{"java.awt.Component"}},
	"java.awt.event.ActionListener": {kind: model.Interface},

	"javax.swing.JComponent":     {kind: model.Class, supers: []string{"java.awt.Container"}},
	"javax.swing.JPanel":         {kind: model.Class, supers: []string{"javax.swing.JComponent"}},
	"javax.swing.JButton":        {kind: model.Class, supers: []string{"javax.swing.JComponent"}},
	"javax.swing.JLabel":         {kind: model.Class, supers: []string{"javax.swing.JComponent"}},
	"javax.swing.JFrame":         {kind: model.Class, supers: []string{"java.awt.Frame"}},
	"javax.swing.JDialog":        {kind: model.Class, supers: []string{"java.awt.Dialog"}},
	"javax.swing.AbstractAction": {kind: model.Class, supers: []string{objectQN, "java.io.Serializable", "java.lang.Cloneable"}},

	"lombok.Getter":                    {kind: model.KAnnotation},
	"lombok.Setter":                    {kind: model.KAnnotation},
	"lombok.Data":                      {kind: model.KAnnotation},
	"lombok.Value":                     {kind: model.KAnnotation},
	"lombok.Builder":                   {kind: model.KAnnotation},
	"lombok.ToString":                  {kind: model.KAnnotation},
	"lombok.EqualsAndHashCode":         {kind: model.KAnnotation},
	"lombok.AllArgsConstructor":        {kind: model.KAnnotation},
	"lombok.NoArgsConstructor":         {kind: model.KAnnotation},
	"lombok.RequiredArgsConstructor":   {kind: model.KAnnotation},
	"javax.enterprise.inject.Produces": {kind: model.KAnnotation},
}

// builtinEntry 是 builtinTypes 物化后的只读符号，进程内共享
type builtinEntry struct {
	sym     *model.Symbol
	supers  []string
	methods []*model.Symbol
}

var (
	builtinOnce  sync.Once
	builtinIndex map[string]*builtinEntry
)

func builtins() map[string]*builtinEntry {
	builtinOnce.Do(func() {
		builtinIndex = make(map[string]*builtinEntry, len(builtinTypes))
		for qn, bt := range builtinTypes {
			sym := &model.Symbol{
				Kind:          bt.kind,
				Name:          qn[strings.LastIndex(qn, ".")+1:],
				QualifiedName: qn,
				Modifiers:     []string{modPublic},
			}
			entry := &builtinEntry{sym: sym, supers: bt.supers}
			for _, m := range bt.methods {
				method := &model.Symbol{
					Kind:          model.Method,
					Name:          m.name,
					QualifiedName: qn + "." + m.name,
					Owner:         sym,
					Modifiers:     []string{modPublic},
					Type:          parseTypeRef(m.ret, func(s string) string { return s }),
				}
				for _, p := range m.params {
					method.Parameters = append(method.Parameters, parseTypeRef(p, func(s string) string { return s }))
				}
				entry.methods = append(entry.methods, method)
			}
			builtinIndex[qn] = entry
		}
	})
	return builtinIndex
}

// lookupBuiltin 按限定名查找内置类型
func lookupBuiltin(qn string) (*builtinEntry, bool) {
	e, ok := builtins()[qn]
	return e, ok
}

// parseTypeRef 把类型文本解析为 TypeRef，resolve 负责把去掉泛型和数组后的名称转换为限定名
func parseTypeRef(text string, resolve func(string) string) model.TypeRef {
	text = compact(text)
	if text == "" {
		return model.TypeRef{}
	}

	dims := 0
	for strings.HasSuffix(text, "[]") {
		text = strings.TrimSuffix(text, "[]")
		dims++
	}
	if strings.HasSuffix(text, "...") {
		text = strings.TrimSuffix(text, "...")
		dims++
	}

	arity := 0
	if i := strings.IndexByte(text, '<'); i >= 0 {
		arity = genericArity(text[i:])
		text = text[:i]
	}
	if primitiveTypes[text] {
		return model.TypeRef{QualifiedName: text, Primitive: true, Dimensions: dims}
	}
	return model.TypeRef{QualifiedName: resolve(text), Dimensions: dims, Arity: arity}
}

// genericArity 统计最外层尖括号中的类型参数个数
func genericArity(args string) int {
	depth, count := 0, 0
	for _, r := range args {
		switch r {
		case '<':
			depth++
			if depth == 1 {
				count = 1
			}
		case '>':
			depth--
		case ',':
			if depth == 1 {
				count++
			}
		}
	}
	if strings.HasPrefix(args, "<>") {
		return 0
	}
	return count
}
