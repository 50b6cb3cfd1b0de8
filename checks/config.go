package checks

import (
	"slices"

	"github.com/CodMac/go-treesitter-java-checks/core"
)

const (
	// SerialVersionUID 是序列化版本字段的保留名称
	SerialVersionUID = "serialVersionUID"

	SuppressWarningsAnnotation = "java.lang.SuppressWarnings"
	// SuppressSerial 是 @SuppressWarnings 中抑制 S2057 的参数值，不可配置
	SuppressSerial = "serial"
	SerializableInterface      = "java.io.Serializable"
	ThrowableClass             = "java.lang.Throwable"
)

// Config 是规则的只读配置，构造后不再修改
type Config struct {
	// UsedTypeAnnotations 标注在类上时，视为该类所有字段都被 (生成代码) 使用
	UsedTypeAnnotations core.NameSet
	// UsedFieldAnnotations 标注在字段上时，视为该字段被使用
	UsedFieldAnnotations core.NameSet
	// GUIPrefixes 是 GUI 类型的包前缀，这些类型及其内部类不要求 serialVersionUID
	GUIPrefixes []string
}

func DefaultConfig() *Config {
	return &Config{
		UsedTypeAnnotations: core.NewNameSet(
			"lombok.Getter",
			"lombok.Setter",
			"lombok.Data",
			"lombok.Value",
			"lombok.Builder",
			"lombok.ToString",
			"lombok.EqualsAndHashCode",
			"lombok.AllArgsConstructor",
			"lombok.NoArgsConstructor",
			"lombok.RequiredArgsConstructor",
		),
		UsedFieldAnnotations: core.NewNameSet(
			"lombok.Getter",
			"lombok.Setter",
			"javax.enterprise.inject.Produces",
		),
		GUIPrefixes: []string{"javax.swing.", "java.awt."},
	}
}

// guiPrefixes 返回副本，防止规则修改共享配置
func (c *Config) guiPrefixes() []string {
	return slices.Clone(c.GUIPrefixes)
}
