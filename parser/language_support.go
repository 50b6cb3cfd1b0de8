package parser

import (
	"path/filepath"
	"strings"

	"github.com/CodMac/go-treesitter-java-checks/model"
)

// DetectLanguage 根据扩展名判断文件所属语言，仅返回已注册的语言
func DetectLanguage(filePath string) (model.Language, bool) {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, lang := range model.RegisteredLanguages() {
		if lang.Extension() == ext {
			return lang, true
		}
	}
	return "", false
}
