package processor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/gobwas/glob"
)

// ErrNoFiles 表示输入路径下没有可分析的源文件
var ErrNoFiles = errors.New("no source files found")

type excludePattern struct {
	glob glob.Glob
	// root 匹配扫描根目录下的直接条目，仅 "**/" 开头的模式才有
	root glob.Glob
}

// Discover 递归查找 root 下所有属于 lang 的源文件。root 也可以是单个文件。
// excludes 为相对 root 的 glob 模式 (如 "**/generated/**")；隐藏目录总是被忽略。
func Discover(root string, lang model.Language, excludes []string) ([]string, error) {
	patterns := make([]excludePattern, 0, len(excludes))
	for _, p := range excludes {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		ep := excludePattern{glob: g}
		if rest, ok := strings.CutPrefix(p, "**/"); ok {
			if ep.root, err = glob.Compile(rest, '/'); err != nil {
				return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
			}
		}
		patterns = append(patterns, ep)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	ext := lang.Extension()
	if !info.IsDir() {
		if filepath.Ext(root) != ext {
			return nil, fmt.Errorf("%w: %s is not a %s file", ErrNoFiles, root, lang)
		}
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			// 忽略隐藏目录
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if rel != "." && isExcluded(rel+"/", patterns) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) == ext && !isExcluded(rel, patterns) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoFiles, root)
	}
	return files, nil
}

// isExcluded 判断相对路径是否命中任一排除模式。目录以 "/" 结尾，
// 使 "build/**" 这类模式可以直接剪掉整个目录。
func isExcluded(rel string, patterns []excludePattern) bool {
	trimmed := strings.TrimSuffix(rel, "/")
	topLevel := !strings.Contains(trimmed, "/")
	for _, p := range patterns {
		if p.glob.Match(rel) || p.glob.Match(trimmed) {
			return true
		}
		// 根目录下的条目也能匹配 "**/" 开头的模式
		if topLevel && p.root != nil && (p.root.Match(rel) || p.root.Match(trimmed)) {
			return true
		}
	}
	return false
}
