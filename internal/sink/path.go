package sink

import (
	"path/filepath"
	"regexp"
	"strings"
)

// illegalFolderChars are characters not allowed in asset folder names.
// Colons are kept: collection titles commonly contain them and POSIX
// filesystems accept them.
var illegalFolderChars = regexp.MustCompile(`[<>"/\\|?*\x00-\x1f]`)

var (
	multiSpace = regexp.MustCompile(`\s+`)
	multiDot   = regexp.MustCompile(`\.{2,}`)
)

// SanitizeFolder makes a library or collection title safe to use as a
// single path element.
func SanitizeFolder(name string) string {
	name = illegalFolderChars.ReplaceAllString(name, " ")
	name = multiDot.ReplaceAllString(name, ".")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.Trim(name, " .")
}

// AssetFolder derives the asset folder name from a media file path. A
// movie's folder is the directory holding the file. A show's folder is the
// directory holding its episodes, or the one above it when episodes live in
// Season or Specials subdirectories. Both POSIX and Windows separators are
// accepted since paths are reported by the media server host.
func AssetFolder(mediaPath string, show bool) string {
	parts := splitPath(mediaPath)
	if len(parts) < 2 {
		return ""
	}
	parent := parts[len(parts)-2]
	if !show {
		return parent
	}
	lower := strings.ToLower(parent)
	if (strings.HasPrefix(lower, "season") || strings.HasPrefix(lower, "specials")) && len(parts) >= 3 {
		return parts[len(parts)-3]
	}
	return parent
}

func splitPath(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' })
}

// validatePath ensures path is within root.
func validatePath(path, root string) error {
	cleanPath := filepath.Clean(path)
	cleanRoot := filepath.Clean(root)
	if cleanPath == cleanRoot {
		return nil
	}
	if !strings.HasPrefix(cleanPath, cleanRoot+string(filepath.Separator)) {
		return ErrPathTraversal
	}
	return nil
}
