package naming

import "strings"

var unsafeReplacer = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_", "?", "_",
	"<", "_", ">", "_", "|", "_", `"`, "_",
)

// SanitizeName makes name safe as a single path component on common
// filesystems: path separators and reserved characters become '_', and a
// leading '.' becomes '_' so the result is never hidden.
func SanitizeName(name string) string {
	s := unsafeReplacer.Replace(name)
	if strings.HasPrefix(s, ".") {
		s = "_" + s[1:]
	}
	return s
}
