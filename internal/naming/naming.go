package naming

import (
	"regexp"
	"strings"
)

// DefaultClassPrefix is stripped from package names before deriving the
// plugin class name.
const DefaultClassPrefix = "jbrowse-plugin-"

var (
	// One left-to-right pass: a leading scope, a leading run of non-letters
	// or any single disallowed character, a trailing run of non-alphanumerics.
	unsafeChars = regexp.MustCompile(`(^@.*/)|((^[^a-zA-Z]+)|[^\w.-])|([^a-zA-Z0-9]+$)`)

	separatorRun = regexp.MustCompile(`[-_]+`)
	punctuation  = regexp.MustCompile(`[^\w\s]`)
	wordStart    = regexp.MustCompile(`\s+(.)(\w+)`)
	whitespace   = regexp.MustCompile(`\s`)
	wordChar     = regexp.MustCompile(`\w`)
)

// Names bundles the identifiers derived from a manifest name.
type Names struct {
	Raw   string `json:"raw"`
	Safe  string `json:"safe"`
	Class string `json:"class"`
}

// Derive computes the safe package name and the plugin class name for raw.
// The class name is derived from the safe name with prefix removed.
func Derive(raw, prefix string) Names {
	safe := SafePackageName(raw)
	return Names{
		Raw:   raw,
		Safe:  safe,
		Class: ClassNameWithPrefix(safe, prefix),
	}
}

// SafePackageName lowercases name and strips the scope, leading non-letters,
// disallowed characters and trailing non-alphanumerics.
//
//	SafePackageName("@gmod/JBrowse-Plugin-Foo") == "jbrowse-plugin-foo"
func SafePackageName(name string) string {
	return unsafeChars.ReplaceAllString(strings.ToLower(name), "")
}

// ClassName converts a package name to the PascalCase plugin class name,
// stripping DefaultClassPrefix first.
//
//	ClassName("jbrowse-plugin-cool-tool") == "CoolTool"
func ClassName(name string) string {
	return ClassNameWithPrefix(name, DefaultClassPrefix)
}

// ClassNameWithPrefix is ClassName with a caller-supplied prefix. An empty
// prefix strips nothing.
func ClassNameWithPrefix(name, prefix string) string {
	if prefix != "" {
		name = strings.TrimPrefix(name, prefix)
	}
	return PascalCase(name)
}

// PascalCase joins the words of s, capitalizing every word after the first
// and lowercasing its remainder. Only the first character of the first word
// is forced uppercase; the rest of that word is left alone, which keeps
// already-PascalCase input unchanged. Single-character words after the first
// are appended without case changes.
func PascalCase(s string) string {
	s = separatorRun.ReplaceAllString(s, " ")
	s = punctuation.ReplaceAllString(s, "")
	s = replaceSubmatches(wordStart, s, func(groups []string) string {
		return strings.ToUpper(groups[1]) + strings.ToLower(groups[2])
	})
	s = whitespace.ReplaceAllString(s, "")
	if loc := wordChar.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + strings.ToUpper(s[loc[0]:loc[1]]) + s[loc[1]:]
	}
	return s
}

// replaceSubmatches is ReplaceAllStringFunc with access to capture groups.
func replaceSubmatches(re *regexp.Regexp, s string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = s[m[2*i]:m[2*i+1]]
			}
		}
		b.WriteString(fn(groups))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
