package setup

import (
	"regexp"
	"runtime"
	"strings"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

func lineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// retitleReadme sets the first line to "# <name>" and, when badge is not
// empty, prepends it followed by a blank line. A README whose title already
// reads "# <name>", directly or below a leading line starting with
// badgePrefix, is returned unchanged.
func retitleReadme(content, name, badge, badgePrefix, eol string) (string, bool) {
	lines := lineBreak.Split(content, -1)
	title := "# " + name

	idx := titleIndex(lines, badgePrefix)
	if isTitleOf(lines[idx], title) {
		return content, false
	}

	if idx > 0 {
		// Badge already present from an earlier run; only the title moved.
		lines[idx] = title
		return strings.Join(lines, eol), true
	}

	lines[0] = title
	if badge != "" {
		lines = append([]string{badge, ""}, lines...)
	}
	return strings.Join(lines, eol), true
}

// titleIndex returns the index of the title line: 0, or the first non-blank
// line after a leading CI badge. Other leading images, such as a logo, are
// not badges.
func titleIndex(lines []string, badgePrefix string) int {
	if len(lines) == 0 || badgePrefix == "" || !strings.HasPrefix(lines[0], badgePrefix) {
		return 0
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return i
		}
	}
	return 0
}

// isTitleOf rejects "# foo-bar" as a match for "# foo".
func isTitleOf(line, title string) bool {
	return strings.TrimRight(line, " \t") == title
}
