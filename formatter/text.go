package formatter

import (
	"strings"
)

// AddIndent prefixes every line of text with n spaces. A trailing
// newline terminates the last line and is not followed by a prefix.
func AddIndent(text string, n int) string {
	if text == "" || n <= 0 {
		return text
	}

	buf := getBuffer()
	defer putBuffer(buf)

	prefix := strings.Repeat(" ", n)
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		buf.WriteString(prefix)
		buf.WriteString(line)
	}
	return buf.String()
}

// MakeTitle surrounds text with width copies of char on each side
func MakeTitle(text string, width int, char string) string {
	if width < 0 {
		width = 0
	}
	border := strings.Repeat(char, width)
	return border + text + border
}

// Title is MakeTitle with the default width and a dash border
func Title(text string) string {
	return MakeTitle(text, TitleWidth, "-")
}

// AddTitle prepends a "----title----" header and a blank line to text
func AddTitle(text, title string) string {
	return "\n" + Title(title) + "\n\n" + text
}

// Bar returns the horizontal separator used around function reports
func Bar() string {
	return strings.Repeat("-", BarWidth)
}

// WrapInLines frames text between two bars separated by blank lines
func WrapInLines(text string) string {
	bar := Bar()
	return bar + "\n\n" + text + "\n\n" + bar
}

// Separator returns a wide, uppercased marker for a major section of
// the log such as entering a function:
//
//	====================TITLE====================
func Separator(title string) string {
	return "\n" + MakeTitle(strings.ToUpper(title), SeparatorWidth, "=") + "\n"
}

// Section returns line uppercased and surrounded by blank lines
func Section(line string) string {
	return "\n" + strings.ToUpper(line) + "\n"
}
