package style

import (
	"regexp"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Message constants mark binding names with [tag]text[/tag]. Terminal output
// styles the text, plain output drops the tags.
var markupStyles = map[string]lipgloss.Style{
	"profile":  ProfileStyle,
	"dock":     DockStyle,
	"undocked": UndockedStyle,
	"active":   ActiveStyle,
	"muted":    MutedStyle,
	"value":    ValueStyle,
	"bold":     lipgloss.NewStyle().Bold(true),
}

type markupTag struct {
	style   lipgloss.Style
	pattern *regexp.Regexp
}

// Tags are applied in name order so nested output is deterministic
var markupTags = compileMarkup(markupStyles)

var tagPattern = regexp.MustCompile(`\[/?(profile|dock|undocked|active|muted|value|bold)\]`)

func compileMarkup(styles map[string]lipgloss.Style) []markupTag {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)

	tags := make([]markupTag, 0, len(names))
	for _, name := range names {
		tags = append(tags, markupTag{
			style:   styles[name],
			pattern: regexp.MustCompile(`\[` + name + `\](.*?)\[/` + name + `\]`),
		})
	}
	return tags
}

// Render replaces known tags with their styled content. Unknown tags are
// left untouched.
func Render(text string) string {
	for _, tag := range markupTags {
		text = tag.pattern.ReplaceAllStringFunc(text, func(match string) string {
			return tag.style.Render(tag.pattern.FindStringSubmatch(match)[1])
		})
	}
	return text
}

// StripMarkup removes known tags and keeps their content
func StripMarkup(text string) string {
	return tagPattern.ReplaceAllString(text, "")
}
