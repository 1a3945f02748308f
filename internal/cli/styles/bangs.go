package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/bangr/internal/domain/bang"
)

// BangsRenderer renders non-interactive output for the search, resolve and
// bangs subcommands.
type BangsRenderer struct {
	theme *Theme
}

func NewBangsRenderer(theme *Theme) *BangsRenderer {
	return &BangsRenderer{theme: theme}
}

// RenderResults renders a ranked result list, one bang per line.
func (r *BangsRenderer) RenderResults(query string, results []bang.Result) string {
	if len(results) == 0 {
		return r.theme.Subtle.Render(fmt.Sprintf("No bangs match %q.", query))
	}

	width := 0
	for _, res := range results {
		width = max(width, len(res.DisplayTrigger)+1)
	}

	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.renderLine(res.DisplayTrigger, res.Entry, width))
	}
	return b.String()
}

func (r *BangsRenderer) renderLine(trigger string, e bang.Entry, width int) string {
	label := "!" + trigger
	line := fmt.Sprintf("%s%s  %s  %s",
		r.theme.Trigger.Render(label),
		strings.Repeat(" ", max(0, width-len(label))),
		r.theme.Normal.Render(e.ServiceName),
		r.theme.Subtle.Render(e.Domain),
	)
	if e.Category != "" {
		line += "  " + r.theme.Category.Render(e.Category)
	}
	return line
}

// RenderList renders the user's custom bangs, marking the default bang.
func (r *BangsRenderer) RenderList(entries []bang.Entry, defaultBang string) string {
	if len(entries) == 0 {
		return r.theme.Subtle.Render("No custom bangs defined.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconBolt), r.theme.Title.Render("Custom bangs")))

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Primary())+1)
	}
	for _, e := range entries {
		marker := "  "
		if e.HasTrigger(defaultBang) {
			marker = r.theme.Highlight.Render(IconStar) + " "
		}
		b.WriteString(marker)
		b.WriteString(r.renderLine(e.Primary(), e, width))
		if len(e.Triggers) > 1 {
			b.WriteString("  " + r.theme.Subtle.Render("also !"+strings.Join(e.Triggers[1:], " !")))
		}
		b.WriteString("\n")
		b.WriteString("    " + r.theme.Subtle.Render(e.URLTemplate) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderTrigger lists every entry declaring trigger. The first one wins
// resolution; later ones are shadowed.
func (r *BangsRenderer) RenderTrigger(trigger string, entries []bang.Entry) string {
	label := "!" + strings.TrimPrefix(trigger, "!")
	if len(entries) == 0 {
		return r.theme.Subtle.Render(fmt.Sprintf("No bang declares %s.", label))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconSearch), r.theme.Title.Render(label)))
	for i, e := range entries {
		marker := r.theme.Highlight.Render(IconArrow) + " "
		if i > 0 {
			marker = "  "
		}
		b.WriteString(marker)
		b.WriteString(r.renderLine(e.Primary(), e, len(e.Primary())+1))
		if i > 0 {
			b.WriteString("  " + r.theme.Subtle.Render("shadowed"))
		}
		b.WriteString("\n    " + r.theme.Subtle.Render(e.URLTemplate) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderAdded confirms a stored custom bang.
func (r *BangsRenderer) RenderAdded(e bang.Entry, replaced []bang.Entry) string {
	out := fmt.Sprintf("%s Added %s (%s)",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Trigger.Render("!"+e.Primary()),
		e.ServiceName,
	)
	for _, old := range replaced {
		out += "\n" + r.theme.WarningStyle.Render(fmt.Sprintf("  replaced !%s (%s)", old.Primary(), old.ServiceName))
	}
	return out
}

// RenderRemoved confirms a removal, or reports that nothing matched.
func (r *BangsRenderer) RenderRemoved(trigger string, removed bool) string {
	if !removed {
		return r.theme.Subtle.Render(fmt.Sprintf("No custom bang uses !%s.", trigger))
	}
	return fmt.Sprintf("%s Removed %s",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Trigger.Render("!"+trigger),
	)
}

// RenderImported reports how many entries an import stored.
func (r *BangsRenderer) RenderImported(count int, source string) string {
	noun := "bangs"
	if count == 1 {
		noun = "bang"
	}
	return fmt.Sprintf("%s Imported %d custom %s from %s",
		r.theme.SuccessStyle.Render(IconCheck), count, noun, r.theme.Subtle.Render(source))
}

// RenderDefault shows the current default bang.
func (r *BangsRenderer) RenderDefault(e bang.Entry, configured bool) string {
	if !configured {
		return fmt.Sprintf("%s No default bang set, falling back to %s (%s)",
			r.theme.Subtle.Render(IconInfo),
			r.theme.Trigger.Render("!"+e.Primary()),
			e.ServiceName,
		)
	}
	return fmt.Sprintf("%s Default bang: %s (%s)",
		r.theme.Highlight.Render(IconStar),
		r.theme.Trigger.Render("!"+e.Primary()),
		e.ServiceName,
	)
}

// RenderSuggestions renders "did you mean" hints for an unknown bang.
func (r *BangsRenderer) RenderSuggestions(token string, suggestions []string) string {
	hints := make([]string, len(suggestions))
	for i, s := range suggestions {
		hints[i] = r.theme.Trigger.Render("!" + s)
	}
	return fmt.Sprintf("%s Unknown bang !%s, did you mean %s?",
		r.theme.WarningStyle.Render(IconWarning), token, strings.Join(hints, ", "))
}

func (r *BangsRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
