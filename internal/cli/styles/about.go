package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bangr/internal/domain/build"
)

// VersionRenderer renders `bangr version` next to the bang logo.
type VersionRenderer struct {
	theme *Theme
}

// NewVersionRenderer creates a version renderer with the given theme.
func NewVersionRenderer(theme *Theme) *VersionRenderer {
	return &VersionRenderer{theme: theme}
}

type versionRow struct {
	icon  string
	key   string
	value string
}

// Render lays out build info and the size of the built-in catalog. builtins
// below zero hides the catalog row.
func (r *VersionRenderer) Render(info build.Info, builtins int) string {
	rows := []versionRow{
		{IconVersion, "version", info.Version},
		{IconGitBranch, "commit", info.Commit},
		{IconCalendar, "built", info.BuildDate},
		{IconGo, "go", info.GoVersion},
	}
	if builtins >= 0 {
		rows = append(rows, versionRow{IconBolt, "bangs", fmt.Sprintf("%d built-in", builtins)})
	}

	keyWidth := 0
	for _, row := range rows {
		keyWidth = max(keyWidth, len(row.key))
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	key := r.theme.Subtle.Width(keyWidth + 1)

	lines := make([]string, 0, len(rows)+3)
	for _, row := range rows {
		lines = append(lines, icon.Render(row.icon)+" "+key.Render(row.key)+r.theme.Highlight.Render(row.value))
	}
	lines = append(lines,
		"",
		icon.Render(IconGithub)+" "+r.theme.Normal.Render(build.RepoURL()),
		icon.Render(IconHeart)+" "+r.theme.Subtle.Render(strings.Join(build.Contributors(), ", ")),
	)

	return lipgloss.JoinHorizontal(lipgloss.Center, r.logo(len(lines)), "  ", strings.Join(lines, "\n"))
}

// logo is a "!" scaled to the height of the info block.
func (r *VersionRenderer) logo(height int) string {
	stem := max(height-3, 1)
	rows := make([]string, 0, stem+2)
	for range stem {
		rows = append(rows, "██")
	}
	rows = append(rows, "  ", "██")
	return r.theme.Highlight.MarginLeft(2).Render(strings.Join(rows, "\n"))
}
