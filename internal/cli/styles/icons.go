package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" // browser/web
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconTrash   = "\uf1f8" // trash
	IconStar    = "\uf005" // star
	IconSearch  = "\uf002" // magnifier
	IconBolt    = "\uf0e7" // bolt
)
