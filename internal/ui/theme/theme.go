package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — monochrome zinc with a single purple accent, matching
// the high-contrast editor look of the practice shells.
var (
	Primary = lipgloss.Color("#8B5CF6") // Purple accent
	Success = lipgloss.Color("#10B981") // Emerald
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#FAFAFA") // Zinc 50
	TextDim = lipgloss.Color("#71717A") // Zinc 500
	BgDark  = lipgloss.Color("#09090B") // Zinc 950
	BgCard  = lipgloss.Color("#18181B") // Zinc 900
	Border  = lipgloss.Color("#27272A") // Zinc 800
	Locked  = lipgloss.Color("#3F3F46") // Zinc 700
)

// Difficulty colors.
var (
	Beginner     = lipgloss.Color("#34D399") // Emerald
	Intermediate = lipgloss.Color("#60A5FA") // Blue
	Advanced     = lipgloss.Color("#E879F9") // Fuchsia
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	LockedStyle = lipgloss.NewStyle().
			Foreground(Locked)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// DifficultyColor maps a difficulty label to its accent color.
func DifficultyColor(difficulty string) color.Color {
	switch difficulty {
	case "Beginner":
		return Beginner
	case "Intermediate":
		return Intermediate
	case "Advanced":
		return Advanced
	default:
		return TextDim
	}
}
