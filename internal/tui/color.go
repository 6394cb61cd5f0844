package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black       = lipgloss.Color("#000000")
	Red         = lipgloss.Color("#FF5353")
	Orange      = lipgloss.Color("214")
	Yellow      = lipgloss.Color("#DBBD70")
	Green       = lipgloss.Color("34")
	LightGreen  = lipgloss.Color("86")
	DeepBlue    = lipgloss.Color("39")
	Blue        = lipgloss.Color("63")
	Grey        = lipgloss.Color("#737373")
	LightGrey   = lipgloss.Color("245")
	LighterGrey = lipgloss.Color("250")
	DarkGrey    = lipgloss.Color("#606362")
	White       = lipgloss.Color("#ffffff")
)

var (
	ActiveTabColor   = lipgloss.AdaptiveColor{Dark: string(White), Light: string(Black)}
	InactiveTabColor = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(Grey)}
	IconColor        = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	BadgeColor       = Red
	ShortcutColor    = lipgloss.AdaptiveColor{Dark: string(DarkGrey), Light: string(LighterGrey)}
	DropHintColor    = DeepBlue
	TooltipColor     = lipgloss.AdaptiveColor{Dark: string(Yellow), Light: string(Orange)}

	ErrorColor   = Red
	WarningColor = Orange
	InfoColor    = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}

	HelpKey = lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}
	HelpDesc = lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	}
)
