package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/inovira/inovira/internal/prefs"
)

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor          tcell.Color
	FgColor          tcell.Color
	BorderColor      tcell.Color
	BorderFocusColor tcell.Color
	TableHeaderFg    tcell.Color
	TableCursorFg    tcell.Color
	TableCursorBg    tcell.Color
	TitleColor       tcell.Color
	AccentColor      tcell.Color
	MutedColor       tcell.Color
	BubbleMineColor  tcell.Color
	BubbleTheirColor tcell.Color
	FlashInfoColor   tcell.Color
	FlashWarnColor   tcell.Color
	FlashErrColor    tcell.Color
	RecordingColor   tcell.Color
}

// DarkTheme returns the default dark palette.
func DarkTheme() *Theme {
	return &Theme{
		BgColor:          tcell.ColorBlack,
		FgColor:          tcell.ColorGainsboro,
		BorderColor:      tcell.ColorDodgerBlue,
		BorderFocusColor: tcell.ColorLightSkyBlue,
		TableHeaderFg:    tcell.ColorWhite,
		TableCursorFg:    tcell.ColorBlack,
		TableCursorBg:    tcell.ColorAqua,
		TitleColor:       tcell.ColorFuchsia,
		AccentColor:      tcell.ColorAqua,
		MutedColor:       tcell.ColorGray,
		BubbleMineColor:  tcell.ColorLightGreen,
		BubbleTheirColor: tcell.ColorLightSkyBlue,
		FlashInfoColor:   tcell.ColorNavajoWhite,
		FlashWarnColor:   tcell.ColorOrange,
		FlashErrColor:    tcell.ColorOrangeRed,
		RecordingColor:   tcell.ColorRed,
	}
}

// LightTheme returns the light palette.
func LightTheme() *Theme {
	return &Theme{
		BgColor:          tcell.ColorWhite,
		FgColor:          tcell.ColorBlack,
		BorderColor:      tcell.ColorSteelBlue,
		BorderFocusColor: tcell.ColorDarkBlue,
		TableHeaderFg:    tcell.ColorBlack,
		TableCursorFg:    tcell.ColorWhite,
		TableCursorBg:    tcell.ColorSteelBlue,
		TitleColor:       tcell.ColorDarkMagenta,
		AccentColor:      tcell.ColorDarkCyan,
		MutedColor:       tcell.ColorDarkGray,
		BubbleMineColor:  tcell.ColorDarkGreen,
		BubbleTheirColor: tcell.ColorDarkBlue,
		FlashInfoColor:   tcell.ColorDarkGoldenrod,
		FlashWarnColor:   tcell.ColorOrange,
		FlashErrColor:    tcell.ColorRed,
		RecordingColor:   tcell.ColorRed,
	}
}

// ThemeFor maps a theme preference onto a palette.
func ThemeFor(t prefs.Theme) *Theme {
	if t == prefs.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}
