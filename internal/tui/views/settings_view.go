package views

import (
	"github.com/inovira/inovira/internal/i18n"
	"github.com/inovira/inovira/internal/prefs"
	"github.com/rivo/tview"
)

// SettingsView lets the user change theme, post layout and language.
type SettingsView struct {
	*tview.Flex
	form *tview.Form

	tr         func(string) string
	store      *prefs.Store
	onError    func(err error)
	rebuilding bool
}

// NewSettingsView creates the settings screen.
func NewSettingsView(tr func(string) string, store *prefs.Store) *SettingsView {
	form := tview.NewForm()
	form.SetBorder(true)

	v := &SettingsView{
		Flex:  tview.NewFlex().SetDirection(tview.FlexRow),
		form:  form,
		tr:    tr,
		store: store,
	}
	v.AddItem(form, 0, 1, true)
	v.Refresh()
	return v
}

// SetOnError sets the callback for rejected preference writes.
func (v *SettingsView) SetOnError(fn func(err error)) { v.onError = fn }

// Form returns the form for focus handling.
func (v *SettingsView) Form() *tview.Form { return v.form }

// Refresh rebuilds the form with localized labels and current values.
func (v *SettingsView) Refresh() {
	// Option callbacks fire during rebuild; ignore those.
	v.rebuilding = true
	defer func() { v.rebuilding = false }()

	v.form.Clear(true)
	v.form.SetTitle(" " + v.tr("settingsTitle") + " ")

	themeIdx := 0
	if v.store.Theme() == prefs.ThemeLight {
		themeIdx = 1
	}
	v.form.AddDropDown(v.tr("appearance"), []string{v.tr("darkMode"), v.tr("lightMode")}, themeIdx, func(_ string, idx int) {
		if v.rebuilding {
			return
		}
		t := prefs.ThemeDark
		if idx == 1 {
			t = prefs.ThemeLight
		}
		v.report(v.store.SetTheme(t))
	})

	layoutIdx := 0
	if v.store.Layout() == prefs.LayoutCompact {
		layoutIdx = 1
	}
	v.form.AddDropDown(v.tr("postDisplay"), []string{v.tr("comfortable"), v.tr("compact")}, layoutIdx, func(_ string, idx int) {
		if v.rebuilding {
			return
		}
		l := prefs.LayoutComfortable
		if idx == 1 {
			l = prefs.LayoutCompact
		}
		v.report(v.store.SetLayout(l))
	})

	langs := i18n.Supported()
	names := make([]string, len(langs))
	langIdx := 0
	for i, l := range langs {
		names[i] = i18n.Name(l)
		if l == v.store.Language() {
			langIdx = i
		}
	}
	v.form.AddDropDown(v.tr("language"), names, langIdx, func(_ string, idx int) {
		if v.rebuilding {
			return
		}
		if idx >= 0 && idx < len(langs) {
			v.report(v.store.SetLanguage(langs[idx]))
		}
	})
}

func (v *SettingsView) report(err error) {
	if err != nil && v.onError != nil {
		v.onError(err)
	}
}
