package views

import (
	"github.com/inovira/inovira/internal/contacts"
	"github.com/rivo/tview"
)

// ChatList is the contact table on the chat screen.
type ChatList struct {
	*tview.Table
	contacts []contacts.Contact
	onSelect func(id string)
	tr       func(string) string
}

// NewChatList creates the contact list table.
func NewChatList(tr func(string) string) *ChatList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false)
	table.SetBorder(true)

	cl := &ChatList{Table: table, tr: tr}
	table.SetSelectedFunc(func(row, col int) {
		idx := row - 1 // header
		if idx >= 0 && idx < len(cl.contacts) && cl.onSelect != nil {
			cl.onSelect(cl.contacts[idx].ID)
		}
	})
	cl.Refresh()
	return cl
}

// SetOnSelect sets the callback when a contact is chosen.
func (cl *ChatList) SetOnSelect(fn func(id string)) { cl.onSelect = fn }

// Update refreshes the table rows.
func (cl *ChatList) Update(list []contacts.Contact) {
	cl.contacts = list
	cl.Clear()

	cl.SetCell(0, 0, tview.NewTableCell(" Name").SetSelectable(false).SetTextColor(tview.Styles.SecondaryTextColor))
	cl.SetCell(0, 1, tview.NewTableCell(" Last Message").SetSelectable(false).SetTextColor(tview.Styles.SecondaryTextColor))
	cl.SetCell(0, 2, tview.NewTableCell(" Status").SetSelectable(false).SetTextColor(tview.Styles.SecondaryTextColor))

	for i, c := range list {
		row := i + 1
		name := c.Name
		if c.IsAssistant {
			name = "✦ " + name
		}
		presence := cl.tr("offline")
		if c.Presence == contacts.Online {
			presence = cl.tr("online")
		}
		cl.SetCell(row, 0, tview.NewTableCell(" "+name).SetMaxWidth(24).SetExpansion(1))
		cl.SetCell(row, 1, tview.NewTableCell(" "+c.LastMessage).SetMaxWidth(40).SetExpansion(2))
		cl.SetCell(row, 2, tview.NewTableCell(" "+presence).SetMaxWidth(10))
	}
}

// Selected returns the ID of the highlighted contact, or "".
func (cl *ChatList) Selected() string {
	row, _ := cl.GetSelection()
	idx := row - 1
	if idx >= 0 && idx < len(cl.contacts) {
		return cl.contacts[idx].ID
	}
	return ""
}

// Refresh re-renders the localized chrome.
func (cl *ChatList) Refresh() {
	cl.SetTitle(" " + cl.tr("selectContactToChat") + " ")
}
