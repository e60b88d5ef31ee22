package tui

// ModalContext provides read-only context to modals for rendering, replacing
// direct access to *DashboardModel. Modals that need to render delegate to
// stored render callbacks, which capture the dashboard internally.
type ModalContext struct {
	Title  string
	Footer string
}

// modalContext builds the context shared by dashboard modals.
func (m *DashboardModel) modalContext(title string) ModalContext {
	return ModalContext{
		Title:  title,
		Footer: "up/down/Wheel: Scroll | PgUp/PgDn: Page | ?/ESC: Close",
	}
}
