package tui

import tea "github.com/charmbracelet/bubbletea"

// Run executes the program until quit. Mouse motion tracking is enabled
// so hover picking works without a button held down. A fatal simulation
// error is returned after the terminal is restored.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(*Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
