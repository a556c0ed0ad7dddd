package tui

import "fmt"

type confirmModel struct {
	count int
}

func (m confirmModel) View() string {
	content := fmt.Sprintf("Purge all %d stored characters?\n\n", m.count)
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
