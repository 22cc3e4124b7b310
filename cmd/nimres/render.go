package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/aixadm/nimres/internal/model"
)

var (
	resourceNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	attributeKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// renderCatalog writes the catalog in lsnim-like shape, styled when stdout is
// a terminal. Records keep source order; attribute keys are sorted per record
// for stable output.
func renderCatalog(w io.Writer, catalog *model.ResourceCatalog, styled bool) {
	if catalog.Len() == 0 {
		fmt.Fprintln(w, "no resources found")
		return
	}

	for _, name := range catalog.Names() {
		record, _ := catalog.Get(name)

		header := name + ":"
		if styled {
			header = resourceNameStyle.Render(header)
		}
		fmt.Fprintln(w, header)

		for _, key := range record.SortedKeys() {
			label := key
			if styled {
				label = attributeKeyStyle.Render(key)
			}
			fmt.Fprintf(w, "   %s = %s\n", label, record[key])
		}
	}
}
