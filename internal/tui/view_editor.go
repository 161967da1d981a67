package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kiminote/kiminote/internal/deck"
	"github.com/kiminote/kiminote/internal/layout"
)

// editRow is one selectable line on the slide canvas. Rows with a field
// (or point index) write back through the session; the rest are fixed
// chrome like section labels and accent bars.
type editRow struct {
	kind       layout.Kind
	label      string
	value      string
	field      deck.Field
	pointIndex int // >= 0 when the row addresses one bullet
}

func (r editRow) editable() bool {
	return r.field != "" || r.pointIndex >= 0
}

// editRows flattens the slide's resolved regions into canvas rows. List
// regions expand to one row per item so bullets are edited individually.
func editRows(s *deck.Slide) []editRow {
	if s == nil {
		return nil
	}

	var rows []editRow
	for _, r := range layout.Resolve(*s) {
		switch r.Kind {
		case layout.KindAccent:
			// Rendered as the section banner, nothing to select.

		case layout.KindBulletList, layout.KindPlainList, layout.KindCalloutList:
			if len(r.Items) == 0 {
				rows = append(rows, editRow{kind: r.Kind, label: "(no points)", pointIndex: -1})
				continue
			}
			for i, item := range r.Items {
				rows = append(rows, editRow{
					kind:       r.Kind,
					label:      fmt.Sprintf("Point %d", i+1),
					value:      item,
					pointIndex: i,
				})
			}

		case layout.KindBigStat:
			// Always addresses points[0]; editing a defaulted stat
			// creates it through SetPoint's append case.
			rows = append(rows, editRow{kind: r.Kind, label: "Stat", value: r.Text, pointIndex: 0})

		case layout.KindImage:
			value := r.URL
			if r.Placeholder {
				value = ""
			}
			rows = append(rows, editRow{
				kind:       r.Kind,
				label:      "Image",
				value:      value,
				field:      deck.FieldImageURL,
				pointIndex: -1,
			})

		default:
			rows = append(rows, editRow{
				kind:       r.Kind,
				label:      rowLabel(r.Kind),
				value:      r.Text,
				field:      r.Field,
				pointIndex: -1,
			})
		}
	}

	rows = append(rows, editRow{
		kind:       layout.KindSupport,
		label:      "Notes",
		value:      s.SpeakerNotes,
		field:      deck.FieldSpeakerNotes,
		pointIndex: -1,
	})
	return rows
}

func rowLabel(k layout.Kind) string {
	switch k {
	case layout.KindLabel:
		return "Label"
	case layout.KindTitle:
		return "Title"
	case layout.KindSubtitle:
		return "Subtitle"
	case layout.KindSupport:
		return "Support"
	case layout.KindUnknown:
		return "Title"
	default:
		return "Text"
	}
}

func (a *App) renderEditor() string {
	s := a.state
	slide := s.session.CurrentSlide()
	if slide == nil {
		return a.centerVertically(styleSubtitle.Render("No presentation loaded"))
	}

	var b strings.Builder
	canvasWidth := min(76, a.width-4)

	// Header: topic and position
	p := s.session.Presentation()
	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		styleSlideTitle.Render(truncate(p.Topic, canvasWidth-20)),
		styleSubtitle.Render(fmt.Sprintf("   %d / %d   %s",
			s.session.Cursor()+1, s.session.SlideCount(), slide.Layout)),
	)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n\n")

	// Canvas rows, with the notes row split off into the presenter strip
	rows := editRows(slide)
	notesRow := rows[len(rows)-1]
	canvasRows := rows[:len(rows)-1]

	var lines []string
	if slide.Layout == deck.LayoutSectionHeader {
		lines = append(lines, styleSectionBanner.Copy().Width(canvasWidth-8).Render("SECTION"))
	}
	for i, row := range canvasRows {
		lines = append(lines, a.renderRow(row, i == s.rowCursor, canvasWidth-8))
	}

	canvas := styleCanvas.Copy().
		Width(canvasWidth).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, canvas))
	b.WriteString("\n")

	// Presenter strip: speaker notes live below the slide, never on it
	notesSelected := s.rowCursor == len(rows)-1
	var notesLine string
	if notesSelected && s.editing {
		notesLine = styleRegionCursor.Render("> ") + "Notes: " + s.editInput.View()
	} else {
		marker := "  "
		if notesSelected {
			marker = styleRegionCursor.Render("> ")
		}
		text := notesRow.value
		if text == "" {
			text = "(no speaker notes)"
		}
		notesLine = marker + styleSlideDim.Render("Notes: "+truncate(text, canvasWidth-12))
	}
	notes := styleNotes.Copy().
		Width(canvasWidth).
		Render(notesLine)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, notes))
	b.WriteString("\n")

	// Status line: export feedback or key hints
	var status string
	if s.statusMsg != "" {
		status = lipgloss.NewStyle().Foreground(colorOK).Render(s.statusMsg)
		if strings.HasPrefix(s.statusMsg, "Export failed") || strings.HasPrefix(s.statusMsg, "Edit failed") {
			status = lipgloss.NewStyle().Foreground(colorError).Render(s.statusMsg)
		}
	} else if s.editing {
		status = styleStatusBar.Render("[Enter] Save  [Esc] Cancel")
	} else {
		status = styleStatusBar.Render("[←/→] Slides  [↑/↓] Regions  [Enter] Edit  [p] pptx  [w] html  [d] json  [n] New  [?] Help")
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) renderRow(row editRow, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = styleRegionCursor.Render("> ")
	}
	if selected && a.state.editing {
		return marker + row.label + ": " + a.state.editInput.View()
	}

	text := row.value
	switch row.kind {
	case layout.KindLabel:
		text = styleSlideLabel.Render(truncate(text, width))
	case layout.KindTitle:
		text = styleSlideTitle.Render(truncate(text, width))
	case layout.KindSubtitle:
		text = styleSlideSubtitle.Render(truncate(text, width))
	case layout.KindBulletList:
		text = styleSlideBody.Render("• " + truncate(text, width-2))
	case layout.KindPlainList:
		text = styleSlideBody.Render(truncate(text, width))
	case layout.KindCalloutList:
		text = styleSlideBody.Render("▸ " + truncate(text, width-2))
	case layout.KindBigStat:
		text = styleSlideStat.Render(truncate(text, width))
	case layout.KindSupport:
		text = styleSlideDim.Render(truncate(text, width))
	case layout.KindImage:
		if text == "" {
			text = styleSlideDim.Render("[image placeholder]")
		} else {
			text = styleSlideDim.Render("[image] " + truncate(text, width-8))
		}
	case layout.KindUnknown:
		text = styleSlideDim.Render("Unknown layout") + "  " + styleSlideTitle.Render(truncate(text, width-16))
	default:
		text = styleSlideBody.Render(truncate(text, width))
	}

	return marker + text
}
