package tui

import (
	"testing"

	"github.com/kiminote/kiminote/internal/deck"
)

func TestEditRows(t *testing.T) {
	slide := &deck.Slide{
		ID:           "s1",
		Layout:       deck.LayoutBulletPoints,
		Title:        "Highlights",
		Points:       []string{"one", "two", "three"},
		SpeakerNotes: "mention the demo",
	}

	rows := editRows(slide)

	// Title, three points, image, notes
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}

	if rows[0].field != deck.FieldTitle || rows[0].value != "Highlights" {
		t.Errorf("row 0 = %+v, want the title", rows[0])
	}
	for i := 1; i <= 3; i++ {
		if rows[i].pointIndex != i-1 {
			t.Errorf("row %d pointIndex = %d, want %d", i, rows[i].pointIndex, i-1)
		}
		if !rows[i].editable() {
			t.Errorf("point row %d not editable", i)
		}
	}
	if rows[4].field != deck.FieldImageURL {
		t.Errorf("row 4 field = %q, want image url", rows[4].field)
	}
	if rows[5].field != deck.FieldSpeakerNotes || rows[5].value != "mention the demo" {
		t.Errorf("row 5 = %+v, want speaker notes", rows[5])
	}
}

func TestEditRowsBigNumber(t *testing.T) {
	statRow := func(t *testing.T, s *deck.Slide) editRow {
		t.Helper()
		for _, r := range editRows(s) {
			if r.label == "Stat" {
				return r
			}
		}
		t.Fatal("no stat row")
		return editRow{}
	}

	t.Run("existing stat", func(t *testing.T) {
		row := statRow(t, &deck.Slide{ID: "s", Layout: deck.LayoutBigNumber, Title: "Growth", Points: []string{"42%"}})
		if row.pointIndex != 0 || !row.editable() {
			t.Errorf("stat row = %+v, want editable point 0", row)
		}
		if row.value != "42%" {
			t.Errorf("stat value = %q, want %q", row.value, "42%")
		}
	})

	// A defaulted stat is still editable; committing the edit creates
	// points[0] on the slide
	t.Run("defaulted stat", func(t *testing.T) {
		slide := &deck.Slide{ID: "s", Layout: deck.LayoutBigNumber, Title: "Growth"}
		row := statRow(t, slide)
		if row.pointIndex != 0 || !row.editable() {
			t.Fatalf("stat row = %+v, want editable point 0", row)
		}

		p := &deck.Presentation{Slides: []deck.Slide{*slide}}
		if err := p.SetPoint("s", row.pointIndex, "87%"); err != nil {
			t.Fatalf("committing the stat edit failed: %v", err)
		}
		if got := p.Slides[0].Points; len(got) != 1 || got[0] != "87%" {
			t.Errorf("points after edit = %v, want the new stat at index 0", got)
		}
	})
}

func TestEditRowsNilSlide(t *testing.T) {
	if rows := editRows(nil); rows != nil {
		t.Errorf("editRows(nil) = %v, want nil", rows)
	}
}

func TestEditRowsUnknownLayout(t *testing.T) {
	rows := editRows(&deck.Slide{ID: "s", Layout: deck.Layout("timeline"), Title: "Roadmap"})
	if len(rows) == 0 {
		t.Fatal("unknown layout produced no rows")
	}
	if rows[0].field != deck.FieldTitle {
		t.Errorf("fallback row field = %q, want title", rows[0].field)
	}
}
