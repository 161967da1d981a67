package layout

import (
	"testing"

	"github.com/kiminote/kiminote/internal/deck"
)

func kinds(regions []Region) []Kind {
	out := make([]Kind, len(regions))
	for i, r := range regions {
		out[i] = r.Kind
	}
	return out
}

func TestResolveRegionKinds(t *testing.T) {
	tests := []struct {
		name   string
		layout deck.Layout
		want   []Kind
	}{
		{
			name:   "title",
			layout: deck.LayoutTitle,
			want:   []Kind{KindLabel, KindTitle, KindSubtitle},
		},
		{
			name:   "bullet points",
			layout: deck.LayoutBulletPoints,
			want:   []Kind{KindTitle, KindBulletList, KindImage},
		},
		{
			name:   "big number",
			layout: deck.LayoutBigNumber,
			want:   []Kind{KindLabel, KindBigStat, KindSupport},
		},
		{
			name:   "split image",
			layout: deck.LayoutSplitImage,
			want:   []Kind{KindTitle, KindPlainList, KindImage},
		},
		{
			name:   "section header",
			layout: deck.LayoutSectionHeader,
			want:   []Kind{KindAccent, KindLabel, KindTitle},
		},
		{
			name:   "visual focus",
			layout: deck.LayoutVisualFocus,
			want:   []Kind{KindImage, KindLabel, KindTitle, KindCalloutList},
		},
		{
			name:   "unknown layout",
			layout: deck.Layout("timeline"),
			want:   []Kind{KindUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Every optional field absent: still a complete region list
			regions := Resolve(deck.Slide{ID: "s", Layout: tt.layout, Title: "T"})
			got := kinds(regions)
			if len(got) != len(tt.want) {
				t.Fatalf("Resolve() produced %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Resolve() produced %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestResolveListItemsNeverNil(t *testing.T) {
	for _, layout := range []deck.Layout{deck.LayoutBulletPoints, deck.LayoutSplitImage, deck.LayoutVisualFocus} {
		regions := Resolve(deck.Slide{ID: "s", Layout: layout, Title: "T"})
		for _, r := range regions {
			switch r.Kind {
			case KindBulletList, KindPlainList, KindCalloutList:
				if r.Items == nil {
					t.Errorf("layout %q: list region has nil Items", layout)
				}
			}
		}
	}
}

func TestResolveBigNumberStat(t *testing.T) {
	tests := []struct {
		name   string
		points []string
		want   string
	}{
		{name: "first point is the stat", points: []string{"42%", "extra"}, want: "42%"},
		{name: "no points falls back", points: nil, want: BigNumberDefault},
		{name: "empty first point falls back", points: []string{""}, want: BigNumberDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := Resolve(deck.Slide{
				ID:     "s",
				Layout: deck.LayoutBigNumber,
				Title:  "Growth",
				Points: tt.points,
			})
			var stat string
			for _, r := range regions {
				if r.Kind == KindBigStat {
					stat = r.Text
				}
			}
			if stat != tt.want {
				t.Errorf("big stat = %q, want %q", stat, tt.want)
			}
		})
	}
}

func TestResolveImagePlaceholder(t *testing.T) {
	withURL := Resolve(deck.Slide{ID: "s", Layout: deck.LayoutSplitImage, Title: "T", ImageURL: "https://x/y.png"})
	without := Resolve(deck.Slide{ID: "s", Layout: deck.LayoutSplitImage, Title: "T"})

	find := func(regions []Region) Region {
		for _, r := range regions {
			if r.Kind == KindImage {
				return r
			}
		}
		t.Fatal("no image region")
		return Region{}
	}

	if r := find(withURL); r.Placeholder || r.URL != "https://x/y.png" {
		t.Errorf("bound image region = %+v", r)
	}
	if r := find(without); !r.Placeholder {
		t.Errorf("unbound image region should be a placeholder: %+v", r)
	}
}

func TestResolveEditableFields(t *testing.T) {
	// Title edits flow back through the title field on every layout,
	// including the unknown fallback.
	for _, layout := range append(deck.Layouts, deck.Layout("mystery")) {
		regions := Resolve(deck.Slide{ID: "s", Layout: layout, Title: "T"})
		found := false
		for _, r := range regions {
			if r.Field == deck.FieldTitle {
				found = true
			}
		}
		if !found {
			t.Errorf("layout %q has no region writing FieldTitle", layout)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	s := deck.Slide{ID: "s", Layout: deck.LayoutVisualFocus, Title: "T", Points: []string{"a", "b"}}
	a := Resolve(s)
	b := Resolve(s)
	if len(a) != len(b) {
		t.Fatalf("two resolves differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Text != b[i].Text {
			t.Errorf("region %d differs between resolves", i)
		}
	}
}
