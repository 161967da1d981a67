package deck

import (
	"strings"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	tests := []struct {
		name    string
		slides  []Slide
		wantIDs []string
	}{
		{
			name: "existing ids preserved",
			slides: []Slide{
				{ID: "intro", Layout: LayoutTitle},
				{ID: "stats", Layout: LayoutBigNumber},
			},
			wantIDs: []string{"intro", "stats"},
		},
		{
			name: "missing id gets fallback",
			slides: []Slide{
				{ID: "", Layout: LayoutTitle},
			},
			wantIDs: []string{"slide-1700000000000-0"},
		},
		{
			name: "duplicate id replaced",
			slides: []Slide{
				{ID: "dup", Layout: LayoutTitle},
				{ID: "dup", Layout: LayoutBulletPoints},
			},
			wantIDs: []string{"dup", "slide-1700000000000-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Presentation{Topic: "Test", Slides: tt.slides}
			p.normalizeAt(now)

			for i, want := range tt.wantIDs {
				if got := p.Slides[i].ID; got != want {
					t.Errorf("slide %d id = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestNormalizeUniqueIDs(t *testing.T) {
	p := &Presentation{Slides: []Slide{{}, {}, {}, {}}}
	p.Normalize()

	seen := make(map[string]bool)
	for i, s := range p.Slides {
		if s.ID == "" {
			t.Errorf("slide %d has empty id after Normalize", i)
		}
		if seen[s.ID] {
			t.Errorf("slide %d id %q is not unique", i, s.ID)
		}
		seen[s.ID] = true
	}
}

func TestNormalizeImageURL(t *testing.T) {
	p := &Presentation{Slides: []Slide{
		{ID: "a"},
		{ID: "b", ImageURL: "https://example.com/pic.png"},
	}}
	p.Normalize()

	if got := p.Slides[0].ImageURL; !strings.Contains(got, "/seed/a/") {
		t.Errorf("default image url = %q, want seed derived from id", got)
	}
	if got := p.Slides[1].ImageURL; got != "https://example.com/pic.png" {
		t.Errorf("explicit image url overwritten: %q", got)
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		field   Field
		value   string
		wantErr bool
	}{
		{name: "edit title", id: "s1", field: FieldTitle, value: "New Title"},
		{name: "edit subtitle", id: "s1", field: FieldSubtitle, value: "sub"},
		{name: "edit notes", id: "s1", field: FieldSpeakerNotes, value: "say this"},
		{name: "edit image url", id: "s1", field: FieldImageURL, value: "https://x/y.png"},
		{name: "points rejected", id: "s1", field: FieldPoints, value: "x", wantErr: true},
		{name: "unknown field", id: "s1", field: Field("layout"), value: "x", wantErr: true},
		{name: "unknown slide", id: "nope", field: FieldTitle, value: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Presentation{Slides: []Slide{
				{ID: "s1", Layout: LayoutBulletPoints, Title: "Old", Points: []string{"a", "b"}},
			}}
			err := p.SetField(tt.id, tt.field, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetField() error = %v, wantErr %v", err, tt.wantErr)
			}
			// Identity fields are never touched by an edit
			if p.Slides[0].ID != "s1" || p.Slides[0].Layout != LayoutBulletPoints {
				t.Errorf("edit changed slide identity: id=%q layout=%q", p.Slides[0].ID, p.Slides[0].Layout)
			}
		})
	}
}

func TestSetPoint(t *testing.T) {
	tests := []struct {
		name       string
		index      int
		wantErr    bool
		wantPoints int
	}{
		{name: "first point", index: 0, wantPoints: 3},
		{name: "last point", index: 2, wantPoints: 3},
		{name: "one past end appends", index: 3, wantPoints: 4},
		{name: "negative index", index: -1, wantErr: true},
		{name: "past append position", index: 4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Presentation{Slides: []Slide{
				{ID: "s1", Layout: LayoutBulletPoints, Points: []string{"a", "b", "c"}},
			}}
			err := p.SetPoint("s1", tt.index, "edited")
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetPoint() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := len(p.Slides[0].Points); got != tt.wantPoints {
				t.Fatalf("point count = %d, want %d", got, tt.wantPoints)
			}
			if got := p.Slides[0].Points[tt.index]; got != "edited" {
				t.Errorf("point %d = %q, want %q", tt.index, got, "edited")
			}
			// Only the addressed index changes
			for i, v := range p.Slides[0].Points {
				if i != tt.index && v == "edited" {
					t.Errorf("point %d changed unexpectedly", i)
				}
			}
		})
	}
}

func TestSetPointCreatesBigNumberStat(t *testing.T) {
	p := &Presentation{Slides: []Slide{
		{ID: "s1", Layout: LayoutBigNumber, Title: "Growth"},
	}}

	if err := p.SetPoint("s1", 0, "42%"); err != nil {
		t.Fatalf("SetPoint() on empty points error = %v", err)
	}
	if got := p.Slides[0].Points; len(got) != 1 || got[0] != "42%" {
		t.Errorf("points = %v, want the stat created at index 0", got)
	}
}

func TestKnown(t *testing.T) {
	for _, l := range Layouts {
		if !l.Known() {
			t.Errorf("layout %q should be known", l)
		}
	}
	if Layout("timeline").Known() {
		t.Error("unexpected layout reported as known")
	}
}
