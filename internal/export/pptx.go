package export

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/kiminote/kiminote/internal/deck"
	"github.com/kiminote/kiminote/internal/layout"
)

// Slide geometry, 16:9 at 13.333in x 7.5in.
const (
	emuPerInch  = 914400
	slideWidth  = 12192000
	slideHeight = 6858000
)

func emu(inches float64) int {
	return int(inches * emuPerInch)
}

// Deck palette, shared with the master in ooxml.go.
const (
	colorGold    = "FFD700"
	colorWhite   = "FFFFFF"
	colorSubtle  = "CCCCCC"
	colorDim     = "888888"
	colorFaint   = "555555"
	colorPanel   = "222222"
	colorPanelLt = "333333"
	colorBlack   = "000000"
	colorInk     = "1A1A1A"
)

// WritePPTX encodes the presentation as a binary pptx document: one slide
// page per deck slide, in order, with speaker notes on the notes channel.
// The same region resolution drives the editor and the HTML viewer, so
// the three surfaces cannot drift apart. Output is deterministic for a
// given presentation.
func WritePPTX(w io.Writer, p *deck.Presentation) error {
	z := zip.NewWriter(w)

	write := func(name, content string) error {
		f, err := z.Create(name)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", name, err)
		}
		if _, err := io.WriteString(f, content); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		return nil
	}

	parts := []struct{ name, content string }{
		{"[Content_Types].xml", contentTypesXML(p)},
		{"_rels/.rels", rootRelsXML},
		{"ppt/presentation.xml", presentationXML(len(p.Slides))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(p.Slides))},
		{"ppt/theme/theme1.xml", themeXML},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/notesMasters/notesMaster1.xml", notesMasterXML},
		{"ppt/notesMasters/_rels/notesMaster1.xml.rels", notesMasterRelsXML},
	}
	for _, part := range parts {
		if err := write(part.name, part.content); err != nil {
			return err
		}
	}

	for i, s := range p.Slides {
		n := i + 1
		if err := write(fmt.Sprintf("ppt/slides/slide%d.xml", n), slideXML(s)); err != nil {
			return err
		}
		if err := write(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRelsXML(n, hasNotes(s))); err != nil {
			return err
		}
		if hasNotes(s) {
			if err := write(fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n), notesSlideXML(s)); err != nil {
				return err
			}
			if err := write(fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", n), notesSlideRelsXML(n)); err != nil {
				return err
			}
		}
	}

	if err := z.Close(); err != nil {
		return fmt.Errorf("failed to finalize pptx: %w", err)
	}
	return nil
}

func hasNotes(s deck.Slide) bool {
	return strings.TrimSpace(s.SpeakerNotes) != ""
}

func contentTypesXML(p *deck.Presentation) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/notesMasters/notesMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i, s := range p.Slides {
		n := i + 1
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, n)
		if hasNotes(s) {
			fmt.Fprintf(&b, `<Override PartName="/ppt/notesSlides/notesSlide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"/>`, n)
		}
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func presentationXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation ` + pmlNamespaces + `>`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:notesMasterIdLst><p:notesMasterId r:id="rId2"/></p:notesMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 3+i)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, slideWidth, slideHeight)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func presentationRelsXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	b.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster" Target="notesMasters/notesMaster1.xml"/>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, 3+i, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func slideRelsXML(n int, withNotes bool) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>`)
	if withNotes {
		fmt.Fprintf(&b, `<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide%d.xml"/>`, n)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func notesSlideXML(s deck.Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:notes ` + pmlNamespaces + `>`)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Notes Placeholder"/>`)
	b.WriteString(`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>`)
	b.WriteString(`<p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>`)
	b.WriteString(`<p:spPr/>`)
	b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/>`)
	for _, line := range strings.Split(s.SpeakerNotes, "\n") {
		fmt.Fprintf(&b, `<a:p><a:r><a:t>%s</a:t></a:r></a:p>`, xmlEscape(line))
	}
	b.WriteString(`</p:txBody></p:sp>`)
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:notes>`)
	return b.String()
}

func notesSlideRelsXML(n int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster" Target="../notesMasters/notesMaster1.xml"/>`)
	fmt.Fprintf(&b, `<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="../slides/slide%d.xml"/>`, n)
	b.WriteString(`</Relationships>`)
	return b.String()
}

func slideXML(s deck.Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + pmlNamespaces + `>`)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	b.WriteString(slideShapes(s))
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

// slideShapes re-expresses the slide's resolved regions in pptx
// primitives. Geometry is this surface's own; the content binding comes
// from the resolver so all three surfaces stay consistent.
func slideShapes(s deck.Slide) string {
	regions := layout.Resolve(s)
	sb := &shapeBuilder{nextID: 2}

	switch s.Layout {
	case deck.LayoutTitle:
		label := pick(regions, layout.KindLabel)
		title := pick(regions, layout.KindTitle)
		subtitle := pick(regions, layout.KindSubtitle)
		sb.text("Label", emu(0), emu(1.9), slideWidth, emu(0.4),
			[]para{{text: label.Text, opts: textOpts{size: 14, bold: true, color: colorGold, align: "ctr"}}})
		sb.text("Title", emu(1.0), emu(2.5), emu(11.33), emu(1.5),
			[]para{{text: title.Text, opts: textOpts{size: 54, bold: true, color: colorGold, align: "ctr"}}})
		if subtitle.Text != "" {
			sb.text("Subtitle", emu(2.0), emu(4.2), emu(9.33), emu(1.0),
				[]para{{text: subtitle.Text, opts: textOpts{size: 24, color: colorSubtle, align: "ctr"}}})
		}

	case deck.LayoutBulletPoints:
		title := pick(regions, layout.KindTitle)
		bullets := pick(regions, layout.KindBulletList)
		img := pick(regions, layout.KindImage)
		sb.text("Title", emu(0.5), emu(0.5), emu(12.0), emu(1.0),
			[]para{{text: title.Text, opts: textOpts{size: 36, bold: true, color: colorGold}}})
		if len(bullets.Items) > 0 {
			sb.text("Bullets", emu(0.5), emu(1.8), emu(7.5), emu(5.0), bulletParas(bullets.Items, 18, colorWhite))
		}
		sb.rect("Visual", emu(8.6), emu(1.8), emu(4.2), emu(4.2), colorPanelLt, 0)
		sb.text("Visual Caption", emu(8.8), emu(2.0), emu(3.8), emu(3.8),
			[]para{{text: "Visual: " + img.Caption, opts: textOpts{size: 10, color: colorDim}}})

	case deck.LayoutBigNumber:
		caption := pick(regions, layout.KindLabel)
		stat := pick(regions, layout.KindBigStat)
		support := pick(regions, layout.KindSupport)
		sb.text("Caption", emu(0.5), emu(0.6), emu(12.33), emu(0.9),
			[]para{{text: caption.Text, opts: textOpts{size: 32, bold: true, color: colorGold, align: "ctr"}}})
		sb.text("Stat", emu(0), emu(2.3), slideWidth, emu(2.2),
			[]para{{text: stat.Text, opts: textOpts{size: 120, bold: true, color: colorGold, align: "ctr"}}})
		if support.Text != "" {
			sb.text("Support", emu(2.67), emu(5.1), emu(8.0), emu(1.2),
				[]para{{text: support.Text, opts: textOpts{size: 18, color: colorSubtle, align: "ctr"}}})
		}

	case deck.LayoutSplitImage:
		title := pick(regions, layout.KindTitle)
		list := pick(regions, layout.KindPlainList)
		img := pick(regions, layout.KindImage)
		caption := img.URL
		if img.Placeholder {
			caption = "Image placeholder"
		}
		sb.rect("Visual Half", emu(6.67), 0, emu(6.67), slideHeight, colorPanel, 0)
		sb.text("Visual Caption", emu(7.5), emu(3.4), emu(5.0), emu(0.8),
			[]para{{text: caption, opts: textOpts{size: 12, color: colorFaint, align: "ctr"}}})
		sb.text("Title", emu(0.5), emu(0.5), emu(5.8), emu(1.2),
			[]para{{text: title.Text, opts: textOpts{size: 36, bold: true, color: colorGold}}})
		if len(list.Items) > 0 {
			sb.text("Points", emu(0.5), emu(1.9), emu(5.8), emu(5.0), bulletParas(list.Items, 18, colorWhite))
		}

	case deck.LayoutSectionHeader:
		label := pick(regions, layout.KindLabel)
		title := pick(regions, layout.KindTitle)
		sb.rect("Accent Panel", 0, 0, slideWidth, slideHeight, colorGold, 0)
		sb.text("Label", emu(0.9), emu(2.2), emu(6.0), emu(0.6),
			[]para{{text: strings.ToUpper(label.Text), opts: textOpts{size: 20, bold: true, color: colorInk}}})
		sb.text("Title", emu(0.9), emu(2.9), emu(11.5), emu(1.9),
			[]para{{text: title.Text, opts: textOpts{size: 72, bold: true, color: colorInk}}})

	case deck.LayoutVisualFocus:
		label := pick(regions, layout.KindLabel)
		title := pick(regions, layout.KindTitle)
		callouts := pick(regions, layout.KindCalloutList)
		// The image itself stays a fill: remote references are not
		// fetched at export time, so the placeholder is the contract.
		sb.rect("Backdrop", 0, 0, slideWidth, slideHeight, colorPanel, 0)
		sb.rect("Shade", 0, 0, emu(8.0), slideHeight, colorBlack, 30)
		sb.text("Label", emu(0.5), emu(1.4), emu(6.7), emu(0.5),
			[]para{{text: strings.ToUpper(label.Text), opts: textOpts{size: 14, bold: true, color: colorGold}}})
		sb.text("Title", emu(0.5), emu(2.0), emu(6.7), emu(2.0),
			[]para{{text: title.Text, opts: textOpts{size: 48, bold: true, color: colorGold}}})
		if len(callouts.Items) > 0 {
			sb.text("Callouts", emu(0.5), emu(4.2), emu(6.7), emu(2.8), plainParas(callouts.Items, 24, "EEEEEE"))
		}

	default:
		fallback := pick(regions, layout.KindUnknown)
		sb.text("Notice", emu(0.5), emu(2.8), emu(12.33), emu(0.6),
			[]para{{text: "UNRECOGNIZED LAYOUT", opts: textOpts{size: 14, color: colorDim, align: "ctr"}}})
		sb.text("Title", emu(0.5), emu(3.4), emu(12.33), emu(1.2),
			[]para{{text: fallback.Text, opts: textOpts{size: 36, bold: true, color: colorGold, align: "ctr"}}})
	}

	return sb.String()
}

// pick returns the first region of the given kind, or an empty one. The
// resolver guarantees the kinds each layout produces, so a miss here only
// happens on a programming error and the empty region renders as nothing.
func pick(regions []layout.Region, kind layout.Kind) layout.Region {
	for _, r := range regions {
		if r.Kind == kind {
			return r
		}
	}
	return layout.Region{Kind: kind}
}

type textOpts struct {
	size  int    // points
	bold  bool
	color string // RRGGBB
	align string // "" or "ctr"
}

type para struct {
	text   string
	opts   textOpts
	bullet bool
}

func bulletParas(items []string, size int, color string) []para {
	paras := make([]para, 0, len(items))
	for _, item := range items {
		paras = append(paras, para{text: item, opts: textOpts{size: size, color: color}, bullet: true})
	}
	return paras
}

func plainParas(items []string, size int, color string) []para {
	paras := make([]para, 0, len(items))
	for _, item := range items {
		paras = append(paras, para{text: item, opts: textOpts{size: size, color: color}})
	}
	return paras
}

type shapeBuilder struct {
	b      strings.Builder
	nextID int
}

func (sb *shapeBuilder) id() int {
	id := sb.nextID
	sb.nextID++
	return id
}

func (sb *shapeBuilder) String() string {
	return sb.b.String()
}

// text emits a borderless text box.
func (sb *shapeBuilder) text(name string, x, y, w, h int, paras []para) {
	fmt.Fprintf(&sb.b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`,
		sb.id(), xmlEscape(name))
	fmt.Fprintf(&sb.b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, x, y, w, h)
	sb.b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)
	sb.b.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	for _, p := range paras {
		sb.b.WriteString(paragraphXML(p))
	}
	sb.b.WriteString(`</p:txBody></p:sp>`)
}

// rect emits a filled rectangle. transparency is a percentage, 0 for an
// opaque fill.
func (sb *shapeBuilder) rect(name string, x, y, w, h int, fill string, transparency int) {
	fmt.Fprintf(&sb.b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`,
		sb.id(), xmlEscape(name))
	fmt.Fprintf(&sb.b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, x, y, w, h)
	sb.b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	if transparency > 0 {
		fmt.Fprintf(&sb.b, `<a:solidFill><a:srgbClr val="%s"><a:alpha val="%d"/></a:srgbClr></a:solidFill>`,
			fill, (100-transparency)*1000)
	} else {
		fmt.Fprintf(&sb.b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, fill)
	}
	sb.b.WriteString(`<a:ln><a:noFill/></a:ln></p:spPr>`)
	sb.b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/><a:p/></p:txBody></p:sp>`)
}

func paragraphXML(p para) string {
	var b strings.Builder
	b.WriteString(`<a:p><a:pPr`)
	if p.opts.align != "" {
		fmt.Fprintf(&b, ` algn="%s"`, p.opts.align)
	}
	b.WriteString(`>`)
	if p.bullet {
		b.WriteString(`<a:buFont typeface="Arial"/><a:buChar char="&#8226;"/>`)
	} else {
		b.WriteString(`<a:buNone/>`)
	}
	b.WriteString(`</a:pPr>`)
	fmt.Fprintf(&b, `<a:r><a:rPr lang="en-US" sz="%d"`, p.opts.size*100)
	if p.opts.bold {
		b.WriteString(` b="1"`)
	}
	b.WriteString(` dirty="0">`)
	fmt.Fprintf(&b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, p.opts.color)
	b.WriteString(`<a:latin typeface="Arial"/></a:rPr>`)
	fmt.Fprintf(&b, `<a:t>%s</a:t></a:r></a:p>`, xmlEscape(p.text))
	return b.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
