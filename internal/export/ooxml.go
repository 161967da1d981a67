package export

// Fixed parts of the OOXML package. The deck has one master, one layout
// and one theme: the dark "banana pro" look the slides were designed
// against. Everything slide-specific is generated in pptx.go.

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const (
	nsDrawing = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRel     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPresent = "http://schemas.openxmlformats.org/presentationml/2006/main"
)

const pmlNamespaces = `xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRel + `" xmlns:p="` + nsPresent + `"`

const rootRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
	`</Relationships>`

// slideMasterXML carries the deck background: near-black fill, a gold bar
// along the top and a gold edge strip on the right.
const slideMasterXML = xmlHeader +
	`<p:sldMaster ` + pmlNamespaces + `>` +
	`<p:cSld>` +
	`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="1A1A1A"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>` +
	`<p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
	`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Top Bar"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>` +
	`<p:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="12192000" cy="137160"/></a:xfrm>` +
	`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>` +
	`<a:solidFill><a:srgbClr val="FFD700"/></a:solidFill><a:ln><a:noFill/></a:ln></p:spPr>` +
	`<p:txBody><a:bodyPr/><a:lstStyle/><a:p/></p:txBody></p:sp>` +
	`<p:sp><p:nvSpPr><p:cNvPr id="3" name="Edge Bar"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>` +
	`<p:spPr><a:xfrm><a:off x="11826240" y="0"/><a:ext cx="365760" cy="6858000"/></a:xfrm>` +
	`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>` +
	`<a:solidFill><a:srgbClr val="FFD700"/></a:solidFill><a:ln><a:noFill/></a:ln></p:spPr>` +
	`<p:txBody><a:bodyPr/><a:lstStyle/><a:p/></p:txBody></p:sp>` +
	`</p:spTree>` +
	`</p:cSld>` +
	`<p:clrMap bg1="dk1" tx1="lt1" bg2="dk2" tx2="lt2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
	`<p:txStyles><p:titleStyle/><p:bodyStyle/><p:otherStyle/></p:txStyles>` +
	`</p:sldMaster>`

const slideMasterRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

const slideLayoutXML = xmlHeader +
	`<p:sldLayout ` + pmlNamespaces + ` type="blank">` +
	`<p:cSld name="Blank">` +
	`<p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
	`</p:spTree>` +
	`</p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

const slideLayoutRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>` +
	`</Relationships>`

const notesMasterXML = xmlHeader +
	`<p:notesMaster ` + pmlNamespaces + `>` +
	`<p:cSld>` +
	`<p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
	`</p:spTree>` +
	`</p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`</p:notesMaster>`

const notesMasterRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

const themeXML = xmlHeader +
	`<a:theme xmlns:a="` + nsDrawing + `" name="Kiminote">` +
	`<a:themeElements>` +
	`<a:clrScheme name="Kiminote">` +
	`<a:dk1><a:srgbClr val="1A1A1A"/></a:dk1>` +
	`<a:lt1><a:srgbClr val="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="0F0F0F"/></a:dk2>` +
	`<a:lt2><a:srgbClr val="CCCCCC"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="FFD700"/></a:accent1>` +
	`<a:accent2><a:srgbClr val="FFE135"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="E6C200"/></a:accent3>` +
	`<a:accent4><a:srgbClr val="2A2A2A"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="888888"/></a:accent5>` +
	`<a:accent6><a:srgbClr val="333333"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="FFD700"/></a:hlink>` +
	`<a:folHlink><a:srgbClr val="E6C200"/></a:folHlink>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="Kiminote">` +
	`<a:majorFont><a:latin typeface="Arial"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Arial"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
	`</a:fontScheme>` +
	`<a:fmtScheme name="Kiminote">` +
	`<a:fillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:fillStyleLst>` +
	`<a:lnStyleLst>` +
	`<a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`</a:lnStyleLst>` +
	`<a:effectStyleLst>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`</a:effectStyleLst>` +
	`<a:bgFillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:bgFillStyleLst>` +
	`</a:fmtScheme>` +
	`</a:themeElements>` +
	`</a:theme>`
