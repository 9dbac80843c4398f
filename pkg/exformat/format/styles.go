package format

import "github.com/xuri/excelize/v2"

// Presentation constants shared by every formatted cell.
const (
	FontFamily      = "Tahoma"
	FontSize        = 8
	FontColor       = "000000"
	BorderColor     = "B0B0B0"
	HeaderFillColor = "DCDCDC"
)

type styleKind int

const (
	kindHeader styleKind = iota
	kindCenter
	kindLeft
)

// kindOf returns the style kind of a 1-based cell position.
func kindOf(row, col int) styleKind {
	switch {
	case row == 1:
		return kindHeader
	case col == DescriptionColumn:
		return kindLeft
	default:
		return kindCenter
	}
}

// numFmt is a cell number format: a built-in id or a custom code.
type numFmt struct {
	id     int
	custom string
}

func (n numFmt) general() bool {
	return n.id == 0 && n.custom == ""
}

type styleKey struct {
	kind styleKind
	fmt  numFmt
}

// styleSet registers engine styles on demand, one per kind and number format.
type styleSet struct {
	f   *excelize.File
	ids map[styleKey]int
}

func newStyleSet(f *excelize.File) *styleSet {
	return &styleSet{f: f, ids: make(map[styleKey]int)}
}

// get returns the style index for kind carrying number format nf.
func (s *styleSet) get(kind styleKind, nf numFmt) (int, error) {
	key := styleKey{kind: kind, fmt: nf}
	if id, ok := s.ids[key]; ok {
		return id, nil
	}
	id, err := s.f.NewStyle(cellStyle(kind, nf))
	if err != nil {
		return 0, err
	}
	s.ids[key] = id
	return id, nil
}

// cellStyle builds a full cell style. Data kinds keep fill 0, the "none"
// pattern, which replaces whatever fill the cell had before.
func cellStyle(kind styleKind, nf numFmt) *excelize.Style {
	horizontal := "center"
	if kind == kindLeft {
		horizontal = "left"
	}

	style := &excelize.Style{
		Font: &excelize.Font{
			Family: FontFamily,
			Size:   FontSize,
			Bold:   false,
			Color:  FontColor,
		},
		Border: []excelize.Border{
			{Type: "left", Color: BorderColor, Style: 1},
			{Type: "right", Color: BorderColor, Style: 1},
			{Type: "top", Color: BorderColor, Style: 1},
			{Type: "bottom", Color: BorderColor, Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: horizontal,
			Vertical:   "center",
			WrapText:   false,
		},
		NumFmt: nf.id,
	}
	if nf.custom != "" {
		custom := nf.custom
		style.CustomNumFmt = &custom
	}
	if kind == kindHeader {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{HeaderFillColor},
			Pattern: 1,
		}
	}
	return style
}

// numberFormats returns the non-general number formats of the cells in rows
// 1..lastRow and columns 1..LastColumn, keyed by cell name.
func numberFormats(f *excelize.File, sheetName string, lastRow int) (map[string]numFmt, error) {
	formats := make(map[string]numFmt)
	byStyle := make(map[int]numFmt)

	for r := 1; r <= lastRow; r++ {
		for c := 1; c <= LastColumn; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, err
			}
			idx, err := f.GetCellStyle(sheetName, cell)
			if err != nil {
				return nil, err
			}
			if idx == 0 {
				continue
			}
			nf, ok := byStyle[idx]
			if !ok {
				style, err := f.GetStyle(idx)
				if err != nil {
					return nil, err
				}
				nf = numFmt{id: style.NumFmt}
				if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
					nf = numFmt{custom: *style.CustomNumFmt}
				}
				byStyle[idx] = nf
			}
			if !nf.general() {
				formats[cell] = nf
			}
		}
	}
	return formats, nil
}
