package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Pixel sizes per role.
const (
	TitleSize    = 72
	SubtitleSize = 24
	BodySize     = 18
)

// DefaultFontPaths points at the DejaVu fonts shipped by most Linux distributions.
var DefaultFontPaths = FontPaths{
	Bold:    "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	Regular: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

type FontPaths struct {
	Bold    string
	Regular string
}

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// FontSet holds one face per text role.
type FontSet struct {
	Title    font.Face
	Subtitle font.Face
	Body     font.Face

	// Fallback reports that the built-in bitmap font is used for every role.
	Fallback bool
}

// Face returns the face for role, defaulting to the bitmap font when unset.
func (fs FontSet) Face(role FontRole) font.Face {
	var face font.Face
	switch role {
	case RoleTitle:
		face = fs.Title
	case RoleSubtitle:
		face = fs.Subtitle
	default:
		face = fs.Body
	}
	if face == nil {
		return basicfont.Face7x13
	}
	return face
}

// FallbackFontSet uses basicfont for every role.
func FallbackFontSet() FontSet {
	return FontSet{
		Title:    basicfont.Face7x13,
		Subtitle: basicfont.Face7x13,
		Body:     basicfont.Face7x13,
		Fallback: true,
	}
}

// LoadFontSet loads the bold title face and the regular subtitle and body
// faces. If any of them fails, all roles fall back to the bitmap font; the
// error is logged but not returned.
func LoadFontSet(paths FontPaths, log logger) FontSet {
	fs, err := loadOutlineFonts(paths)
	if err != nil {
		if log != nil {
			log.Errorf("fonts", "outline fonts unavailable, using basicfont: %v", err)
		}
		return FallbackFontSet()
	}
	if log != nil {
		log.Infof("fonts", "loaded %s and %s", paths.Bold, paths.Regular)
	}
	return fs
}

func loadOutlineFonts(paths FontPaths) (FontSet, error) {
	bold, err := parseFontFile(paths.Bold)
	if err != nil {
		return FontSet{}, err
	}
	regular, err := parseFontFile(paths.Regular)
	if err != nil {
		return FontSet{}, err
	}
	return FontSet{
		Title:    newFace(bold, TitleSize),
		Subtitle: newFace(regular, SubtitleSize),
		Body:     newFace(regular, BodySize),
	}, nil
}

func parseFontFile(path string) (*truetype.Font, error) {
	if path == "" {
		return nil, fmt.Errorf("font path not set")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return fnt, nil
}

// newFace sizes at 72 DPI so that one point is one pixel.
func newFace(fnt *truetype.Font, sizePx float64) font.Face {
	return truetype.NewFace(fnt, &truetype.Options{Size: sizePx, DPI: 72, Hinting: font.HintingFull})
}
