// Command gc9d01-fontgen converts a TrueType font into a Go source file with
// a packed bitmap font for the GC9D01 text functions.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"

	"github.com/BeatGlow/gc9d01/font"
)

func main() {
	sizeFlag := flag.Float64("size", 12, "Font size in points")
	dpiFlag := flag.Float64("dpi", 72, "Resolution in dots per inch")
	widthFlag := flag.Int("width", 8, "Glyph cell width (1-16)")
	heightFlag := flag.Int("height", 16, "Glyph cell height")
	nameFlag := flag.String("name", "", "Variable name (default: derived from the font file)")
	pkgFlag := flag.String("package", "fonts", "Package name")
	outFlag := flag.String("o", "", "Output file (default: stdout)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <font.ttf>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	name := flag.Arg(0)
	data, err := os.ReadFile(name)
	if err != nil {
		log.Fatalln(err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    *sizeFlag,
		DPI:     *dpiFlag,
		Hinting: xfont.HintingFull,
	})
	defer face.Close()

	f, err := font.FromFace(face, *widthFlag, *heightFlag)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}

	varName := *nameFlag
	if varName == "" {
		varName = identifier(name, f)
	}

	src, err := generate(&source{
		Package: *pkgFlag,
		Name:    varName,
		Source:  filepath.Base(name),
		Size:    *sizeFlag,
		Font:    f,
	})
	if err != nil {
		log.Fatalln(err)
	}

	if *outFlag == "" {
		_, err = os.Stdout.Write(src)
	} else {
		err = os.WriteFile(*outFlag, src, 0o644)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// identifier makes an exported Go name like DejaVuSans8x16 from a file name.
func identifier(name string, f *font.Font) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	var b strings.Builder
	upper := true
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9' && b.Len() > 0:
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			b.WriteRune(r)
		default:
			upper = true
		}
	}
	if b.Len() == 0 {
		b.WriteString("Font")
	}
	fmt.Fprintf(&b, "%dx%d", f.Width, f.Height)
	return b.String()
}

type source struct {
	Package string
	Name    string
	Source  string
	Size    float64
	Font    *font.Font
}

// Glyphs returns the packed glyphs with their character.
func (s *source) Glyphs() []glyph {
	out := make([]glyph, 0, font.NumGlyphs)
	for code := font.FirstCode; code <= font.LastCode; code++ {
		data, _ := s.Font.Glyph(code)
		out = append(out, glyph{Code: code, Data: data})
	}
	return out
}

type glyph struct {
	Code int
	Data []byte
}

func (g glyph) Bytes() string {
	parts := make([]string, len(g.Data))
	for i, b := range g.Data {
		parts[i] = fmt.Sprintf("0x%02X", b)
	}
	return strings.Join(parts, ", ")
}

func (g glyph) Char() string {
	if g.Code == 127 {
		return "DEL"
	}
	return fmt.Sprintf("%q", rune(g.Code))
}

var sourceTemplate = template.Must(template.New("font").Parse(`// Code generated by gc9d01-fontgen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

import "github.com/BeatGlow/gc9d01/font"

// {{.Name}} is {{.Source}} at {{.Size}} points in a {{.Font.Width}}x{{.Font.Height}} cell.
var {{.Name}} = &font.Font{
	Width:  {{.Font.Width}},
	Height: {{.Font.Height}},
	Data: []byte{
{{- range .Glyphs}}
		{{.Bytes}}, // {{.Char}}
{{- end}}
	},
}
`))

func generate(s *source) ([]byte, error) {
	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, s); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
