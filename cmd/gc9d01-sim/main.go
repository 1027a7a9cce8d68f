package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strings"

	"github.com/muesli/termenv"
	_ "golang.org/x/image/bmp"
	"golang.org/x/text/language"

	"github.com/BeatGlow/gc9d01"
	"github.com/BeatGlow/gc9d01/internal/demo"
	"github.com/BeatGlow/gc9d01/sim"
)

func main() {
	widthFlag := flag.Int("width", gc9d01.DefaultWidth, "Display width")
	heightFlag := flag.Int("height", gc9d01.DefaultHeight, "Display height")
	profileFlag := flag.String("profile", "", "Terminal color profile: ascii, ansi, ansi256 or truecolor (default: detect)")
	langFlag := flag.String("lang", "", "Language for number formatting")
	imageFlag := flag.String("image", "", "Picture to show (PNG, JPEG or BMP)")
	frameFlag := flag.Int("frame", 0, "Frame number")
	flag.Parse()

	if *widthFlag <= 0 || *heightFlag <= 0 {
		log.Fatalf("invalid size %dx%d", *widthFlag, *heightFlag)
	}

	var profile termenv.Profile
	switch strings.ToLower(*profileFlag) {
	case "":
		profile = termenv.ColorProfile()
	case "ascii":
		profile = termenv.Ascii
	case "ansi":
		profile = termenv.ANSI
	case "ansi256":
		profile = termenv.ANSI256
	case "truecolor":
		profile = termenv.TrueColor
	default:
		log.Fatalf("invalid color profile %q", *profileFlag)
	}

	var lang language.Tag
	if *langFlag != "" {
		var err error
		if lang, err = language.Parse(*langFlag); err != nil {
			log.Fatalln("invalid language:", err)
		}
	}

	var picture image.Image
	if *imageFlag != "" {
		f, err := os.Open(*imageFlag)
		if err != nil {
			log.Fatalln(err)
		}
		picture, _, err = image.Decode(f)
		_ = f.Close()
		if err != nil {
			log.Fatalf("%s: %v", *imageFlag, err)
		}
	}

	panel := sim.New(*widthFlag, *heightFlag)
	output, err := gc9d01.Open(panel, &gc9d01.Config{
		Width:    *widthFlag,
		Height:   *heightFlag,
		Language: lang,
	})
	if err != nil {
		log.Fatalln("open failed:", err)
	}
	defer output.Close()

	if err = demo.Draw(output, picture, *frameFlag); err != nil {
		log.Fatalln("draw failed:", err)
	}
	if err = panel.Render(os.Stdout, profile); err != nil {
		log.Fatalln("render failed:", err)
	}
	fmt.Printf("%s: %d commands, %d pixel writes\n", output, len(panel.Commands), len(panel.Writes))
}
