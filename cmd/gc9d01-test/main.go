package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	_ "golang.org/x/image/bmp"
	"golang.org/x/text/language"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/gc9d01"
	"github.com/BeatGlow/gc9d01/internal/demo"
)

func main() {
	speed := gc9d01.DefaultSPIConfig.Speed
	flag.Var(&speed, "speed", "SPI bus speed")
	widthFlag := flag.Int("width", gc9d01.DefaultWidth, "Display width")
	heightFlag := flag.Int("height", gc9d01.DefaultHeight, "Display height")
	colOffsetFlag := flag.Int("col-offset", 0, "Column address offset")
	rowOffsetFlag := flag.Int("row-offset", 0, "Row address offset")
	spiPortFlag := flag.String("spi", "", "SPI port name (default: use first available)")
	spiModeFlag := flag.Int("spi-mode", int(spi.Mode0), "SPI mode")
	batchFlag := flag.Uint("batch", gc9d01.DefaultSPIConfig.BatchSize, "Maximum bytes per SPI transfer")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	csPinFlag := flag.String("cs", "", "Chip select GPIO pin, if not driven by the SPI port")
	blPinFlag := flag.String("bl", "GPIO19", "Backlight GPIO pin")
	levelFlag := flag.Uint("backlight", 0xFF, "Backlight level (0-255)")
	langFlag := flag.String("lang", "", "Language for number formatting")
	imageFlag := flag.String("image", "", "Picture to show (PNG, JPEG or BMP)")
	framesFlag := flag.Int("frames", 0, "Number of frames to draw (default: until interrupted)")
	rotateFlag := flag.String("rotate", "", "Display rotation")
	flag.Parse()

	var rotation gc9d01.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = gc9d01.NoRotation
	case "90", "right", "cw":
		rotation = gc9d01.Rotate90
	case "180", "flip":
		rotation = gc9d01.Rotate180
	case "270", "left", "ccw":
		rotation = gc9d01.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}
	fmt.Printf("using rotation: %s\n", rotation)

	if *levelFlag > 0xFF {
		fatal(fmt.Errorf("invalid backlight level %d", *levelFlag))
	}

	var lang language.Tag
	if *langFlag != "" {
		var err error
		if lang, err = language.Parse(*langFlag); err != nil {
			fatal(err)
		}
	}

	var picture image.Image
	if *imageFlag != "" {
		var err error
		if picture, err = loadImage(*imageFlag); err != nil {
			fatal(err)
		}
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	spiConfig := &gc9d01.SPIConfig{
		Port:      *spiPortFlag,
		Speed:     speed,
		Mode:      spi.Mode(*spiModeFlag),
		BatchSize: *batchFlag,
		Reset:     gpioreg.ByName(*resetPinFlag),
		DC:        gpioreg.ByName(*dcPinFlag),
	}
	if *csPinFlag != "" {
		spiConfig.CS = gpioreg.ByName(*csPinFlag)
	}
	conn, err := gc9d01.OpenSPI(spiConfig)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using connection: %s\n", conn)

	config := &gc9d01.Config{
		Width:        *widthFlag,
		Height:       *heightFlag,
		ColumnOffset: *colOffsetFlag,
		RowOffset:    *rowOffsetFlag,
		Rotation:     rotation,
		Language:     lang,
	}
	if *blPinFlag != "" {
		config.Backlight = gpioreg.ByName(*blPinFlag)
	}
	output, err := gc9d01.Open(conn, config)
	if err != nil {
		_ = conn.Close()
		fatal(err)
	}
	defer output.Close()
	fmt.Printf("using driver: %s at %s\n", output, speed)

	if err = output.SetBacklight(uint8(*levelFlag)); err != nil {
		fatal(err)
	}

	var (
		ticker = time.NewTicker(100 * time.Millisecond)
		start  = time.Now()
	)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	for frame := 0; *framesFlag == 0 || frame < *framesFlag; frame++ {
		if err = demo.Draw(output, picture, frame); err != nil {
			fatal(err)
		}
		<-ticker.C
	}
	fmt.Printf("drew %d frames in %s\n", *framesFlag, time.Since(start).Round(time.Millisecond))
}

func loadImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	fmt.Printf("loaded %s %s image %s\n", m.Bounds().Size(), format, name)
	return m, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
