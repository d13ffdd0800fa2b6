package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/memmaker/bakefont/engine/font"
	"github.com/memmaker/bakefont/engine/util"
	"github.com/memmaker/bakefont/preview"
)

func main() {
	fontPath := flag.String("font", "", "path to a .ttf or .otf font file")
	outputName := flag.String("out", "baked_font", "output name for the descriptor and atlas files")
	fontSize := flag.Float64("size", 20, "pixel size to bake at")
	atlasWidth := flag.Int("atlas-width", 512, "atlas width in pixels")
	atlasHeight := flag.Int("atlas-height", 512, "atlas height in pixels")
	firstChar := flag.Int("first-char", 32, "first codepoint of the baked range")
	numChars := flag.Int("num-chars", 96, "number of codepoints to bake")
	showPreview := flag.Bool("preview", false, "open a window and preview the bake interactively")
	debugAtlas := flag.Bool("debug-atlas", false, "also dump the atlas as a PNG")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *verbose && term.IsTerminal(int(os.Stdout.Fd())) {
		util.GLOBAL_LOG_LEVEL = util.LogLevelInfo
	}

	if *fontPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	request := font.BakeRequest{
		FontPath:    *fontPath,
		Name:        *outputName,
		FontSize:    *fontSize,
		AtlasWidth:  *atlasWidth,
		AtlasHeight: *atlasHeight,
		FirstChar:   *firstChar,
		NumChars:    *numChars,
	}

	if *showPreview {
		app := preview.NewApp("bakefont", 800, 600, request)
		app.Run()
		return
	}

	result, err := font.Bake(request)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bake failed: %s\n", err)
		os.Exit(1)
	}
	if err = result.WriteFiles(*outputName); err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %s\n", err)
		os.Exit(1)
	}
	if *debugAtlas {
		if err = result.WriteDebugPNG(*outputName + "_debug.png"); err != nil {
			fmt.Fprintf(os.Stderr, "atlas dump failed: %s\n", err)
		}
	}
	fmt.Printf("baked %d glyphs of %s at %.1fpx into %dx%d\n",
		len(result.Descriptor.Chars), result.Descriptor.Face, *fontSize, *atlasWidth, *atlasHeight)
}
