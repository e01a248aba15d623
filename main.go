package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/df07/go-gl-sandbox/pkg/app"
)

func init() {
	// SDL event handling and GL calls must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	config := app.DefaultConfig()

	width := flag.Int("width", int(config.WindowWidth), "Window width in pixels")
	height := flag.Int("height", int(config.WindowHeight), "Window height in pixels")
	resourceDir := flag.String("resources", "", "Resource directory (default: executable directory)")
	fontPath := flag.String("font", config.FontPath, "Overlay font, relative to the resource directory")
	fontSize := flag.Int("font-size", config.FontSize, "Overlay font point size")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("GL camera sandbox")
		fmt.Println("Usage: gl-sandbox [options]")
		fmt.Println()
		fmt.Println("Opens a GL window with a colored quad and a second window showing")
		fmt.Println("live camera state. Drag with the left mouse button to orbit the")
		fmt.Println("camera; press Escape or close a window to quit.")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	config.WindowWidth = int32(*width)
	config.WindowHeight = int32(*height)
	config.ResourceDir = *resourceDir
	config.FontPath = *fontPath
	config.FontSize = *fontSize

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "gl-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run(config app.Config) error {
	ctx, err := app.NewContext(config)
	if err != nil {
		return err
	}
	defer ctx.Close()

	return ctx.Run()
}
