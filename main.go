package main

import (
	"flag"
	"log"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/gofont/gomono"

	"starforge/pkg/engine/console"
	"starforge/pkg/engine/logic"
	"starforge/pkg/engine/scene"
	"starforge/pkg/game/commands"
	renderer "starforge/pkg/game/renderer/ebiten"
)

const (
	appName  = "Starforge"
	appBuild = "build 21282"
)

func initGotext() {
	gotext.Configure("locales", "en_GB", "default")
}

// parseScale maps the -scale flag to a UI scale tier.
func parseScale(s string) console.Scale {
	switch s {
	case "large":
		return console.ScaleLarge
	case "medium":
		return console.ScaleMedium
	case "small":
		return console.ScaleSmall
	default:
		log.Fatalf("unknown ui scale %q (want large, medium or small)", s)
		return console.ScaleMedium
	}
}

// buildLibrary registers the assets the renderer resolves at startup.
func buildLibrary() *scene.Library {
	lib := scene.NewLibrary()
	lib.Register(renderer.AssetMonoFont, gomono.TTF)
	lib.Register(renderer.AssetBlipCue, renderer.BlipPCM())
	return lib
}

func main() {
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 800, "window height")
	scaleName := flag.String("scale", "medium", "ui scale tier (large, medium, small)")
	disableKeys := flag.Bool("disable-console-keys", false, "disable the console toggle keys")
	flag.Parse()

	initGotext()

	loop := logic.NewLoop()
	lib := buildLibrary()
	sc := scene.NewScene(scene.NewStream())

	host, err := renderer.New(renderer.Config{
		Width:   *width,
		Height:  *height,
		Title:   appName,
		UIScale: parseScale(*scaleName),
	}, loop, sc, lib)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}

	cvars := commands.NewRegistry(map[string]string{
		"version":              appBuild,
		commands.CvarEcho:      "1",
		commands.CvarEchoColor: "1",
	})
	interp := commands.New(cvars)
	echo := commands.NewEcho()
	echo.Bind(cvars)

	con := console.New(console.Config{
		Title:       appName + " " + appBuild,
		Build:       appBuild,
		DisableKeys: *disableKeys,
	}, console.Services{
		Shaper:  host.Shaper(),
		Render:  host,
		Audio:   host,
		Clock:   host,
		Metrics: host,
		Eval:    interp,
		Loop:    loop,
		Editor:  host,
	})

	// Command output lands in the console overlay and, for attached
	// terminals, mirrors to stderr.
	interp.SetPrinter(func(s string) {
		con.Print(s)
		echo.Print(s)
	})

	host.AttachConsole(con)
	con.EnableInput()
	con.Print(gotext.Get("Press ` or F2 to toggle the console.") + "\n")

	if err := host.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
