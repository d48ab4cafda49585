package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/benoitkugler/gradfx/gradanim"
	"github.com/benoitkugler/gradfx/gradconf"
	"github.com/benoitkugler/gradfx/gradfx"
	"github.com/benoitkugler/gradfx/gradpdf"
	"github.com/benoitkugler/gradfx/gradraster"
	"github.com/benoitkugler/gradfx/gradsvg"
	"github.com/benoitkugler/gradfx/gradterm"
	"github.com/benoitkugler/gradfx/gradview"
	"github.com/disintegration/imaging"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
)

const usage = `Usage: gradfx [-config file] <command> [options]

Commands:
  list     print the effects of the gallery
  frames   export PNG frames of an effect
  svg      export one frame of an effect as SVG
  sheet    export a PDF contact sheet of the gallery
  play     play the gallery in the terminal
  view     play the gallery in a window
  init     write the current configuration to the user config file
`

func main() {
	log.SetFlags(0)
	configFile := flag.String("config", "", "Configuration file (default: user config directory)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "list":
		err = list(cfg)
	case "frames":
		err = frames(cfg, args)
	case "svg":
		err = exportSVG(cfg, args)
	case "sheet":
		err = sheet(cfg, args)
	case "play":
		err = play(cfg)
	case "view":
		err = view(cfg)
	case "init":
		err = cfg.Save()
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadConfig(file string) (*gradconf.Config, error) {
	if file == "" {
		return gradconf.Load()
	}
	return gradconf.LoadFile(file)
}

func list(cfg *gradconf.Config) error {
	effects, err := cfg.Gallery()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tPERIOD\tDESCRIPTION")
	for _, e := range effects {
		period := "-"
		if e.IsAnimated() {
			period = e.Period().String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Kind, period, e.Description)
	}
	return w.Flush()
}

// effectFlags registers the options shared by the exporting commands
func effectFlags(fs *flag.FlagSet) (name, out *string) {
	name = fs.String("effect", "", "Name of the effect")
	out = fs.String("o", "", "Output path")
	return name, out
}

func lookup(cfg *gradconf.Config, name string) (*gradfx.Effect, error) {
	effects, err := cfg.Gallery()
	if err != nil {
		return nil, err
	}
	return gradfx.Lookup(effects, name)
}

func frames(cfg *gradconf.Config, args []string) error {
	fs := flag.NewFlagSet("frames", flag.ExitOnError)
	name, out := effectFlags(fs)
	n := fs.Int("n", cfg.Playback.Frames, "Number of frames over one period")
	fs.Parse(args)

	e, err := lookup(cfg, *name)
	if err != nil {
		return err
	}
	dir := *out
	if dir == "" {
		dir = e.Name
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	times := []time.Duration{0}
	if e.IsAnimated() {
		times = gradanim.Steps(e.Period(), *n)
	}
	for i, t := range times {
		img := gradraster.RenderFrame(e.Frame(t), cfg.Display.Width, cfg.Display.Height)
		path := filepath.Join(dir, fmt.Sprintf("%s-%03d.png", e.Name, i))
		if err := imaging.Save(img, path); err != nil {
			return err
		}
	}
	log.Printf("%d frames written in %s", len(times), dir)
	return nil
}

func exportSVG(cfg *gradconf.Config, args []string) error {
	fs := flag.NewFlagSet("svg", flag.ExitOnError)
	name, out := effectFlags(fs)
	at := fs.Duration("t", 0, "Time of the frame")
	fs.Parse(args)

	e, err := lookup(cfg, *name)
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = e.Name + ".svg"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gradsvg.Encode(f, e.Frame(*at), cfg.Display.Width, cfg.Display.Height)
}

func sheet(cfg *gradconf.Config, args []string) error {
	fs := flag.NewFlagSet("sheet", flag.ExitOnError)
	out := fs.String("o", "gallery.pdf", "Output path")
	title := fs.String("title", gradpdf.DefaultOptions.Title, "Document title")
	fs.Parse(args)

	effects, err := cfg.Gallery()
	if err != nil {
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()
	opts := gradpdf.Options{Title: *title, Frames: cfg.Playback.Frames, Scale: cfg.Playback.Scale}
	return gradpdf.ContactSheet(f, effects, cfg.Display.Width, cfg.Display.Height, opts)
}

func play(cfg *gradconf.Config) error {
	effects, err := cfg.Gallery()
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := gradterm.NewPlayer(screen, effects, cfg.Display.Width, cfg.Display.Height)
	if cfg.Playback.FPS > 0 {
		p.Driver.Interval = time.Second / time.Duration(cfg.Playback.FPS)
	}
	if err := p.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func view(cfg *gradconf.Config) error {
	effects, err := cfg.Gallery()
	if err != nil {
		return err
	}
	if cfg.Playback.FPS > 0 {
		ebiten.SetTPS(cfg.Playback.FPS)
	}
	p := gradview.NewPlayer(effects, cfg.Display.Width, cfg.Display.Height)
	return p.Run("Gradient gallery")
}
