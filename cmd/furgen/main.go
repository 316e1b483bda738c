// furgen generates shell-and-fin fur geometry without a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-fur/internal/assets"
	"github.com/Faultbox/midgard-fur/internal/config"
	"github.com/Faultbox/midgard-fur/internal/fur"
	"github.com/Faultbox/midgard-fur/internal/fur/fin"
	"github.com/Faultbox/midgard-fur/internal/fur/taper"
	"github.com/Faultbox/midgard-fur/internal/fur/wind"
	"github.com/Faultbox/midgard-fur/internal/logger"
	"github.com/Faultbox/midgard-fur/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "stats":
		err = cmdStats(args, os.Stdout)
	case "export":
		err = cmdExport(args, os.Stdout)
	case "presets":
		cmdPresets(os.Stdout)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `furgen - shell-and-fin fur generator

Usage:
  furgen <command> [options]

Commands:
  stats   [options]              Print what the fur settings generate
  export  [options] -o out.obj   Write base, shells and fins as OBJ objects
  presets                        List taper and wind presets

Options:
  -config <file>   Config file (defaults apply when omitted)
  -mesh <name>     Primitive name or path to an .obj file
  -shells <n>      Number of shell layers
  -no-fins         Disable fins
  -debug           Enable debug logging

Examples:
  furgen stats -mesh sphere -shells 24
  furgen export -mesh bunny.obj -o bunny_fur.obj`)
}

// options are the flags every generating command shares.
type options struct {
	config string
	mesh   string
	shells int
	noFins bool
	debug  bool
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.config, "config", "", "Config file")
	fs.StringVar(&o.mesh, "mesh", "", "Primitive name or path to an .obj file")
	fs.IntVar(&o.shells, "shells", 0, "Number of shell layers")
	fs.BoolVar(&o.noFins, "no-fins", false, "Disable fins")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
}

// load returns the config with the flag overrides applied.
func (o *options) load() (*config.Config, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.LoadFile(o.config); err != nil {
			return nil, err
		}
	}
	if o.mesh != "" {
		cfg.Mesh.SetSource(o.mesh)
	}
	if o.shells > 0 {
		cfg.Shell.Count = o.shells
	}
	if o.noFins {
		cfg.Fin.Enabled = false
	}
	if o.debug {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// generate loads the mesh and builds the fur described by o.
func (o *options) generate() (*fur.Assembly, *config.Config, time.Duration, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, nil, 0, err
	}
	if err := logger.InitWithOptions(logger.Options{
		Level:   cfg.Logging.Level,
		File:    logger.DefaultFileConfig(cfg.Logging.LogFile),
		Console: os.Stderr,
	}); err != nil {
		return nil, nil, 0, err
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("config has problems", zap.Error(err))
	}

	src, err := assets.NewManager().Load(cfg.Mesh.Source())
	if err != nil {
		return nil, nil, 0, err
	}

	a := fur.New(
		fur.WithLogger(logger.Named("fur")),
		fur.WithWorkers(cfg.Fin.Workers),
		fur.WithWindSeed(cfg.Wind.Seed),
		fur.WithSettings(cfg.FurSettings()),
	)
	start := time.Now()
	if err := a.SetMesh(src); err != nil {
		a.Close()
		return nil, nil, 0, err
	}
	return a, cfg, time.Since(start), nil
}

func cmdStats(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	var o options
	o.register(fs)
	layers := fs.Bool("layers", false, "List every shell layer")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, cfg, took, err := o.generate()
	if err != nil {
		return err
	}
	defer a.Close()

	ds := a.DrawSet()
	src := a.Mesh()
	s := a.Settings()

	fmt.Fprintf(out, "Mesh:      %s\n", cfg.Mesh.Source())
	fmt.Fprintf(out, "Vertices:  %d\n", src.VertexCount())
	fmt.Fprintf(out, "Triangles: %d\n", src.TriangleCount())
	fmt.Fprintf(out, "Edges:     %d\n", len(fin.ExtractEdges(src)))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Shells:    %d (max distance %g, taper %s)\n",
		len(ds.Shells), s.Shell.MaxDistance, describeTaper(s.Shell.Taper))

	faces := 0
	for _, item := range ds.Shells {
		faces += item.Layer.Geometry.FaceCount()
	}
	fmt.Fprintf(out, "Shell faces: %d\n", faces)

	if ds.Fins != nil {
		fmt.Fprintf(out, "Fins:      %d (length %g, limit %d, taper %s)\n",
			len(ds.Fins.Fins), s.Fin.Length, s.Fin.MaxCount, describeTaper(s.Fin.Taper))
	} else {
		fmt.Fprintln(out, "Fins:      off")
	}
	fmt.Fprintf(out, "Generated in %s\n", took.Round(time.Microsecond))

	if *layers {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-6s %-10s %-10s %-10s\n", "layer", "position", "offset", "scale")
		for _, item := range ds.Shells {
			u := item.Uniforms
			fmt.Fprintf(out, "  %-6d %-10.4f %-10.4f %-10.4f\n",
				u.LayerIndex, u.NormalizedLayer, u.OffsetDistance, u.TaperScale)
		}
	}
	return nil
}

func cmdExport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	var o options
	o.register(fs)
	output := fs.String("o", "", "Output OBJ file (stdout when empty)")
	noBase := fs.Bool("no-base", false, "Leave out the base mesh")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, cfg, _, err := o.generate()
	if err != nil {
		return err
	}
	defer a.Close()

	w := out
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", *output, err)
		}
		defer f.Close()
		w = f
	}

	objects, err := writeOBJ(w, a.DrawSet(), cfg, !*noBase)
	if err != nil {
		return fmt.Errorf("writing OBJ: %w", err)
	}
	if *output != "" {
		fmt.Fprintf(out, "Wrote %d objects to %s\n", objects, *output)
	}
	return nil
}

// writeOBJ writes the draw set, one object per base, shell layer and the
// merged fins, and returns how many objects were written.
func writeOBJ(w io.Writer, ds fur.DrawSet, cfg *config.Config, withBase bool) (int, error) {
	ow := formats.NewOBJWriter(w)
	if err := ow.WriteComment(fmt.Sprintf("furgen: %s, %d shells", cfg.Mesh.Source(), len(ds.Shells))); err != nil {
		return 0, err
	}

	n := 0
	if withBase && ds.Base != nil {
		if err := ow.WriteObject("base", ds.Base.Soup()); err != nil {
			return n, err
		}
		n++
	}
	for _, item := range ds.Shells {
		if err := ow.WriteObject(fmt.Sprintf("shell_%02d", item.Uniforms.LayerIndex), item.Layer.Geometry); err != nil {
			return n, err
		}
		n++
	}
	if ds.Fins != nil && ds.Fins.Geometry != nil {
		if err := ow.WriteObject("fins", ds.Fins.Geometry); err != nil {
			return n, err
		}
		n++
	}
	return n, ow.Flush()
}

func cmdPresets(out io.Writer) {
	fmt.Fprintln(out, "Taper presets:")
	for _, name := range taper.PresetNames() {
		p, _ := taper.LookupPreset(name)
		fmt.Fprintf(out, "  %-10s %s\n", name, describeTaper(p.Apply(taper.Config{})))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Wind presets:")
	names := wind.PresetNames()
	sort.Strings(names)
	for _, name := range names {
		p, _ := wind.ParsePreset(name)
		fmt.Fprintf(out, "  %-13s strength %.2f, turbulence %.2f, gusts %.2f\n",
			name, p.Strength, p.TurbulenceIntensity, p.GustStrength)
	}
}

func describeTaper(c taper.Config) string {
	if !c.Active() {
		return "off"
	}
	return strings.Join([]string{
		c.Curve.String(),
		fmt.Sprintf("%.2f", c.Intensity),
		c.Method.String(),
	}, " ")
}
