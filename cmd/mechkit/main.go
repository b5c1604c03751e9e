package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/mechkit/internal/config"
	"github.com/san-kum/mechkit/internal/export"
	"github.com/san-kum/mechkit/internal/numfmt"
	"github.com/san-kum/mechkit/internal/particle"
	"github.com/san-kum/mechkit/internal/storage"
	"github.com/san-kum/mechkit/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	initPreset string
	format     string
	locale     string
	themeName  string
	sortKey    string
	quantity   string
	snapName   string
	outFile    string
	plane      string
	height     int

	styles viz.Styles
)

var sortKeys = map[string]particle.Key{
	"position": particle.ByPosition,
	"velocity": particle.ByVelocity,
	"momentum": particle.ByMomentum,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mechkit",
		Short:         "vector and particle toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			theme, ok := viz.GetTheme(themeName)
			if !ok {
				return fmt.Errorf("unknown theme: %s (available: %v)", themeName, viz.ThemeNames())
			}
			styles = viz.NewStyles(theme)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mechkit", "data directory")
	rootCmd.PersistentFlags().StringVar(&format, "format", config.DefaultFormat, "numeric format (G, R, F2, E4, N0, ...)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", config.DefaultLocale, "number locale (invariant, auto, de-DE, ...)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", viz.Themes[0].Name, "color theme")

	ops := make([]string, 0, len(vecOps))
	for name := range vecOps {
		ops = append(ops, name)
	}
	slices.Sort(ops)

	vecCmd := &cobra.Command{
		Use:   "vec [op] [a] [b|scalar]",
		Short: "vector arithmetic",
		Long: "vector arithmetic on <x, y, z> operands\n\n" +
			"flags go before the operation; everything after it is an operand,\n" +
			"so -1,2,3 needs no quoting\n\noperations:\n" + describeOps(ops),
		Args: cobra.RangeArgs(2, 3),
		RunE: runVec,
	}
	vecCmd.Flags().SetInterspersed(false)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print a particle set",
		RunE:  showSet,
	}
	addSetFlags(showCmd)
	showCmd.Flags().StringVar(&sortKey, "sort", "", "sort by magnitude of position, velocity or momentum")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "tabulate a particle set",
		RunE:  tableSet,
	}
	addSetFlags(tableCmd)
	tableCmd.Flags().StringVar(&sortKey, "sort", "", "sort by magnitude of position, velocity or momentum")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot a per-particle quantity",
		RunE:  plotSet,
	}
	addSetFlags(plotCmd)
	plotCmd.Flags().StringVar(&quantity, "of", "speed", "quantity: position, speed, momentum, energy, mass, charge")
	plotCmd.Flags().IntVar(&height, "height", 10, "graph height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPARTICLES\tFORMAT")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(cfg.Particles), cfg.Format)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a sample config file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().StringVar(&initPreset, "preset", "hydrogen", "preset to start from")

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "save a particle set as a snapshot",
		RunE:  saveSnapshot,
	}
	addSetFlags(saveCmd)
	saveCmd.Flags().StringVar(&snapName, "name", "", "snapshot name (defaults to the set name)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		RunE:  listSnapshots,
	}

	loadCmd := &cobra.Command{
		Use:   "load [snapshot_id]",
		Short: "print a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  loadSnapshot,
	}
	loadCmd.Flags().StringVar(&outFile, "out", "", "also write the snapshot as a config file")

	deleteCmd := &cobra.Command{
		Use:   "delete [snapshot_id]",
		Short: "delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.New(dataDir).Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted: %s\n", args[0])
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [snapshot_id]",
		Short: "export a snapshot to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSnapshot,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "draw particle positions as SVG",
		RunE:  svgSet,
	}
	addSetFlags(svgCmd)
	svgCmd.Flags().StringVar(&plane, "plane", string(export.PlaneXY), "projection plane: xy, xz or yz")
	svgCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	rootCmd.AddCommand(vecCmd, showCmd, tableCmd, plotCmd, svgCmd, presetsCmd, initCmd, saveCmd, listCmd, loadCmd, deleteCmd, exportCmd)
	return rootCmd
}

func addSetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset particle set")
}

func describeOps(ops []string) string {
	var b strings.Builder
	for _, name := range ops {
		fmt.Fprintf(&b, "  %-6s %s\n", name, vecOps[name].help)
	}
	return b.String()
}

// loadConfig resolves --preset and --config, the config file taking
// precedence. Explicit --format and --locale flags override either.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	if cfg == nil {
		if cmd.Flags().Lookup("config") != nil {
			return nil, fmt.Errorf("no particles: use --config or --preset (available: %v)", config.ListPresets())
		}
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = format
	}
	if cmd.Flags().Changed("locale") {
		cfg.Locale = locale
	}
	return cfg, nil
}

func loadSet(cmd *cobra.Command) (*config.Config, particle.Set, numfmt.Formatter, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, numfmt.Formatter{}, err
	}

	f, err := cfg.Formatter()
	if err != nil {
		return nil, nil, numfmt.Formatter{}, err
	}

	set := cfg.Build()
	if sortKey != "" {
		key, ok := sortKeys[sortKey]
		if !ok {
			return nil, nil, numfmt.Formatter{}, fmt.Errorf("unknown sort key: %s", sortKey)
		}
		set = set.SortedBy(key)
	}

	return cfg, set, f, nil
}

func runVec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := cfg.Formatter()
	if err != nil {
		return err
	}

	out, err := evalVec(args[0], args[1:], f)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func showSet(cmd *cobra.Command, args []string) error {
	cfg, set, f, err := loadSet(cmd)
	if err != nil {
		return err
	}
	printSet(cfg.Name, set, f)
	return nil
}

func printSet(name string, set particle.Set, f numfmt.Formatter) {
	for _, p := range set {
		fmt.Println(p.Render(f))
	}
	fmt.Println()
	fmt.Println(summary(name, set, f))
}

func summary(name string, set particle.Set, f numfmt.Formatter) string {
	if name == "" {
		name = "particles"
	}

	speeds := make([]float64, len(set))
	for i, p := range set {
		speeds[i] = p.Speed()
	}

	return styles.Summary(name, [][2]string{
		{"count", fmt.Sprint(len(set))},
		{"total mass", f.FormatFloat(set.TotalMass()) + " kg"},
		{"total charge", f.FormatFloat(set.TotalCharge()) + " C"},
		{"momentum", set.Momentum().Render(f) + " kg m/s"},
		{"kinetic energy", f.FormatFloat(set.KineticEnergy()) + " J"},
		{"center of mass", set.CenterOfMass().Render(f) + " m"},
		{"speeds", styles.Sparkline(speeds, 40)},
	})
}

func tableSet(cmd *cobra.Command, args []string) error {
	cfg, set, f, err := loadSet(cmd)
	if err != nil {
		return err
	}
	if cfg.Name != "" {
		fmt.Println(styles.Title.Render(cfg.Name))
	}
	fmt.Println(styles.ParticleTable(set, f))
	return nil
}

var quantities = map[string]struct {
	caption string
	value   func(particle.Particle) float64
}{
	"position": {"|r| (m)", func(p particle.Particle) float64 { return p.Position.Length() }},
	"speed":    {"|v| (m/s)", particle.Particle.Speed},
	"momentum": {"|p| (kg m/s)", func(p particle.Particle) float64 { return p.Momentum().Length() }},
	"energy":   {"kinetic energy (J)", particle.Particle.KineticEnergy},
	"mass":     {"mass (kg)", func(p particle.Particle) float64 { return p.Mass }},
	"charge":   {"charge (C)", func(p particle.Particle) float64 { return p.Charge }},
}

func plotSet(cmd *cobra.Command, args []string) error {
	_, set, _, err := loadSet(cmd)
	if err != nil {
		return err
	}

	q, ok := quantities[quantity]
	if !ok {
		return fmt.Errorf("unknown quantity: %s", quantity)
	}
	if len(set) == 0 {
		return fmt.Errorf("no data to plot")
	}

	data := make([]float64, len(set))
	for i, p := range set {
		data[i] = q.value(p)
	}

	fmt.Println(viz.Plot(data, q.caption+" by particle", height, 0))
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite %s", path)
	}

	cfg := config.GetPreset(initPreset)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", initPreset, config.ListPresets())
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d particles)\n", path, len(cfg.Particles))
	return nil
}

func saveSnapshot(cmd *cobra.Command, args []string) error {
	cfg, set, _, err := loadSet(cmd)
	if err != nil {
		return err
	}

	name := snapName
	if name == "" {
		name = cfg.Name
	}
	if name == "" {
		name = "set"
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(name, set)
	if err != nil {
		return err
	}

	fmt.Printf("saved: %s\n", id)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := cfg.Formatter()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	snaps, err := st.List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tCOUNT\tMASS (kg)\tKE (J)")

	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			s.ID,
			s.Name,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Count,
			f.FormatFloat(float64(s.TotalMass)),
			f.FormatFloat(float64(s.KineticEnergy)),
		)
	}

	return w.Flush()
}

func loadSnapshot(cmd *cobra.Command, args []string) error {
	id := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := cfg.Formatter()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	set, err := st.LoadParticles(id)
	if err != nil {
		return err
	}

	fmt.Printf("snapshot: %s\n", meta.ID)
	fmt.Printf("saved: %s\n\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	printSet(meta.Name, set, f)

	if outFile != "" {
		if err := config.Save(outFile, config.FromSet(meta.Name, set)); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", outFile)
	}
	return nil
}

func exportSnapshot(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	set, err := st.LoadParticles(id)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta.Name, set)
}

func svgSet(cmd *cobra.Command, args []string) error {
	_, set, _, err := loadSet(cmd)
	if err != nil {
		return err
	}

	svg, err := export.ParticlesToSVG(set, export.Plane(plane), 800, 600, string(styles.Theme.Primary))
	if err != nil {
		return err
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
