// Command bedrockmate computes Minecraft Bedrock structure, biome and
// slime chunk locations for a given world seed, and can serve the world
// management HTTP API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/bedrockmate/internal/api"
	"github.com/OCharnyshevich/bedrockmate/internal/config"
	"github.com/OCharnyshevich/bedrockmate/internal/finder"
	"github.com/OCharnyshevich/bedrockmate/internal/gamedata"
	"github.com/OCharnyshevich/bedrockmate/internal/jobs"
	"github.com/OCharnyshevich/bedrockmate/internal/report"
	"github.com/OCharnyshevich/bedrockmate/internal/store"
)

const usage = `usage: bedrockmate <command> [flags]

commands:
  structures  find overworld structures around a point
  nether      find nether fortresses and bastions
  biome       find the nearest biome of a given type
  slime       map slime chunks around a point
  serve       run the world management HTTP API

run "bedrockmate <command> -h" for command flags
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	switch os.Args[1] {
	case "structures":
		structuresCmd(os.Args[2:])
	case "nether":
		netherCmd(os.Args[2:])
	case "biome":
		biomeCmd(os.Args[2:])
	case "slime":
		slimeCmd(os.Args[2:])
	case "serve":
		serveCmd(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

// allKinds is the structure set searched for -type all.
var allKinds = []finder.StructureKind{
	finder.Village,
	finder.PillagerOutpost,
	finder.OceanMonument,
	finder.WoodlandMansion,
}

func structuresCmd(args []string) {
	fs := flag.NewFlagSet("structures", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "world seed (required)")
	centerX := fs.Int("x", 0, "search center X coordinate")
	centerZ := fs.Int("z", 0, "search center Z coordinate")
	radius := fs.Int("radius", 5000, "search radius in blocks")
	structureType := fs.String("type", "all", "structure type (all, village, outpost, monument, mansion, igloo, witch_hut, shipwreck, buried_treasure)")
	output := fs.String("output", "text", "output format (text, json)")
	_ = fs.Parse(args)
	requireSeed(fs, "seed")

	kinds := allKinds
	if *structureType != "all" {
		kind, ok := finder.ParseStructureKind(*structureType)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown structure type %q\n", *structureType)
			os.Exit(2)
		}
		kinds = []finder.StructureKind{kind}
	}

	var found []finder.Structure
	for _, kind := range kinds {
		found = append(found, finder.FindStructures(*seed, int32(*centerX), int32(*centerZ), int32(*radius), kind)...)
	}
	result := report.NewStructureSearch(*seed, int32(*centerX), int32(*centerZ), int32(*radius), found)
	printStructures(*output, result)
}

func netherCmd(args []string) {
	fs := flag.NewFlagSet("nether", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "world seed (required)")
	centerX := fs.Int("x", 0, "search center X coordinate (nether blocks)")
	centerZ := fs.Int("z", 0, "search center Z coordinate (nether blocks)")
	radius := fs.Int("radius", 1000, "search radius in blocks")
	output := fs.String("output", "text", "output format (text, json)")
	_ = fs.Parse(args)
	requireSeed(fs, "seed")

	found := finder.FindNetherStructures(*seed, int32(*centerX), int32(*centerZ), int32(*radius))
	result := report.NewStructureSearch(*seed, int32(*centerX), int32(*centerZ), int32(*radius), found)
	printStructures(*output, result)
}

func biomeCmd(args []string) {
	fs := flag.NewFlagSet("biome", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "world seed (required)")
	centerX := fs.Int("x", 0, "search center X coordinate")
	centerZ := fs.Int("z", 0, "search center Z coordinate")
	radius := fs.Int("radius", 10000, "search radius in blocks")
	target := fs.String("target", "", "biome to search for (jungle, mesa, mushroom, ice_spikes, ...)")
	output := fs.String("output", "text", "output format (text, json)")
	_ = fs.Parse(args)
	requireSeed(fs, "seed")
	if *target == "" {
		fmt.Fprintln(os.Stderr, "missing -target")
		os.Exit(2)
	}

	match, found := finder.FindNearestBiome(*seed, int32(*centerX), int32(*centerZ), int32(*radius), *target)
	result := report.NewBiomeSearch(*seed, *target, match, found)

	if *output == "json" {
		printJSON(result)
		return
	}
	info := gamedata.Biome(*target)
	if kind, ok := finder.ParseBiomeKind(*target); ok {
		info = gamedata.Biome(kind.String())
	}
	if !found {
		fmt.Printf("❌ no %s biome found within %d blocks\n", info.Name, *radius)
		return
	}
	fmt.Printf("%s Nearest %s biome\n", info.Icon, info.Name)
	fmt.Printf("   Position: X=%d, Z=%d\n", match.X, match.Z)
	fmt.Printf("   Distance: %.0f blocks\n", match.Distance)
}

func slimeCmd(args []string) {
	fs := flag.NewFlagSet("slime", flag.ExitOnError)
	centerX := fs.Int("x", 0, "search center X coordinate")
	centerZ := fs.Int("z", 0, "search center Z coordinate")
	radius := fs.Int("radius", 1000, "search radius in blocks")
	output := fs.String("output", "text", "output format (text, json)")
	_ = fs.Parse(args)

	chunks := finder.FindSlimeChunks(int32(*centerX), int32(*centerZ), int32(*radius))
	result := report.NewSlimeSearch(int32(*centerX), int32(*centerZ), int32(*radius), chunks, 0)

	if *output == "json" {
		printJSON(result)
		return
	}
	fmt.Println("🟢 Slime chunk map")
	fmt.Printf("   Center: X=%d, Z=%d\n", result.CenterX, result.CenterZ)
	fmt.Printf("   Radius: %d blocks\n", result.Radius)
	fmt.Println()
	if len(result.SlimeChunks) == 0 {
		fmt.Println("   no slime chunks found")
		return
	}
	for _, c := range result.SlimeChunks {
		fmt.Printf("   🟢 X=%d, Z=%d\n", c.X, c.Z)
	}
}

func serveCmd(args []string) {
	cfg := config.DefaultConfig()

	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP port")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "minecraft-data checkout for display names (optional)")
	fs.IntVar(&cfg.DefaultRadius, "default-radius", cfg.DefaultRadius, "default search radius for jobs")
	fs.IntVar(&cfg.JobQueueSize, "job-queue", cfg.JobQueueSize, "background job queue size")
	configPath := fs.String("config", "", "YAML config file path")
	_ = fs.Parse(args)

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	if cfg.DataDir != "" {
		if err := gamedata.LoadBiomeNames(cfg.DataDir); err != nil {
			log.Warn("load display names", "dir", cfg.DataDir, "error", err)
		}
	}

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Error("open store", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := jobs.NewRunner(st, log, cfg.JobQueueSize, int32(cfg.DefaultRadius))
	runner.Start(ctx)

	srv, err := api.New(cfg, log, st, runner)
	if err != nil {
		log.Error("build server", "error", err)
		os.Exit(1)
	}
	if err := srv.Start(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	runner.Wait()
}

func printStructures(format string, result report.StructureSearch) {
	if format == "json" {
		printJSON(result)
		return
	}
	fmt.Println("🗺️  Structure search")
	fmt.Printf("   Seed: %d\n", result.Seed)
	fmt.Printf("   Center: X=%d, Z=%d\n", result.CenterX, result.CenterZ)
	fmt.Printf("   Radius: %d blocks\n", result.Radius)
	fmt.Println()
	if len(result.Structures) == 0 {
		fmt.Println("   no structures found")
		return
	}
	for _, s := range result.Structures {
		info := gamedata.Structure(s.Type)
		fmt.Printf("   %s %s X=%d, Z=%d (distance: %.0f)\n", info.Icon, info.Name, s.X, s.Z, s.Distance)
	}
}

// requireSeed exits when the named flag was not set explicitly; seed 0 is
// a valid world seed, so the zero value cannot stand in for "missing".
func requireSeed(fs *flag.FlagSet, name string) {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if !set {
		fmt.Fprintln(os.Stderr, "missing -"+name)
		fs.Usage()
		os.Exit(2)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
