package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/redmage123/course-creator-sub021/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		courses          = flag.Int("courses", cfg.NumCourses, "number of courses to generate")
		edgesPerCourse   = flag.Int("edges-per-course", cfg.EdgesPerCourse, "maximum prerequisite edges per course")
		skipTierChance   = flag.Float64("skip-tier-chance", cfg.SkipTierChance, "probability an edge skips a difficulty tier")
		unweightedChance = flag.Float64("unweighted-chance", cfg.UnweightedChance, "probability an edge carries no explicit weight")
		seed             = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		outputDir        = flag.String("output-dir", "data", "directory to write catalog.json")
		writeStdout      = flag.Bool("stdout", false, "write the catalog to stdout instead of a file")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumCourses:       *courses,
		EdgesPerCourse:   *edgesPerCourse,
		SkipTierChance:   clampProbability(*skipTierChance),
		UnweightedChance: clampProbability(*unweightedChance),
		Seed:             *seed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(genCfg)
	catalog, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *writeStdout {
		if err := json.NewEncoder(os.Stdout).Encode(catalog); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write catalog to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteCatalog(catalog, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d courses and %d prerequisites into %s\n",
		len(catalog.Courses), len(catalog.Prerequisites), *outputDir)
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
