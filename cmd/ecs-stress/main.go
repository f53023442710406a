package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/slabecs/ecs"
)

// fieldLayouts is the pool of component layouts the generator draws from:
// byte-scale field sizes the way real game components mix them.
var fieldLayouts = [][]int{
	{8, 8, 8},
	{8, 8},
	{4},
	{4, 4, 4, 4},
	{2, 2},
	{1},
	{8, 4, 2, 1},
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	componentCount := flag.Int("components", 32, "The number of component types to register.")
	chunkSize := flag.Int("chunk-size", 1024, "Rows per dense storage chunk.")
	churn := flag.Int("churn", 100, "Entities deleted and respawned per update.")
	seed := flag.Int64("seed", 1, "Seed for the layout and signature generator.")
	profileMode := flag.String("profile", "", "Write a pprof profile: cpu or mem.")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		log.Fatalf("unknown profile mode %q", *profileMode)
	}

	log.Println("Starting ECS stress test...")
	rng := rand.New(rand.NewSource(*seed))

	// 1. Set up the world and register generated component layouts. The
	// first component is a marker holding the owning entity's id so the
	// churn loop can pick victims from column data.
	w := ecs.NewWorld(ecs.Config{ChunkSize: *chunkSize})
	marker := w.RegisterComponent(4)
	components := make([]ecs.ComponentID, 0, *componentCount)
	for i := 0; i < *componentCount; i++ {
		layout := fieldLayouts[rng.Intn(len(fieldLayouts))]
		components = append(components, w.RegisterComponent(layout...))
	}

	// 2. Populate the world.
	log.Printf("Populating world with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		spawnRandom(w, rng, marker, components)
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:   *duration,
		Entities:   *entityCount,
		Components: *componentCount + 1,
		ChunkSize:  *chunkSize,
		Churn:      *churn,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	// 3. Run the churn/iterate loop.
	log.Printf("Running churn loop for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			update(w, rng, marker, components, *churn)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.WorldStats = w.CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Churn loop finished.")

	// 4. Print the report.
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// spawnRandom creates an entity with the marker plus 1 to 5 random distinct
// components and stamps the marker with its own id.
func spawnRandom(w *ecs.World, rng *rand.Rand, marker ecs.ComponentID, components []ecs.ComponentID) ecs.EntityID {
	picked := rng.Perm(len(components))[:rng.Intn(min(5, len(components)))+1]
	sig := make([]ecs.ComponentID, 0, len(picked)+1)
	sig = append(sig, marker)
	for _, i := range picked {
		sig = append(sig, components[i])
	}

	e := w.Spawn(sig...)
	self, _ := ecs.FieldOf[uint32](w, e, marker, 0)
	*self = uint32(e)
	return e
}

// update performs one frame: walk every marker column, queue a churn batch
// of deletions while iterating, then flush and respawn.
func update(w *ecs.World, rng *rand.Rand, marker ecs.ComponentID, components []ecs.ComponentID, churn int) {
	cmds := ecs.NewCommands()
	queued := 0

	it := w.NewIter(marker)
	for c := 0; c < it.Len(); c++ {
		for _, id := range ecs.Column[uint32](it, c, 0, 0) {
			if queued < churn && rng.Intn(16) == 0 {
				cmds.Delete(ecs.EntityID(id))
				queued++
			}
		}
	}
	it.Close()
	cmds.Flush(w)

	for i := 0; i < queued; i++ {
		spawnRandom(w, rng, marker, components)
	}
}
