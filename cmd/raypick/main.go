package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lazytiger/umath"
	"github.com/lazytiger/umath/format"
	"github.com/lazytiger/umath/log"
)

func main() {
	os.Exit(realMain())
}

// realMain keeps the deferred logger sync and signal cleanup ahead of os.Exit.
func realMain() int {
	scene := flag.String("scene", "", "scene file, .yaml or .gob")
	gobOut := flag.String("gob", "", "also write the scene as gob to this file")
	level := flag.String("level", "info", "log level: debug, info, warn, error")
	workers := flag.Int("workers", 0, "concurrent ray workers, 0 uses GOMAXPROCS")
	flag.Parse()

	logger := log.New(log.ParseLevel(*level))
	defer logger.Sync()

	if *scene == "" {
		flag.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, logger, *scene, *gobOut, *workers); err != nil {
		logger.Error("raypick failed", log.String("scene", *scene), log.Error(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, logger log.Log, scene, gobOut string, workers int) error {
	data, err := format.LoadFromFile(scene)
	if err != nil {
		return err
	}
	hash, err := data.Hash()
	if err != nil {
		return err
	}
	logger = logger.With(log.Uint64("scene_hash", hash))

	if gobOut != "" {
		if err := format.SaveToGobFile(data, gobOut); err != nil {
			return fmt.Errorf("write %s: %w", gobOut, err)
		}
		logger.Info("scene written", log.String("file", gobOut))
	}

	picker, err := umath.NewPickerFromData(data, umath.WithLogger(logger), umath.WithWorkers(workers))
	if err != nil {
		return err
	}

	planes := picker.Planes()
	for _, p := range planes {
		if p.Plane.Normal().IsZero() {
			logger.Warn("plane normal is zero, no ray can hit it", log.String("plane", p.Name))
		} else if !p.Plane.IsNormalized() {
			logger.Warn("plane normal is not unit length, distance is scaled", log.String("plane", p.Name), log.Stringer("normal", p.Plane.Normal()))
		}
	}

	rays := umath.NewRaysFromData(data)
	start := time.Now()
	hits, err := picker.RaycastAll(ctx, rays)
	if err != nil {
		return err
	}

	hitCount := 0
	for i := range hits {
		if hits[i].Hit() {
			hitCount++
			fmt.Printf("ray %d: hit plane %s t=%g distance=%g point=%v\n", i, hits[i].GetName(), hits[i].GetT(), hits[i].GetDistance(), hits[i].GetPoint())
		} else {
			fmt.Printf("ray %d: no intersection\n", i)
		}
	}
	logger.Info("rays cast",
		log.Int("planes", len(planes)),
		log.Int("rays", len(rays)),
		log.Int("hits", hitCount),
		log.Duration("elapsed", time.Since(start)),
	)
	if bounds := hitBounds(hits); bounds.IsValid() {
		logger.Info("hit bounds", log.Stringer("min", bounds.Min()), log.Stringer("max", bounds.Max()))
	}
	return nil
}

// hitBounds is inverted (not IsValid) when no ray hit anything.
func hitBounds(hits []umath.PickHit) umath.MinMaxAABB {
	bounds := umath.NewEmptyMinMaxAABB()
	for i := range hits {
		if hits[i].Hit() {
			bounds = bounds.Encapsulate(hits[i].GetPoint())
		}
	}
	return bounds
}
