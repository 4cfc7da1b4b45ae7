// Command update-entities refreshes the organization, power plant,
// balance-group and distribution-region snapshots used by `seffaflik entities --from-file` and the
// API's source=file mode.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"seffaflik"
	"seffaflik/internal/config"
	"seffaflik/internal/data"
	"seffaflik/internal/model"

	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit.
func run() int {
	configPath := flag.String("config", "", "Path to YAML config file")
	date := flag.String("date", "", "Reference date YYYY-MM-DD for date-scoped lists (default: today)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logrus.WithError(err).Error("Failed to load config")
			return 1
		}
		cfg = loaded
	}
	log := cfg.NewLogger(os.Stderr)

	client, err := seffaflik.New(seffaflik.Options{Config: cfg, Logger: log})
	if err != nil {
		log.WithError(err).Error("Failed to create client")
		return 1
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !refresh(ctx, client, log, model.Query{Start: *date, End: *date}) {
		return 1
	}
	return 0
}

type entityLister interface {
	Entities(ctx context.Context, kind model.EntityKind, q model.Query) []model.Entity
}

// refresh saves a snapshot of every entity kind and reports whether all of
// them succeeded.
func refresh(ctx context.Context, client entityLister, log logrus.FieldLogger, q model.Query) bool {
	ok := true
	for _, kind := range model.EntityKinds {
		entities := client.Entities(ctx, kind, q)
		klog := log.WithField("kind", kind)
		if len(entities) == 0 {
			// keep the previous snapshot rather than overwrite it with nothing
			klog.Warn("No entities returned; snapshot left unchanged")
			ok = false
			continue
		}
		path := data.DefaultEntitiesPath(kind)
		list := &data.EntityList{Kind: kind, UpdatedAt: time.Now().UTC().Format(time.RFC3339), Entities: entities}
		if err := data.SaveEntities(list, path); err != nil {
			klog.WithError(err).Error("Failed to save snapshot")
			ok = false
			continue
		}
		klog.WithFields(logrus.Fields{"count": len(entities), "path": path}).Info("Snapshot updated")
	}
	return ok
}
