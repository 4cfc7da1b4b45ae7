package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"seffaflik"
	"seffaflik/internal/config"
	"seffaflik/internal/credential"
	"seffaflik/internal/data"
	"seffaflik/internal/model"
	"seffaflik/internal/schema"
	"seffaflik/internal/shape"
	"seffaflik/internal/transparency"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var setupCmd = &cobra.Command{
	Use:   "setup <api-key>",
	Short: "Save the API key to the credentials file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := credential.NewStore(cfg.CredentialsDir)
		if err := store.Write(args[0]); err != nil {
			return err
		}
		fmt.Println(color.GreenString("Saved API key to %s", store.Path()))
		return nil
	},
}

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "List available series and fan-outs.",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return emit(catalogTable())
	},
}

var getCmd = &cobra.Command{
	Use:   "get <series>",
	Short: "Fetch one series.",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *seffaflik.Client) error {
			_, composite := transparency.LookupComposite(args[0])
			if _, ok := c.Endpoint(args[0]); !ok && !composite {
				return fmt.Errorf("unknown series %q (see `seffaflik series`)", args[0])
			}
			q := query()
			q.Entity = viper.GetString("entity")
			q.Period = viper.GetString("period")
			return emit(c.Series(ctx, args[0], q))
		})
	},
}

var allCmd = &cobra.Command{
	Use:   "all <fan-out>",
	Short: "Fetch a series for every organization, plant or balance group.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *seffaflik.Client) error {
			if _, ok := transparency.LookupFanOut(args[0]); !ok {
				return fmt.Errorf("unknown fan-out %q (see `seffaflik series`)", args[0])
			}
			q := query()
			q.Volume, _ = cmd.Flags().GetString("volume-type")
			return emit(c.All(ctx, args[0], q))
		})
	},
}

var rankCmd = &cobra.Command{
	Use:   "rank <fan-out>",
	Short: "Rank the entities of a fan-out by total.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *seffaflik.Client) error {
			f, ok := transparency.LookupFanOut(args[0])
			if !ok {
				return fmt.Errorf("unknown fan-out %q (see `seffaflik series`)", args[0])
			}
			if f.Listing() {
				return fmt.Errorf("fan-out %q lists rows and cannot be ranked", args[0])
			}
			q := query()
			q.Volume, _ = cmd.Flags().GetString("volume-type")
			limit, _ := cmd.Flags().GetInt("limit")
			return emit(rankTable(c.All(ctx, args[0], q), limit))
		})
	},
}

var entitiesCmd = &cobra.Command{
	Use:       "entities <organizations|plants|balance-groups|distributions>",
	Short:     "List organizations, power plants, balance-responsible groups or distribution regions.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: entityKindArgs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := model.EntityKind(args[0])
		if !kind.Valid() {
			return fmt.Errorf("unknown entity kind %q", args[0])
		}
		if fromFile, _ := cmd.Flags().GetBool("from-file"); fromFile {
			list, err := data.LoadEntities(data.DefaultEntitiesPath(kind))
			if err != nil {
				return err
			}
			return emit(entityTable(list.Entities))
		}
		return withClient(func(ctx context.Context, c *seffaflik.Client) error {
			return emit(entityTable(c.Entities(ctx, kind, query())))
		})
	},
}

var shapeCmd = &cobra.Command{
	Use:   "shape <series>",
	Short: "Shape a saved API response without calling the API.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ep, ok := schema.Default().Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown series %q (see `seffaflik series`)", args[0])
		}
		path, _ := cmd.Flags().GetString("file")
		body, err := data.LoadResponseJSON(path)
		if err != nil {
			return err
		}
		t, err := shape.Shape(body, ep)
		if err != nil {
			return err
		}
		return emit(t)
	},
}

// loadConfig reads --config (if any) and overlays flag values.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if path := viper.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg = config.Merge(cfg, &config.Config{
		Workers:  viper.GetInt("workers"),
		LogLevel: viper.GetString("log-level"),
	})
	return cfg, cfg.Validate()
}

func withClient(fn func(ctx context.Context, c *seffaflik.Client) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := seffaflik.New(seffaflik.Options{Config: cfg, APIKey: viper.GetString("api-key")})
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return fn(ctx, c)
}

func query() model.Query {
	return model.Query{Start: viper.GetString("start"), End: viper.GetString("end")}
}
