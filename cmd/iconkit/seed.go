package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/iconkit/pkg/resource"
)

var errSeedFromRedis = errors.New("seed-redis needs a non-redis --source")

func newSeedRedisCmd(load configLoader) *cobra.Command {
	var (
		redisURL string
		prefix   string
	)
	cmd := &cobra.Command{
		Use:   "seed-redis",
		Short: "Copy every resource of the source icon tree into redis",
		Long: `seed-redis reads all resources of --source (embed, dir or s3) and stores
them in redis under the configured prefix, so other instances can run with
--source=redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if cfg.Source == sourceRedis {
				return errSeedFromRedis
			}
			if redisURL != "" {
				cfg.Redis.URL = redisURL
			}
			if prefix != "" {
				cfg.RedisPrefix = prefix
			}

			a := &app{cfg: cfg, log: newLogger(cfg, cmd.ErrOrStderr())}
			defer a.Close()

			src, err := a.openStore(cmd.Context(), cfg.Source)
			if err != nil {
				return err
			}
			client, err := a.connectRedis(cmd.Context())
			if err != nil {
				return err
			}

			start := time.Now()
			dst := resource.NewRedisStore(client, resource.WithRedisPrefix(cfg.RedisPrefix))
			n, err := dst.Seed(cmd.Context(), src)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d resources from %s into %s %s\n",
				successColor.Sprint("seeded"), n, cfg.Source, keyColor.Sprint(cfg.RedisPrefix+"*"),
				mutedColor.Sprintf("(%s)", time.Since(start).Round(time.Millisecond)))
			return nil
		},
	}
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "redis URL (env ICONKIT_REDIS_URL)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "key prefix (env ICONKIT_REDIS_PREFIX)")
	return cmd
}
