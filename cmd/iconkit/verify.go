package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/iconkit/pkg/iconset"
)

var errVerifyFailed = errors.New("icon tree verification failed")

func newVerifyCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [library...]",
		Short: "Resolve every indexed icon of every variant",
		Long: `verify loads the index of each variant and resolves every listed icon,
reporting broken indexes and missing icon resources. All libraries are
checked when none are named.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, load, func(a *app) error {
				keys := args
				if len(keys) == 0 {
					for _, e := range a.catalog.Entries() {
						keys = append(keys, e.Key)
					}
				}

				out := cmd.OutOrStdout()
				failed := 0
				for _, key := range keys {
					start := time.Now()
					count, err := verifyLibrary(cmd, a, key)
					if err != nil {
						failed++
						fmt.Fprintf(out, "%s %s: %v\n", failColor.Sprint("FAIL"), key, err)
						continue
					}
					fmt.Fprintf(out, "%s %s %s\n", successColor.Sprint("ok  "), key,
						mutedColor.Sprintf("(%d icons, %s)", count, time.Since(start).Round(time.Millisecond)))
				}

				if failed > 0 {
					return fmt.Errorf("%w: %d of %d libraries", errVerifyFailed, failed, len(keys))
				}
				return nil
			})
		},
	}
}

// verifyLibrary preloads every variant of key and returns the icon count.
func verifyLibrary(cmd *cobra.Command, a *app, key string) (int, error) {
	p, err := a.catalog.Provider(key)
	if err != nil {
		return 0, err
	}

	vp, ok := p.(iconset.VariantProvider)
	if !ok {
		icons, err := p.PreloadAll(cmd.Context())
		return len(icons), err
	}

	total := 0
	for _, suffix := range vp.Suffixes() {
		icons, err := vp.PreloadVariant(cmd.Context(), suffix)
		if err != nil {
			return total, fmt.Errorf("variant %s: %w", suffix, err)
		}
		total += len(icons)
	}
	return total, nil
}
