package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"pet-adoption/internal/config"
	"pet-adoption/internal/domain/profiles"
	"pet-adoption/internal/router"
)

// reconcile re-propaga nombre e imagen del perfil guardado a todas sus copias.
// Sirve para reintentar las fallas que reportó un PATCH /me/profile.
func newReconcileCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Re-propaga el perfil de un usuario a publicaciones y threads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := cfg.Logger()
			defer syncLogger(log)

			b, err := openBackend(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer b.Close()

			// Mismo cache que la API para que la invalidación llegue al catálogo compartido
			cache, err := newCatalogCache(cfg, log)
			if err != nil {
				return err
			}
			defer closeCache(cache, log)

			svcs := router.NewServices(router.NewStores(b.db, b.kv), router.ServiceOptions{
				Policy:               cfg.StorePolicy(),
				Logger:               log,
				Cache:                cache,
				CacheTTL:             cfg.CatalogCacheTTL,
				ReconcileConcurrency: cfg.ReconcileConcurrency,
			})

			p, report, err := svcs.Profiles.Reconcile(cmd.Context(), userID)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "profile %s (%q): %d updated, %d failed\n", p.UserID, p.DisplayName, report.Succeeded, len(report.Failed))
			printFailures(os.Stdout, report)
			if !report.OK() {
				return fmt.Errorf("reconcile finished with %d failures", len(report.Failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Email del usuario a reconciliar")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func printFailures(w io.Writer, report profiles.Report) {
	if len(report.Failed) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Kind", "ID", "Reason"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for i, f := range report.Failed {
		table.Append([]string{strconv.Itoa(i + 1), f.Kind, f.ID, f.Reason})
	}
	table.Render()
}
