package commands

import (
	"os"

	"guidetrack-backend/lib/configutil"
	"guidetrack-backend/lib/serviceutil"
	"guidetrack-backend/lib/sqliteutil"
	"guidetrack-backend/lib/timezone"
	"guidetrack-backend/services/guidesync"
	"guidetrack-backend/services/guidesync/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var ordersDb *string
var ordersLimit *int64

func init() {
	ordersDb = ordersCmd.Flags().String("db", "", "Override the database path from config.json5.")
	ordersLimit = ordersCmd.Flags().Int64("limit", 50, "How many of the most recent orders to show.")
	rootCmd.AddCommand(ordersCmd)
}

var ordersCmd = &cobra.Command{
	Use:   "orders [--db <path>] [--limit <n>]",
	Short: "Prints the most recently stored orders.",
	Run: func(cmd *cobra.Command, args []string) {
		dbPath := *ordersDb
		if dbPath == "" {
			cfg, err := configutil.ReadConfig[Config]("config.json5")
			if err != nil {
				serviceutil.Fatal("failed to read config", err)
			}
			dbPath = cfg.Database
		}

		database, err := sqliteutil.OpenDB(db.Schema, dbPath)
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}
		defer database.Close()

		service := guidesync.NewService(database)
		orders, err := service.Orders(cmd.Context(), *ordersLimit)
		if err != nil {
			serviceutil.Fatal("failed to list orders", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Id", "Status", "Guide", "Created", "Carrier", "Store", "Tenant"})
		for _, order := range orders {
			created := ""
			if order.CreatedAt.Valid {
				created = timezone.RenderTime(order.CreatedAt.Int64)
			}
			t.AppendRow(table.Row{
				order.ID,
				order.Status,
				order.GuideNumber,
				created,
				order.Carrier,
				order.Store,
				order.Tenant,
			})
		}
		t.Render()
	},
}
