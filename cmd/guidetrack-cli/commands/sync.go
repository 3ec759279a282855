package commands

import (
	"fmt"
	"log/slog"

	"guidetrack-backend/lib/configutil"
	"guidetrack-backend/lib/restyutil"
	"guidetrack-backend/lib/scrapers/guideadmin"
	"guidetrack-backend/lib/serviceutil"
	"guidetrack-backend/lib/sqliteutil"
	"guidetrack-backend/services/guidesync"
	"guidetrack-backend/services/guidesync/db"

	"github.com/dgraph-io/badger/v4"
	"github.com/spf13/cobra"
)

var syncTenant *string
var syncDb *string
var syncIds *string

func init() {
	syncTenant = syncCmd.Flags().String("tenant", "colombia", "The tenant (country) to sync.")
	syncDb = syncCmd.Flags().String("db", "", "Override the database path from config.json5.")
	syncIds = syncCmd.Flags().String("ids", "", "Override the candidate id list path from config.json5.")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync [--tenant <name>] [--db <path>] [--ids <path/to/ids.csv>]",
	Short: "Scrapes every new guide in the candidate list into the local database.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		tenantCfg, ok := cfg.Tenants[*syncTenant]
		if !ok {
			serviceutil.Fatal("tenant not configured", fmt.Errorf("no tenants.%s entry in config.json5", *syncTenant))
		}
		tenant, err := guideadmin.TenantByName(*syncTenant)
		if err != nil {
			serviceutil.Fatal("unknown tenant", err)
		}

		opts := guideadmin.ClientOptions{
			BaseUrl: tenantCfg.BaseUrl,
		}
		if *verbose {
			opts.InstrumentOutput = restyutil.NewFilesystemOutput(".dev/resty/guideadmin")
		}
		if cfg.PageCache != "" {
			cache, err := badger.Open(badger.DefaultOptions(cfg.PageCache))
			if err != nil {
				serviceutil.Fatal("failed to open page cache", err)
			}
			defer cache.Close()
			opts.Cache = cache
		}

		client, err := guideadmin.NewClient(tenant, guideadmin.Session{
			SessionToken: tenantCfg.SessionToken,
			XsrfToken:    tenantCfg.XsrfToken,
		}, opts)
		if err != nil {
			serviceutil.Fatal("failed to initialize admin panel client", err)
		}

		dbPath := cfg.Database
		if *syncDb != "" {
			dbPath = *syncDb
		}
		database, err := sqliteutil.OpenDB(db.Schema, dbPath)
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}
		defer database.Close()

		idsPath := tenantCfg.IdList
		if *syncIds != "" {
			idsPath = *syncIds
		}
		ids, err := guidesync.ReadIDList(idsPath)
		if err != nil {
			serviceutil.Fatal("failed to read candidate id list", err)
		}

		service := guidesync.NewService(database)
		stats, err := service.Sync(cmd.Context(), client, ids)
		if err != nil {
			serviceutil.Fatal("sync aborted", err)
		}

		slog.Info("sync finished",
			"tenant", tenant.Name,
			"candidates", stats.Candidates,
			"already_stored", stats.Filtered,
			"recorded", stats.Recorded,
			"not_ready", stats.NotReady,
			"duplicates", stats.Duplicates,
		)
	},
}
