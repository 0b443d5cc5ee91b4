package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ael-launcher/catalog/pkg/aelstub"
	"github.com/ael-launcher/catalog/pkg/clog"
	"github.com/ael-launcher/catalog/pkg/config"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "aelstubd",
	Short: "Run a stand-in AEL catalog server",
	Long: `aelstubd answers the catalog routes from a local store. Set AEL_STUB_DB_DRIVER to
sqlite or mysql (with AEL_STUB_DB_DSN) to persist, otherwise everything is kept in memory.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := loadConfig()
		config.SetConfig(c)

		if err := clog.Configure(c.GetKey(config.KeyLogFormat), c.GetKeyWithDefault(config.KeyLogLevel, "info"), os.Stderr); err != nil {
			clog.Global().Fatalf("Invalid logging configuration: %s", err)
		}

		stor := setupStor(c)
		server := aelstub.NewServer(stor, clog.UsingCtx(clog.StubCtx))

		go func() {
			address := ":" + c.GetKeyWithDefault(config.KeyStubPort, "9876")
			if err := server.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
				clog.Global().Fatalf("Unable to start server: %v", err)
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			clog.Global().Errorf("Shutdown failed: %s", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $AEL_DOTENV_PATH or ~/.ael/catalog.env)")
}

func loadConfig() config.Configer {
	if cfgFile == "" {
		return config.MustLoadFromAELDotenv()
	}

	c := config.NewViperConfig(cfgFile)
	if err := c.Load(); err != nil {
		clog.Global().Fatalf("Failed loading configuration file %s: %s", cfgFile, err)
	}

	return c
}

func setupStor(c config.Configer) aelstub.CatalogStor {
	driver := c.GetKey(config.KeyStubDBDriver)
	if driver == "" {
		clog.Global().Infof("Using in-memory catalog")
		return aelstub.NewInMemoryCatalogStor()
	}

	db := aelstub.MustConnectToDB(driver, c.MustGetKey(config.KeyStubDBDSN))
	if err := aelstub.CreateTables(db); err != nil {
		clog.Global().Fatalf("Unable to create tables: %s", err)
	}

	clog.Global().Infof("Using %s catalog", driver)
	return aelstub.NewGormCatalogStor(db)
}
