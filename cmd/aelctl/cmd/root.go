package cmd

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/ael-launcher/catalog/pkg/aelapi"
	"github.com/ael-launcher/catalog/pkg/clog"
	"github.com/ael-launcher/catalog/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	host      string
	port      int
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "aelctl",
	Short: "Query and update the AEL catalog",
	Long: `aelctl talks to the AEL catalog server. Every query prints the JSON the server
returned, every store reads the body to post from a JSON file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupConfigAndLogging()
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
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $AEL_DOTENV_PATH or ~/.ael/catalog.env)")
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "catalog host, overrides AEL_HOST")
	rootCmd.PersistentFlags().IntVar(&port, "port", 0, "catalog port, overrides AEL_PORT")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides AEL_LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json, cli), overrides AEL_LOG_FORMAT")
}

func setupConfigAndLogging() error {
	var c config.Configer
	if cfgFile != "" {
		vc := config.NewViperConfig(cfgFile)
		if err := vc.Load(); err != nil {
			return err
		}
		c = vc
	} else {
		c = config.MustLoadFromAELDotenv()
	}

	config.SetConfig(c)

	level := logLevel
	if level == "" {
		level = c.GetKeyWithDefault(config.KeyLogLevel, "warn")
	}

	format := logFormat
	if format == "" {
		format = c.GetKeyWithDefault(config.KeyLogFormat, "cli")
	}

	return clog.Configure(format, level, os.Stderr)
}

func newClient() *aelapi.Client {
	c := config.GetConfig()

	h := host
	if h == "" {
		h = c.GetKeyWithDefault(config.KeyHost, config.DefaultHost)
	}

	p := port
	if p == 0 {
		p = c.GetIntKeyWithDefault(config.KeyPort, config.DefaultPort)
	}

	timeout := c.GetIntKeyWithDefault(config.KeyTimeoutSeconds, config.DefaultTimeoutSeconds)
	client := aelapi.NewClient(h, p, clog.UsingCtx(clog.ClientCtx)).
		SetTimeout(time.Duration(timeout) * time.Second)

	clog.Global().Debugf("Using catalog at %s", client.BaseURL())
	return client
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
