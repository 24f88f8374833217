// cmd/splitoct-server: HTTP tool server for split-octonion arithmetic
//
// Exposes splitoct tools as an HTTP endpoint for AI agent frameworks.
//
// Usage:
//
//	splitoct-server --port 8080 --log-level debug
//	SPLITOCT_TIMEOUT=30s splitoct-server
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides: --log-level is read from
// SPLITOCT_LOG_LEVEL when not given on the command line.
const envPrefix = "SPLITOCT"

type options struct {
	port        int
	maxBody     int64
	timeout     time.Duration
	maxInflight int
	logLevel    string
	logFormat   string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:           "splitoct-server",
		Short:         "Serve split-octonion arithmetic as JSON tool calls",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(vip, cmd.Flags())
			if err != nil {
				return err
			}
			log, err := newLogger(opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			return serve(log, opts)
		},
	}
	cmd.Flags().Int("port", 8080, "Port to listen on")
	cmd.Flags().Int64("max-body", 1<<20, "Maximum request body size in bytes")
	cmd.Flags().Duration("timeout", 10*time.Second, "Maximum time spent on one tool call")
	cmd.Flags().Int("max-inflight", 16, "Maximum number of tool calls evaluated at once")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().String("log-format", "text", "Log format (text, json)")
	return cmd
}

// loadOptions resolves every flag through vip. A flag given on the command
// line wins over its environment variable, which wins over the default.
func loadOptions(vip *viper.Viper, fs *pflag.FlagSet) (*options, error) {
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	if err := vip.BindPFlags(fs); err != nil {
		return nil, err
	}

	opts := &options{
		port:        vip.GetInt("port"),
		maxBody:     vip.GetInt64("max-body"),
		timeout:     vip.GetDuration("timeout"),
		maxInflight: vip.GetInt("max-inflight"),
		logLevel:    vip.GetString("log-level"),
		logFormat:   vip.GetString("log-format"),
	}
	switch {
	case opts.port < 1 || opts.port > 65535:
		return nil, fmt.Errorf("invalid port %q", vip.GetString("port"))
	case opts.maxBody <= 0:
		return nil, fmt.Errorf("invalid max-body %q", vip.GetString("max-body"))
	case opts.timeout <= 0:
		return nil, fmt.Errorf("invalid timeout %q", vip.GetString("timeout"))
	case opts.maxInflight <= 0:
		return nil, fmt.Errorf("invalid max-inflight %q", vip.GetString("max-inflight"))
	}
	return opts, nil
}

func newLogger(level, format string) (*logrus.Logger, error) {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log, nil
}
