package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/config"
	"github.com/artem13815/recruit/pkg/logger"
)

const appName = "recruit"

var rootCmd = &cobra.Command{
	Use:          appName,
	Short:        "recruit is the recruiting back-office service",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	// flags win over LOG_JSON / LOG_DEBUG
	if err := viper.BindPFlag("LOG_DEBUG", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Fatalf("binding debug flag: %v", err)
	}
	if err := viper.BindPFlag("LOG_JSON", rootCmd.PersistentFlags().Lookup("json")); err != nil {
		log.Fatalf("binding json flag: %v", err)
	}
}

// setup loads the configuration and builds the process logger.
func setup() (config.Config, *zap.Logger) {
	cfg := config.Load(viper.GetViper())
	l, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return cfg, l
}
