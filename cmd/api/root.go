package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "zoo-api",
	Short: "API del panel de administración del zoológico",
	Long: `zoo-api sirve el backend del dashboard: animales, recursos, reportes,
métricas derivadas y una sesión de demo. Sin subcomando equivale a "serve".`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute corre el comando raíz. Lo llama main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", envOr("CONFIG_FILE", "config.yaml"), "Archivo YAML de configuración (opcional)")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
