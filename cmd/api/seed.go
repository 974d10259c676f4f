package main

import (
	"os"

	"github.com/spf13/cobra"

	"zoo-dashboard/internal/adapters/seed"
	"zoo-dashboard/internal/config"
)

var (
	seedFormat string
	seedValue  uint64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Imprime el fixture generado (yaml o json)",
	Long: `Genera el mismo set de datos que carga "serve" al arrancar y lo escribe
en stdout. Mismo --seed produce el mismo fixture en el mismo día.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		value := cfg.Seed.Value
		if cmd.Flags().Changed("seed") {
			value = seedValue
		}

		f := seed.Generate(seed.Config{
			Seed:      value,
			Animals:   cfg.Seed.Animals,
			Resources: cfg.Seed.Resources,
			Reports:   cfg.Seed.Reports,
		})
		return seed.Dump(os.Stdout, f, seedFormat)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFormat, "format", "f", "yaml", "Formato de salida: yaml | json")
	seedCmd.Flags().Uint64Var(&seedValue, "seed", 0, "Semilla del generador (por defecto la de la config)")
	rootCmd.AddCommand(seedCmd)
}
