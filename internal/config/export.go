package config

type Export struct {
	OutputFile string `env:"OUTPUT_FILE" envDefault:"web/output.json" validate:"required"`
	Pretty     bool   `env:"OUTPUT_PRETTY" envDefault:"false"`
}
