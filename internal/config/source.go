package config

type Source struct {
	DataDir          string `env:"DATA_DIR" envDefault:"data" validate:"required"`
	HiddenShopsFile  string `env:"HIDDEN_SHOPS_FILE" envDefault:"hidden_shops.json" validate:"required"`
	MaxParallelReads int    `env:"MAX_PARALLEL_READS" envDefault:"8" validate:"min=1"`
}
