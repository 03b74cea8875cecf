package config

const (
	defaultGrocyTimeoutSeconds  = 30
	defaultGrocyLocationWorkers = 4
	defaultOutputPath           = "_data/menu_auto.yml"
	defaultFridgeLocation       = "Fridge"
	defaultFridgeMarker         = "❄️"
	defaultUnknownCategory      = "Unknown"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	maxLocationWorkers          = 32
)

// DefaultCategories is the reviewed category ordering used when the config
// file does not override it.
var DefaultCategories = []string{
	"Frisdranken",
	"Siropen",
	"Vruchtensappen",
	"Overige alcoholvrije dranken",
	"Bieren",
	"Ciders en lichte dranken",
	"Rode Wijnen",
	"Jenevers",
	"Vodka's",
	"Gins",
	"Likeuren en zoete dranken",
	"Overige sterke dranken",
	"Chips",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	categories := make([]string, len(DefaultCategories))
	copy(categories, DefaultCategories)
	return Config{
		Grocy: Grocy{
			TimeoutSeconds:  defaultGrocyTimeoutSeconds,
			LocationWorkers: defaultGrocyLocationWorkers,
		},
		Menu: Menu{
			OutputPath:      defaultOutputPath,
			Categories:      categories,
			FridgeLocation:  defaultFridgeLocation,
			FridgeMarker:    defaultFridgeMarker,
			UnknownCategory: defaultUnknownCategory,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
