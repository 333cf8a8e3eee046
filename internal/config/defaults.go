package config

const (
	// DefaultSourcePath is where discovery starts when no path argument is given
	DefaultSourcePath = "."
	// DefaultGeneratedFile is the name of the registration file written per package
	DefaultGeneratedFile = "minunit_suites.go"
	// DefaultLogLevel keeps lifecycle logging quiet unless asked for
	DefaultLogLevel = "warn"
	// DefaultConfigFile is read from the working directory when present
	DefaultConfigFile = ".minunit.yaml"
	// DefaultEnvFile is loaded into the environment before anything else
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes every environment override, e.g. MINUNIT_LOG_LEVEL
	EnvPrefix = "MINUNIT"
)

// DefaultPathsToIgnore are the directories skipped when scanning for suites
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"testdata",
	"_examples",
}
