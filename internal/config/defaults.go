package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestBasePath is the default base directory for test suites
	DefaultTestBasePath = "test/integration"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "verify-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultWorkers is the default number of parallel suite workers
	DefaultWorkers = 2
	// DefaultRunnerBinary is the compliance runner executable
	DefaultRunnerBinary = "inspec"
	// DefaultProjectFile is the project configuration file name
	DefaultProjectFile = "cvr.yaml"
	// DefaultSuiteName is used when the project declares no suites
	DefaultSuiteName = "default"
	// EnvFileName is the dotenv file loaded for credentials
	EnvFileName = ".env"
)

// DefaultReservedDirs are first-level suite subdirectories that hold fixture
// data rather than tests; files under them are excluded from suite discovery.
var DefaultReservedDirs = []string{"data", "data_bags", "environments", "nodes", "roles"}
