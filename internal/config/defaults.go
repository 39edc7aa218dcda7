package config

const (
	defaultConfigPath     = "~/.config/bioconvert/config.toml"
	defaultToolsDir       = "~/.local/share/bioconvert/bin"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultMethod         = "biogo"
	defaultSquizzBinary   = "squizz"
	defaultGoalignBinary  = "goalign"
	defaultInstallTimeout = 600
)

// Methods lists the conversion method names accepted in configuration.
var Methods = []string{"biogo", "squizz", "goalign"}

// Alphabets lists the accepted alphabet hints. The empty hint disables
// residue validation.
var Alphabets = []string{"dna", "rna", "protein"}

func defaultGoalignInstall() []string {
	return []string{"go", "install", "github.com/evolbioinfo/goalign@latest"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ToolsDir: defaultToolsDir,
		},
		Conversion: Conversion{
			DefaultMethod: defaultMethod,
		},
		Tools: Tools{
			SquizzBinary:   defaultSquizzBinary,
			GoalignBinary:  defaultGoalignBinary,
			GoalignInstall: defaultGoalignInstall(),
			InstallTimeout: defaultInstallTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
