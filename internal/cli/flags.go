package cli

import "github.com/minunit/minunit/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile  string
	LogLevel    string
	NoColor     bool
	Progress    bool
	Interactive bool
	Output      string
	TestCases   bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		LogLevel:    f.LogLevel,
		NoColor:     f.NoColor,
		Progress:    f.Progress,
		Interactive: f.Interactive,
		Output:      f.Output,
		TestCases:   f.TestCases,
	}
}
