package cli

// Flags holds all command-line flag values
type Flags struct {
	CfgFile   string
	OutputDir string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir: DefaultOutputDir(),
	}
}
