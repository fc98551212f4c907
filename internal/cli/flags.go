package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputPath string
	Format     string
	InputFile  string
	Archive    bool

	// Word lookup flags
	Check  string
	Random int
	Seed   int64
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputPath: "words.csv",
		Format:     "csv",
	}
}
