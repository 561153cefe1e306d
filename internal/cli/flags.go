package cli

// Output formats of the analyze command
const (
	FormatTerminal = "term"
	FormatHTML     = "html"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Verbose    bool
	DBDriver   string
	SQLitePath string
	WordChars  string

	// Language flags
	Foreign string
	Native  string

	// Analyze flags
	Format string
	Output string

	// Words flags
	At int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Format: FormatTerminal,
		At:     -1,
	}
}
