package codegen

const (
	DEFAULT_MEMORY_SIZE = 16  // Default cells in the indirect memory block.
	MEMORY_LIMIT        = 256 // Every address must be selectable by a byte.
)

// Config holds the assembly time code generation settings.
type Config struct {
	MemorySize int // Cells in the indirect memory block.
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MemorySize: DEFAULT_MEMORY_SIZE,
	}
}

// Validate checks the configuration bounds.
func (cfg Config) Validate() error {
	if cfg.MemorySize < 1 || cfg.MemorySize > MEMORY_LIMIT {
		return ErrMemorySize
	}
	return nil
}
