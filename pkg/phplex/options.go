package phplex

// Options selects tokenizer behavior. It is passed explicitly to every
// Tokenize call; the lexer keeps no process-wide mode.
type Options struct {
	// ShortOpenTag makes a bare "<?" open a PHP section, matching the
	// short_open_tag ini setting of older PHP deployments.
	ShortOpenTag bool `yaml:"short_open_tag" toml:"short_open_tag"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{}
}
