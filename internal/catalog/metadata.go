package catalog

// wingMeta represents the frontmatter header of a wing file.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type wingMeta struct {
	ID      string      `mapstructure:"id"`
	Title   string      `mapstructure:"title"`
	Tagline string      `mapstructure:"tagline"`
	Order   int         `mapstructure:"order"`
	Charts  []chartMeta `mapstructure:"charts"`
}

type chartMeta struct {
	ID        string         `mapstructure:"id"`
	Title     string         `mapstructure:"title"`
	Generator string         `mapstructure:"generator"`
	Params    map[string]any `mapstructure:"params"`
	Caption   string         `mapstructure:"caption"`
}
