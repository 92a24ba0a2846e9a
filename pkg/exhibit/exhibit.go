package exhibit

// Wing is one themed hall of the museum. A wing carries a markdown placard
// and an ordered list of charts to hang.
type Wing struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Tagline string `json:"tagline,omitempty" yaml:"tagline,omitempty"`

	// Order fixes the wing's place in the tour; lower comes first.
	Order int `json:"order" yaml:"order"`

	// Intro holds the wing's markdown placard, shown before its charts.
	Intro string `json:"intro,omitempty" yaml:"intro,omitempty"`

	Charts []ChartRef `json:"charts" yaml:"charts"`
}

// ChartRef names a generator together with the parameters to run it with.
// Params is kept raw here; the generator decodes it into its own typed
// parameters when the chart is built.
type ChartRef struct {
	ID        string         `json:"id" yaml:"id"`
	Title     string         `json:"title,omitempty" yaml:"title,omitempty"`
	Generator string         `json:"generator" yaml:"generator"`
	Params    map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
	Caption   string         `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// ChartByID returns the wing's chart with the given id.
func (w Wing) ChartByID(id string) (ChartRef, bool) {
	for _, c := range w.Charts {
		if c.ID == id {
			return c, true
		}
	}
	return ChartRef{}, false
}

// Clade is a node of the museum's simplified tree of life.
type Clade struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Traits lists convergent traits this lineage evolved independently
	// of its cousins.
	Traits []string `json:"traits,omitempty" yaml:"traits,omitempty"`

	Children []Clade `json:"children,omitempty" yaml:"children,omitempty"`
}

// Find returns the clade with the given id in this subtree.
func (c Clade) Find(id string) (Clade, bool) {
	if c.ID == id {
		return c, true
	}
	for _, child := range c.Children {
		if found, ok := child.Find(id); ok {
			return found, true
		}
	}
	return Clade{}, false
}

// WithTrait returns the ids of every clade in this subtree carrying the
// trait, in depth-first order.
func (c Clade) WithTrait(trait string) []string {
	var ids []string
	for _, t := range c.Traits {
		if t == trait {
			ids = append(ids, c.ID)
			break
		}
	}
	for _, child := range c.Children {
		ids = append(ids, child.WithTrait(trait)...)
	}
	return ids
}
