package mindmap

// Style is the colour and icon of a branch family member.
type Style struct {
	Color string `yaml:"color" json:"color"`
	Icon  string `yaml:"icon" json:"icon"`
}

// Palette maps entity, category and domain kinds to their style.
type Palette struct {
	Entity     map[string]Style `yaml:"entity"`
	Categories map[string]Style `yaml:"categories"`
	Domains    map[string]Style `yaml:"domains"`
	Default    Style            `yaml:"default"`
}

// DefaultPalette returns the knowledge-base vocabulary.
func DefaultPalette() Palette {
	return Palette{
		Entity: map[string]Style{
			"condition":    {Color: "#dc2626", Icon: "activity"},
			"intervention": {Color: "#16a34a", Icon: "heart-pulse"},
			"scripture":    {Color: "#7c3aed", Icon: "book-open"},
			"recipe":       {Color: "#ea580c", Icon: "chef-hat"},
		},
		Categories: map[string]Style{
			"overview":     {Color: "#2563eb", Icon: "info"},
			"symptoms":     {Color: "#dc2626", Icon: "thermometer"},
			"causes":       {Color: "#9333ea", Icon: "git-branch"},
			"risk_factors": {Color: "#f59e0b", Icon: "alert-triangle"},
			"diagnosis":    {Color: "#0891b2", Icon: "stethoscope"},
			"treatment":    {Color: "#16a34a", Icon: "pill"},
			"prevention":   {Color: "#65a30d", Icon: "shield"},
			"prognosis":    {Color: "#475569", Icon: "trending-up"},
		},
		Domains: map[string]Style{
			"interventions": {Color: "#16a34a", Icon: "heart-pulse"},
			"conditions":    {Color: "#dc2626", Icon: "activity"},
			"scriptures":    {Color: "#7c3aed", Icon: "book-open"},
			"egw_writings":  {Color: "#a16207", Icon: "feather"},
			"recipes":       {Color: "#ea580c", Icon: "chef-hat"},
			"evidence":      {Color: "#0284c7", Icon: "flask-conical"},
		},
		Default: Style{Color: "#6b7280", Icon: "circle"},
	}
}

func (p Palette) lookup(m map[string]Style, kind string) Style {
	if s, ok := m[kind]; ok {
		return s
	}
	return p.Default
}

// EntityStyle returns the style of the rooted entity.
func (p Palette) EntityStyle(kind string) Style { return p.lookup(p.Entity, kind) }

// CategoryStyle returns the style of a category branch.
func (p Palette) CategoryStyle(key string) Style { return p.lookup(p.Categories, key) }

// DomainStyle returns the style of a domain branch.
func (p Palette) DomainStyle(key string) Style { return p.lookup(p.Domains, key) }
