package mindmap

// Record is one item of knowledge-base content: a text section under a
// category, a structured sub-entity, or a record related to one.
type Record struct {
	ID     string            `json:"id" yaml:"id" validate:"required,recordid"`
	Title  string            `json:"title" yaml:"title"`
	Kind   string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Fields map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Group is a category branch of grouped text sections.
type Group struct {
	Key   string   `json:"key" yaml:"key" validate:"required"`
	Label string   `json:"label,omitempty" yaml:"label,omitempty"`
	Items []Record `json:"items,omitempty" yaml:"items,omitempty" validate:"dive"`
}

// SubEntity is a structured record under a domain, with its own related
// records forming the third level.
type SubEntity struct {
	ID      string            `json:"id" yaml:"id" validate:"required,recordid"`
	Title   string            `json:"title" yaml:"title"`
	Kind    string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Fields  map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
	Related []Record          `json:"related,omitempty" yaml:"related,omitempty" validate:"dive"`
}

// DomainGroup is a domain branch of grouped sub-entities.
type DomainGroup struct {
	Key      string      `json:"key" yaml:"key" validate:"required"`
	Label    string      `json:"label,omitempty" yaml:"label,omitempty"`
	Entities []SubEntity `json:"entities,omitempty" yaml:"entities,omitempty" validate:"dive"`
}

// EntityData is the rooted entity and everything reachable from it.
type EntityData struct {
	ID         string        `json:"id" yaml:"id" validate:"required,recordid"`
	Name       string        `json:"name" yaml:"name" validate:"required"`
	Kind       string        `json:"kind,omitempty" yaml:"kind,omitempty"`
	Categories []Group       `json:"categories,omitempty" yaml:"categories,omitempty" validate:"dive"`
	Domains    []DomainGroup `json:"domains,omitempty" yaml:"domains,omitempty" validate:"dive"`
}

// Node ids are derived from the input so they stay stable across rebuilds.

func categoryID(key string) string       { return "category:" + key }
func itemID(key, id string) string       { return categoryID(key) + ":item:" + id }
func domainID(key string) string         { return "domain:" + key }
func subEntityID(key, id string) string  { return domainID(key) + ":entity:" + id }
func relatedID(parent, id string) string { return parent + ":related:" + id }

// ExpandableIDs returns the id of every node of e that has children, in
// build order.
func ExpandableIDs(e EntityData) []string {
	ids := make([]string, 0)
	for _, g := range e.Categories {
		if len(g.Items) > 0 {
			ids = append(ids, categoryID(g.Key))
		}
	}
	for _, d := range e.Domains {
		if len(d.Entities) > 0 {
			ids = append(ids, domainID(d.Key))
		}
		for _, s := range d.Entities {
			if len(s.Related) > 0 {
				ids = append(ids, subEntityID(d.Key, s.ID))
			}
		}
	}
	return ids
}
