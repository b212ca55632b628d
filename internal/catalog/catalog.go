// Package catalog defines the static field registries for the two record
// variants (insertion orders and purchase orders).
//
// A catalog is the single source of truth for everything schema-shaped:
// canonical application keys, storage column names, spreadsheet header
// labels, field provenance, value kinds, enum domains, and the required-field
// list used by the importer. Field order is significant and stable: it
// defines the column layout of exports and templates.
package catalog

// Kind is the declared value kind of a field. It drives cell coercion on
// import and cell typing on export.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
	KindURL
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindURL:
		return "url"
	case KindEnum:
		return "enum"
	default:
		return "text"
	}
}

// Provenance says who owns a field's value.
type Provenance int

const (
	// External fields are populated by the upstream feed or storage and are
	// never written through the edit path.
	External Provenance = iota

	// Manual fields are owned by internal teams and writable via edit/merge.
	Manual
)

func (p Provenance) String() string {
	if p == Manual {
		return "manual"
	}
	return "external"
}

// FieldSpec describes one record field.
type FieldSpec struct {
	// Key is the canonical application key, e.g. "CLIENTE".
	Key string

	// Label is the spreadsheet header for this field, e.g. "Cliente".
	Label string

	// Column is the snake_case storage column, e.g. "cliente".
	Column string

	Provenance Provenance
	Kind       Kind

	// EnumValues is the closed domain for KindEnum fields. Values outside
	// the domain are still stored and displayed, just not offered in pickers.
	EnumValues []string

	// Required marks fields the importer rejects rows for when missing.
	Required bool

	// IntColumn marks fields whose application value is a numeric string but
	// whose storage column is an integer. Non-numeric input is written as
	// NULL rather than failing.
	IntColumn bool

	// Width is an advisory column width hint for exports.
	Width float64

	// Placeholder is the example value the import template shows.
	Placeholder any
}

// Catalog is the ordered field registry for one record variant.
type Catalog struct {
	// Variant is the short variant name, "PI" or "PC". It doubles as the
	// identity-key prefix.
	Variant string

	// IDKey is the identity field's application key.
	IDKey string

	// Table is the storage table name.
	Table string

	// Sheet is the worksheet name used by exports.
	Sheet string

	// ExportBase is the filename base for data exports.
	ExportBase string

	// TemplateName is the fixed filename of the import template.
	TemplateName string

	fields  []FieldSpec
	byKey   map[string]int
	byLabel map[string]int
}

func newCatalog(c Catalog, fields []FieldSpec) *Catalog {
	c.fields = fields
	c.byKey = make(map[string]int, len(fields))
	c.byLabel = make(map[string]int, len(fields))
	for i, f := range fields {
		if _, dup := c.byKey[f.Key]; dup {
			panic("catalog: duplicate field key " + f.Key)
		}
		if _, dup := c.byLabel[f.Label]; dup {
			panic("catalog: duplicate field label " + f.Label)
		}
		c.byKey[f.Key] = i
		c.byLabel[f.Label] = i
	}
	if _, ok := c.byKey[c.IDKey]; !ok {
		panic("catalog: identity key " + c.IDKey + " not declared")
	}
	return &c
}

// Fields returns the field specs in catalog order. The slice is a copy.
func (c *Catalog) Fields() []FieldSpec {
	out := make([]FieldSpec, len(c.fields))
	copy(out, c.fields)
	return out
}

// Len returns the number of declared fields.
func (c *Catalog) Len() int { return len(c.fields) }

// ByKey looks up a field by its canonical application key.
func (c *Catalog) ByKey(key string) (FieldSpec, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return FieldSpec{}, false
	}
	return c.fields[i], true
}

// ByLabel looks up a field by its spreadsheet header label.
func (c *Catalog) ByLabel(label string) (FieldSpec, bool) {
	i, ok := c.byLabel[label]
	if !ok {
		return FieldSpec{}, false
	}
	return c.fields[i], true
}

// IDColumn returns the storage column of the identity key.
func (c *Catalog) IDColumn() string {
	f, _ := c.ByKey(c.IDKey)
	return f.Column
}

// Columns returns the storage column names in catalog order.
func (c *Catalog) Columns() []string {
	out := make([]string, len(c.fields))
	for i, f := range c.fields {
		out[i] = f.Column
	}
	return out
}

// Required returns the required fields in catalog order.
func (c *Catalog) Required() []FieldSpec {
	var out []FieldSpec
	for _, f := range c.fields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// InDomain reports whether v is part of a field's declared enum domain.
// Non-enum fields accept everything.
func (f FieldSpec) InDomain(v string) bool {
	if f.Kind != KindEnum {
		return true
	}
	for _, e := range f.EnumValues {
		if e == v {
			return true
		}
	}
	return false
}
