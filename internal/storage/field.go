package storage

// Kind is the value type held by a schema field.
type Kind int

const (
	KindBool Kind = iota + 1
	KindInt
	KindString
	KindStringList
	KindRef
	KindRefList
	KindEdge
	KindEdgeList
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindStringList:
		return "list<string>"
	case KindRef:
		return "reference"
	case KindRefList:
		return "list<reference>"
	case KindEdge:
		return "edge"
	case KindEdgeList:
		return "list<edge>"
	default:
		return "unknown"
	}
}

// Field binds a named schema entry to the variable that holds its value.
// Fields are built with the typed constructors below so the kind always matches
// the bound variable.
type Field struct {
	Name string
	Kind Kind

	value  any
	stored bool
}

func Bool(name string, p *bool) Field {
	return Field{Name: name, Kind: KindBool, value: p, stored: true}
}

func Int(name string, p *int) Field {
	return Field{Name: name, Kind: KindInt, value: p, stored: true}
}

func String(name string, p *string) Field {
	return Field{Name: name, Kind: KindString, value: p, stored: true}
}

func Strings(name string, p *[]string) Field {
	return Field{Name: name, Kind: KindStringList, value: p, stored: true}
}

func Reference(name string, p *Ref) Field {
	return Field{Name: name, Kind: KindRef, value: p, stored: true}
}

func References(name string, p *[]Ref) Field {
	return Field{Name: name, Kind: KindRefList, value: p, stored: true}
}

func EdgeOf(name string, p *Edge) Field {
	return Field{Name: name, Kind: KindEdge, value: p, stored: true}
}

func Edges(name string, p *[]Edge) Field {
	return Field{Name: name, Kind: KindEdgeList, value: p, stored: true}
}

// Unstored returns a copy of f that is skipped by serialization and copying.
func (f Field) Unstored() Field {
	f.stored = false
	return f
}

func (f Field) IsStored() bool {
	return f.stored
}

// Schema is the ordered list of fields an entity exposes.
type Schema []Field

// Stored returns the fields that take part in serialization, in schema order.
func (s Schema) Stored() Schema {
	stored := make(Schema, 0, len(s))
	for _, f := range s {
		if f.stored {
			stored = append(stored, f)
		}
	}
	return stored
}

// Lookup returns the field called name.
func (s Schema) Lookup(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
