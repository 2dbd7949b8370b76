package typeexpr

import "strings"

// Kind tags the variant held by a Type.
type Kind int

const (
	KindVoid Kind = iota
	KindUnknown
	KindScalar
	KindReference
	KindArray
	KindInline
)

// Scalar and marker names as they appear in rendered type expressions.
const (
	Void    = "void"
	Unknown = "any"
	String  = "string"
	Number  = "number"
	Boolean = "boolean"
)

// Type is a canonical type expression. Exactly one of the variant payloads
// is meaningful, selected by Kind:
//
//	KindScalar     Name is String, Number or Boolean
//	KindReference  Name is the referenced model name
//	KindArray      Elem is the item type
//	KindInline     Members, Index and Nested describe a structural object
type Type struct {
	Kind    Kind
	Name    string
	Elem    *Type
	Members []Member
	Index   *Type
	Nested  []string
}

// Member is one declared property of an inline structural type.
type Member struct {
	Name     string
	Required bool
	Type     Type
}

func VoidType() Type    { return Type{Kind: KindVoid} }
func UnknownType() Type { return Type{Kind: KindUnknown} }

func ScalarType(name string) Type { return Type{Kind: KindScalar, Name: name} }

func RefType(name string) Type { return Type{Kind: KindReference, Name: name} }

func ArrayOf(elem Type) Type { return Type{Kind: KindArray, Elem: &elem} }

// InlineType builds a structural type and records the model names nested in
// its members and index signature.
func InlineType(members []Member, index *Type) Type {
	var nested []string
	seen := make(map[string]bool)
	add := func(t Type) {
		for _, dep := range t.Dependencies() {
			if !seen[dep] {
				seen[dep] = true
				nested = append(nested, dep)
			}
		}
	}
	for _, m := range members {
		add(m.Type)
	}
	if index != nil {
		add(*index)
	}
	return Type{Kind: KindInline, Members: members, Index: index, Nested: nested}
}

// String renders the type expression. The form is stable for a given input;
// inline members keep declaration order.
func (t Type) String() string {
	switch t.Kind {
	case KindVoid:
		return Void
	case KindScalar, KindReference:
		return t.Name
	case KindArray:
		if t.Elem == nil {
			return Unknown + "[]"
		}
		return t.Elem.String() + "[]"
	case KindInline:
		return t.signature()
	default:
		return Unknown
	}
}

func (t Type) signature() string {
	if len(t.Members) == 0 && t.Index == nil {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for _, m := range t.Members {
		b.WriteString(m.Name)
		if !m.Required {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(m.Type.String())
		b.WriteString("; ")
	}
	if t.Index != nil {
		b.WriteString("[key: string]: ")
		b.WriteString(t.Index.String())
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}

// ModelName returns the model referenced directly or as the (nested) item of
// an array, or "" for every other shape.
func (t Type) ModelName() string {
	switch t.Kind {
	case KindReference:
		return t.Name
	case KindArray:
		if t.Elem != nil {
			return t.Elem.ModelName()
		}
	}
	return ""
}

// Dependencies returns the model names this type refers to.
func (t Type) Dependencies() []string {
	switch t.Kind {
	case KindReference:
		return []string{t.Name}
	case KindArray:
		if t.Elem != nil {
			return t.Elem.Dependencies()
		}
	case KindInline:
		return t.Nested
	}
	return nil
}

func (t Type) IsVoid() bool    { return t.Kind == KindVoid }
func (t Type) IsUnknown() bool { return t.Kind == KindUnknown }
