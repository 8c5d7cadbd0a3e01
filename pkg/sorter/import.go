package sorter

// Specifier classifies how an import statement binds its module.
type Specifier string

const (
	DefaultSpecifier   Specifier = "default"
	NamespaceSpecifier Specifier = "namespace"
	NamedSpecifier     Specifier = "named"
)

// Span records an import statement's position in the original source text.
// It is carried through sorting untouched and never consulted for ordering.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Import represents a single import statement already classified into a
// semantic group by upstream tooling.
type Import struct {
	Source     string      `json:"source"`               // module path/specifier, the sole ordering key
	Specifiers []Specifier `json:"specifiers,omitempty"` // specifier kinds of the statement
	Span       *Span       `json:"span,omitempty"`       // original source position, may be absent
}

// IsNamespace reports whether the statement binds its module under a
// namespace alias. A record qualifies when any of its specifiers is a
// namespace specifier; an empty specifier list never qualifies.
func (imp Import) IsNamespace() bool {
	for _, s := range imp.Specifiers {
		if s == NamespaceSpecifier {
			return true
		}
	}
	return false
}
