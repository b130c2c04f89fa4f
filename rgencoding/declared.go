package rgencoding

// DeclaredKind distinguishes the three states a user-declared encoding
// label can take.
type DeclaredKind int

const (
	// DeclaredAbsent means no label was supplied at all.
	DeclaredAbsent DeclaredKind = iota
	// DeclaredNoneExplicit means the literal label "none" was supplied,
	// meaning "skip statistical detection, fall back to UTF-8" -- never
	// "do not replace".
	DeclaredNoneExplicit
	// DeclaredSome means a concrete label was supplied.
	DeclaredSome
)

// Declared is a parsed user-supplied encoding label.
type Declared struct {
	Kind  DeclaredKind
	Label string
}

// ParseDeclared classifies a raw label string (as read from an
// --encoding-style flag) into its Declared state.
func ParseDeclared(label string) Declared {
	switch label {
	case "":
		return Declared{Kind: DeclaredAbsent}
	case "none":
		return Declared{Kind: DeclaredNoneExplicit}
	default:
		return Declared{Kind: DeclaredSome, Label: label}
	}
}
