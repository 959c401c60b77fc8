package model

// Kind classifies what a favorite points at. The set is closed but new kinds
// can be added without breaking persisted boards.
type Kind string

const (
	// KindPage is a regular web page bookmark
	KindPage Kind = "page"

	// KindContact is a chat contact
	KindContact Kind = "contact"

	// KindDocument is a document link
	KindDocument Kind = "document"

	// KindContactGroup is a group of chat contacts
	KindContactGroup Kind = "contactGroup"
)

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is one of the known values
func (k Kind) IsValid() bool {
	switch k {
	case KindPage, KindContact, KindDocument, KindContactGroup:
		return true
	}
	return false
}

// Kinds returns all known kinds in display order
func Kinds() []Kind {
	return []Kind{KindPage, KindContact, KindDocument, KindContactGroup}
}

// OpenBehavior controls how a favorite opens when activated. It is only
// meaningful for KindPage; every other kind always opens externally.
type OpenBehavior string

const (
	// OpenNewTab opens the URL in an external browser context
	OpenNewTab OpenBehavior = "newTab"

	// OpenModal opens the URL in an embedded in-app view
	OpenModal OpenBehavior = "modal"
)

// String returns the string representation of OpenBehavior
func (ob OpenBehavior) String() string {
	return string(ob)
}

// IsValid returns true if the behavior is one of the known values.
// The empty value is valid on the wire and means OpenNewTab.
func (ob OpenBehavior) IsValid() bool {
	return ob == "" || ob == OpenNewTab || ob == OpenModal
}
