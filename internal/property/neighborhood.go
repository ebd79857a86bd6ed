package property

// Neighborhood identifies the neighbourhood and ward a property belongs to.
type Neighborhood struct {
	ID   *int
	Name string
	Ward string
}

// NewNeighborhood builds a Neighborhood from already-parsed parts.
func NewNeighborhood(id *int, name, ward string) Neighborhood {
	return Neighborhood{ID: id, Name: name, Ward: ward}
}

// Equal is structural over id, name and ward.
func (n Neighborhood) Equal(o Neighborhood) bool {
	return equalInt(n.ID, o.ID) && n.Name == o.Name && n.Ward == o.Ward
}

// String renders "Name (Ward)", dropping whichever part is empty.
func (n Neighborhood) String() string {
	s := n.Name
	if n.Ward != "" {
		s += " (" + n.Ward + ")"
	}
	return s
}
