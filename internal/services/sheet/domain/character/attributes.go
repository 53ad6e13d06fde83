package character

// Attribute names one of the six character scores.
type Attribute string

const (
	Strength         Attribute = "strength"
	Constitution     Attribute = "constitution"
	Intelligence     Attribute = "intelligence"
	Charisma         Attribute = "charisma"
	Determination    Attribute = "determination"
	Prestidigitation Attribute = "prestidigitation"
)

var attributeOrder = []Attribute{Strength, Constitution, Intelligence, Charisma, Determination, Prestidigitation}

// radarOrder is the clockwise chart order starting at the top axis.
var radarOrder = []Attribute{Strength, Intelligence, Charisma, Determination, Constitution, Prestidigitation}

// AllAttributes returns the six attributes in sheet order.
func AllAttributes() []Attribute {
	return append([]Attribute(nil), attributeOrder...)
}

// RadarOrder returns the six attributes in radar chart order.
func RadarOrder() []Attribute {
	return append([]Attribute(nil), radarOrder...)
}

// ParseAttribute resolves an attribute name.
func ParseAttribute(value string) (Attribute, bool) {
	for _, attr := range attributeOrder {
		if string(attr) == value {
			return attr, true
		}
	}
	return "", false
}

// AttributeSet holds the six signed scores. Storage is unbounded; charts
// clamp values to their own display range.
type AttributeSet struct {
	Strength         int `json:"strength"`
	Constitution     int `json:"constitution"`
	Intelligence     int `json:"intelligence"`
	Charisma         int `json:"charisma"`
	Determination    int `json:"determination"`
	Prestidigitation int `json:"prestidigitation"`
}

// Get returns the score for attr.
func (a AttributeSet) Get(attr Attribute) (int, bool) {
	ptr := a.field(attr)
	if ptr == nil {
		return 0, false
	}
	return *ptr, true
}

// Value returns the score for attr, or 0 when attr is unknown.
func (a AttributeSet) Value(attr Attribute) int {
	v, _ := a.Get(attr)
	return v
}

// Set updates the score for attr and reports whether attr is known.
func (a *AttributeSet) Set(attr Attribute, value int) bool {
	ptr := a.field(attr)
	if ptr == nil {
		return false
	}
	*ptr = value
	return true
}

func (a *AttributeSet) field(attr Attribute) *int {
	switch attr {
	case Strength:
		return &a.Strength
	case Constitution:
		return &a.Constitution
	case Intelligence:
		return &a.Intelligence
	case Charisma:
		return &a.Charisma
	case Determination:
		return &a.Determination
	case Prestidigitation:
		return &a.Prestidigitation
	default:
		return nil
	}
}
