package run

// CustomVariable is a user- or auto-splitter-provided key/value pair that
// may or may not survive across runs of the same category.
type CustomVariable struct {
	Value       string
	IsPermanent bool
}

// Metadata carries the non-timing descriptive data attached to a Run.
type Metadata struct {
	Platform        string
	Region          string
	UsesEmulator    bool
	Variables       map[string]string
	CustomVariables map[string]CustomVariable
}

// NewMetadata returns an empty, ready-to-use Metadata value.
func NewMetadata() Metadata {
	return Metadata{
		Variables:       map[string]string{},
		CustomVariables: map[string]CustomVariable{},
	}
}

// Clone returns a deep copy of m.
func (m Metadata) Clone() Metadata {
	out := Metadata{
		Platform:        m.Platform,
		Region:          m.Region,
		UsesEmulator:    m.UsesEmulator,
		Variables:       make(map[string]string, len(m.Variables)),
		CustomVariables: make(map[string]CustomVariable, len(m.CustomVariables)),
	}
	for k, v := range m.Variables {
		out.Variables[k] = v
	}
	for k, v := range m.CustomVariables {
		out.CustomVariables[k] = v
	}
	return out
}
