package catalog

// Record is one decoded message.
type Record struct {
	MessageID uint16  `json:"message_id"`
	Name      string  `json:"name,omitempty"`
	Fields    []Value `json:"fields"`
	// Trailing counts payload bytes left after the last field.
	Trailing int  `json:"trailing,omitempty"`
	Failed   bool `json:"failed,omitempty"`
}

// Value is one decoded field. Text is the FormatValue rendering used for
// display and JSON output.
type Value struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"-"`
	Text  string `json:"value"`
}

// Get returns the decoded value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
