package stringify

// StructField is a single named value of a Struct.
type StructField struct {
	name  string
	value any
}

// NewStructField creates a StructField.
func NewStructField(name string, value any) *StructField {
	return &StructField{
		name:  name,
		value: value,
	}
}

func (structField *StructField) String() string {
	return structField.name + ": " + Interface(structField.value)
}
