package registration

// FieldKind selects the validation and normalization rules for a field.
type FieldKind string

const (
	KindFullName    FieldKind = "full_name"
	KindDate        FieldKind = "date"
	KindGender      FieldKind = "gender"
	KindNationality FieldKind = "nationality"
	KindNationalID  FieldKind = "national_id"
	KindPhone       FieldKind = "phone"
	KindEmail       FieldKind = "email"
	KindFreeText    FieldKind = "free_text"
	KindYear        FieldKind = "year"
	KindGPA         FieldKind = "gpa"
	KindMajor       FieldKind = "major"
)

// FieldDefinition is a single schema entry. The name doubles as the
// storage key for the collected value.
type FieldDefinition struct {
	Name string
	Kind FieldKind
}

// Schema is the ordered list of fields a registration collects. Collection
// order always follows schema order.
type Schema []FieldDefinition

// DefaultSchema returns the fields of the student registration form.
func DefaultSchema() Schema {
	return Schema{
		{Name: "Student Full Name", Kind: KindFullName},
		{Name: "Date of Birth", Kind: KindDate},
		{Name: "Gender", Kind: KindGender},
		{Name: "Nationality", Kind: KindNationality},
		{Name: "National ID", Kind: KindNationalID},
		{Name: "Mobile Number", Kind: KindPhone},
		{Name: "Email Address", Kind: KindEmail},
		{Name: "Parent/Guardian Name", Kind: KindFullName},
		{Name: "Parent/Guardian Contact Number", Kind: KindPhone},
		{Name: "Parent/Guardian Email Address", Kind: KindEmail},
		{Name: "High School Name", Kind: KindFreeText},
		{Name: "Graduation Year", Kind: KindYear},
		{Name: "GPA", Kind: KindGPA},
		{Name: "Preferred Major/Program", Kind: KindMajor},
	}
}

// Names returns the canonical field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, field := range s {
		names[i] = field.Name
	}
	return names
}

// ByName looks up a field definition by its canonical name.
func (s Schema) ByName(name string) (FieldDefinition, bool) {
	for _, field := range s {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDefinition{}, false
}
