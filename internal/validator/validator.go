package validator

// Validator struct to hold validation errors.
type Validator struct {
	Errors map[string]string
}

// New creates a new Validator instance.
func New() *Validator {
	return &Validator{
		Errors: make(map[string]string),
	}
}

// IsEmpty checks if there are no validation errors.
func (v *Validator) IsEmpty() bool {
	return len(v.Errors) == 0
}

// AddError adds a new error message for a given key if it doesn't already exist.
func (v *Validator) AddError(key string, message string) {
	_, exists := v.Errors[key]
	if !exists {
		v.Errors[key] = message
	}
}

// Check adds an error message for a key if the condition is false.
func (v *Validator) Check(ok bool, key string, message string) {
	if !ok {
		v.AddError(key, message)
	}
}
