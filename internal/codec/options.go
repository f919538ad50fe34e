package codec

import "fmt"

// Options controls how resumes are written and read.
// The zero value writes compact JSON without schema checks on read; use DefaultOptions for the usual setup.
type Options struct {
	Indent string `json:"indent,omitempty"` // Indentation per level; empty writes compact JSON

	// ValidateSchema checks documents against the resume schema before decoding.
	// Without it, unknown fields are still rejected, but encoding/json matches keys
	// case-insensitively, so "Full_Name" is read as "full_name".
	ValidateSchema bool `json:"validate_schema,omitempty"`
}

// DefaultOptions returns compact output with schema validation enabled
func DefaultOptions() Options {
	return Options{ValidateSchema: true}
}

// Validate checks that the options have valid values
func (o Options) Validate() error {
	for _, r := range o.Indent {
		if r != ' ' && r != '\t' {
			return fmt.Errorf("options error: 'indent' may only contain spaces and tabs")
		}
	}
	return nil
}

// MergeWithDefaults returns a new Options with empty fields filled from defaults.
// Bool fields cannot distinguish unset from false, so they are not merged.
func (o Options) MergeWithDefaults(defaults Options) Options {
	result := o

	if result.Indent == "" {
		result.Indent = defaults.Indent
	}

	return result
}
