// Package types provides type definitions for structured data used throughout the resume-base module.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"cmp"
	"errors"
	"maps"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Resume describes one person's professional profile: identity, contacts and content sections.
//
// A Resume is not safe for concurrent mutation; callers sharing one across
// goroutines must synchronize access themselves.
type Resume struct {
	id       string
	fullName string
	location string
	homepage string
	contacts map[ContactType]string
	sections map[SectionType]Section
}

// ResumeParams carries the construction input for a Resume.
// A nil field means the value was not supplied.
type ResumeParams struct {
	FullName *string `json:"full_name" validate:"required"`
	Location *string `json:"location" validate:"required"`
	Homepage *string `json:"homepage" validate:"required"`
}

type restoreParams struct {
	ID string `json:"id" validate:"required,uuid"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// String returns a pointer to v, for filling ResumeParams
func String(v string) *string {
	return &v
}

// NewResume creates a Resume with a fresh identifier and no contacts or sections.
// All three params are required; the empty string is an accepted value.
func NewResume(p ResumeParams) (*Resume, error) {
	if err := validateStruct(p); err != nil {
		return nil, err
	}
	return newResume(uuid.NewString(), *p.FullName, *p.Location, *p.Homepage), nil
}

// NewResumeWithName creates a Resume with only the full name set.
// Location and homepage start out as empty strings.
func NewResumeWithName(fullName *string) (*Resume, error) {
	return NewResume(ResumeParams{
		FullName: fullName,
		Location: String(""),
		Homepage: String(""),
	})
}

// RestoreResume rebuilds a Resume under an existing identifier, e.g. when decoding a stored document.
// The id must be a UUID.
func RestoreResume(id, fullName, location, homepage string) (*Resume, error) {
	if err := validateStruct(restoreParams{ID: id}); err != nil {
		return nil, err
	}
	return newResume(id, fullName, location, homepage), nil
}

func newResume(id, fullName, location, homepage string) *Resume {
	return &Resume{
		id:       id,
		fullName: fullName,
		location: location,
		homepage: homepage,
		contacts: make(map[ContactType]string),
		sections: make(map[SectionType]Section),
	}
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ArgumentError{Field: "(root)", Message: "validation failed", Cause: err}
	}

	fe := fieldErrs[0]
	msg := "failed " + fe.Tag() + " check"
	switch fe.Tag() {
	case "required":
		msg = "must not be absent"
	case "uuid":
		msg = "must be a UUID"
	}
	return &ArgumentError{Field: fe.Field(), Message: msg}
}

// ID returns the identifier assigned at construction
func (r *Resume) ID() string { return r.id }

// FullName returns the person's full name
func (r *Resume) FullName() string { return r.fullName }

// Location returns the person's place of living
func (r *Resume) Location() string { return r.location }

// Homepage returns the link to the person's homepage
func (r *Resume) Homepage() string { return r.homepage }

// SetFullName replaces the full name. No validation is applied.
func (r *Resume) SetFullName(fullName string) { r.fullName = fullName }

// SetLocation replaces the location. No validation is applied.
func (r *Resume) SetLocation(location string) { r.location = location }

// SetHomepage replaces the homepage. No validation is applied.
func (r *Resume) SetHomepage(homepage string) { r.homepage = homepage }

// Contacts returns a copy of the contacts. Changes to the copy do not reach the Resume.
func (r *Resume) Contacts() map[ContactType]string {
	return maps.Clone(r.contacts)
}

// Sections returns a copy of the sections. Changes to the copy do not reach the Resume.
func (r *Resume) Sections() map[SectionType]Section {
	return maps.Clone(r.sections)
}

// Contact returns the value stored for t
func (r *Resume) Contact(t ContactType) (string, bool) {
	v, ok := r.contacts[t]
	return v, ok
}

// Section returns the section stored for t
func (r *Resume) Section(t SectionType) (Section, bool) {
	s, ok := r.sections[t]
	return s, ok
}

// AddContact stores value for t, replacing any previous value.
// It returns the replaced value and whether there was one.
func (r *Resume) AddContact(t ContactType, value string) (string, bool) {
	prev, ok := r.contacts[t]
	r.contacts[t] = value
	return prev, ok
}

// AddSection stores section for t, replacing any previous section.
// It returns the replaced section and whether there was one.
func (r *Resume) AddSection(t SectionType, section Section) (Section, bool) {
	prev, ok := r.sections[t]
	r.sections[t] = section
	return prev, ok
}

// Equal reports whether both resumes carry the same identifier, scalars, contacts and sections
func (r *Resume) Equal(other *Resume) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r == other {
		return true
	}
	return r.id == other.id &&
		r.fullName == other.fullName &&
		r.location == other.location &&
		r.homepage == other.homepage &&
		maps.Equal(r.contacts, other.contacts) &&
		maps.EqualFunc(r.sections, other.sections, sectionsEqual)
}

func sectionsEqual(a, b Section) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Hash is derived from the identifier only, so equal resumes always hash alike
func (r *Resume) Hash() uint64 {
	return xxhash.Sum64String(r.id)
}

// Compare orders resumes by full name, then by identifier.
//
// Note: this ordering looks at fewer fields than Equal. Two resumes with the
// same name and identifier compare as 0 even when their location, homepage,
// contacts or sections differ.
//
// Unlike Equal, Compare is not nil-safe: both resumes must be non-nil.
func (r *Resume) Compare(other *Resume) int {
	return cmp.Or(
		strings.Compare(r.fullName, other.fullName),
		strings.Compare(r.id, other.id),
	)
}

// CompareResumes is Compare in function form, for slices.SortFunc and friends.
// It panics if either resume is nil.
func CompareResumes(a, b *Resume) int {
	return a.Compare(b)
}
