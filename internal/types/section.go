package types

import "slices"

// SectionFormat names the shape of a Section's content
type SectionFormat string

// Known section formats
const (
	FormatText         SectionFormat = "text"
	FormatList         SectionFormat = "list"
	FormatOrganization SectionFormat = "organization"
)

// Section is the content of one resume section.
// Implementations are immutable once constructed.
type Section interface {
	Format() SectionFormat
	Equal(other Section) bool
}

// TextSection holds a single block of free text, e.g. an objective
type TextSection struct {
	content string
}

// NewTextSection creates a text section
func NewTextSection(content string) *TextSection {
	return &TextSection{content: content}
}

// Format implements Section
func (s *TextSection) Format() SectionFormat { return FormatText }

// Content returns the section text
func (s *TextSection) Content() string { return s.content }

// Equal implements Section
func (s *TextSection) Equal(other Section) bool {
	o, ok := other.(*TextSection)
	if !ok || s == nil || o == nil {
		return ok && s == o
	}
	return s.content == o.content
}

// ListSection holds an ordered list of entries, e.g. achievements
type ListSection struct {
	items []string
}

// NewListSection creates a list section. The items are copied.
func NewListSection(items ...string) *ListSection {
	return &ListSection{items: slices.Clone(items)}
}

// Format implements Section
func (s *ListSection) Format() SectionFormat { return FormatList }

// Items returns a copy of the list entries
func (s *ListSection) Items() []string { return slices.Clone(s.items) }

// Equal implements Section. A nil and an empty item list are equal.
func (s *ListSection) Equal(other Section) bool {
	o, ok := other.(*ListSection)
	if !ok || s == nil || o == nil {
		return ok && s == o
	}
	return slices.Equal(s.items, o.items)
}

// Position is a role held at an organization
type Position struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`         // YYYY-MM
	EndDate     string `json:"end_date,omitempty"` // YYYY-MM, empty while current
}

// Organization is an employer or an educational institution
type Organization struct {
	Name      string     `json:"name"`
	URL       string     `json:"url,omitempty"`
	Positions []Position `json:"positions"`
}

// Equal compares two organizations field by field
func (o Organization) Equal(other Organization) bool {
	return o.Name == other.Name &&
		o.URL == other.URL &&
		slices.Equal(o.Positions, other.Positions)
}

func (o Organization) clone() Organization {
	o.Positions = slices.Clone(o.Positions)
	return o
}

// OrganizationSection holds organizations with their positions,
// used for experience and education
type OrganizationSection struct {
	organizations []Organization
}

// NewOrganizationSection creates an organization section. The organizations are deep-copied.
func NewOrganizationSection(orgs ...Organization) *OrganizationSection {
	return &OrganizationSection{organizations: cloneOrganizations(orgs)}
}

// Format implements Section
func (s *OrganizationSection) Format() SectionFormat { return FormatOrganization }

// Organizations returns a deep copy of the organizations
func (s *OrganizationSection) Organizations() []Organization {
	return cloneOrganizations(s.organizations)
}

// Equal implements Section
func (s *OrganizationSection) Equal(other Section) bool {
	o, ok := other.(*OrganizationSection)
	if !ok || s == nil || o == nil {
		return ok && s == o
	}
	return slices.EqualFunc(s.organizations, o.organizations, Organization.Equal)
}

func cloneOrganizations(orgs []Organization) []Organization {
	if orgs == nil {
		return nil
	}
	out := make([]Organization, len(orgs))
	for i, org := range orgs {
		out[i] = org.clone()
	}
	return out
}
