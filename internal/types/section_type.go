package types

import "fmt"

// SectionType identifies a content block of a resume
type SectionType int

// Section types. The zero value is not a valid section type.
const (
	SectionPersonal SectionType = iota + 1
	SectionObjective
	SectionAchievement
	SectionQualifications
	SectionExperience
	SectionEducation
)

var sectionTypeNames = map[SectionType]string{
	SectionPersonal:       "personal",
	SectionObjective:      "objective",
	SectionAchievement:    "achievement",
	SectionQualifications: "qualifications",
	SectionExperience:     "experience",
	SectionEducation:      "education",
}

var sectionTypeTitles = map[SectionType]string{
	SectionPersonal:       "Personal qualities",
	SectionObjective:      "Objective",
	SectionAchievement:    "Achievements",
	SectionQualifications: "Qualifications",
	SectionExperience:     "Experience",
	SectionEducation:      "Education",
}

// SectionTypes returns every section type in declaration order
func SectionTypes() []SectionType {
	out := make([]SectionType, 0, len(sectionTypeNames))
	for t := SectionPersonal; t <= SectionEducation; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t is one of the declared section types
func (t SectionType) Valid() bool {
	_, ok := sectionTypeNames[t]
	return ok
}

func (t SectionType) String() string {
	if name, ok := sectionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SectionType(%d)", int(t))
}

// Title returns a human-readable label
func (t SectionType) Title() string {
	if title, ok := sectionTypeTitles[t]; ok {
		return title
	}
	return t.String()
}

// ParseSectionType resolves a wire name back to its SectionType
func ParseSectionType(name string) (SectionType, error) {
	for t, n := range sectionTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown section type %q", name)
}
