package types

import "fmt"

// ContactType identifies a contact channel of a person
type ContactType int

// Contact types. The zero value is not a valid contact type.
const (
	ContactPhone ContactType = iota + 1
	ContactMobilePhone
	ContactHomePhone
	ContactSkype
	ContactEmail
	ContactLinkedIn
	ContactGitHub
	ContactStackOverflow
	ContactHomePage
)

var contactTypeNames = map[ContactType]string{
	ContactPhone:         "phone",
	ContactMobilePhone:   "mobile_phone",
	ContactHomePhone:     "home_phone",
	ContactSkype:         "skype",
	ContactEmail:         "email",
	ContactLinkedIn:      "linkedin",
	ContactGitHub:        "github",
	ContactStackOverflow: "stackoverflow",
	ContactHomePage:      "home_page",
}

var contactTypeTitles = map[ContactType]string{
	ContactPhone:         "Phone",
	ContactMobilePhone:   "Mobile phone",
	ContactHomePhone:     "Home phone",
	ContactSkype:         "Skype",
	ContactEmail:         "Email",
	ContactLinkedIn:      "LinkedIn",
	ContactGitHub:        "GitHub",
	ContactStackOverflow: "Stack Overflow",
	ContactHomePage:      "Home page",
}

// ContactTypes returns every contact type in declaration order
func ContactTypes() []ContactType {
	out := make([]ContactType, 0, len(contactTypeNames))
	for t := ContactPhone; t <= ContactHomePage; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t is one of the declared contact types
func (t ContactType) Valid() bool {
	_, ok := contactTypeNames[t]
	return ok
}

// String returns the stable wire name, e.g. "email"
func (t ContactType) String() string {
	if name, ok := contactTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ContactType(%d)", int(t))
}

// Title returns a human-readable label
func (t ContactType) Title() string {
	if title, ok := contactTypeTitles[t]; ok {
		return title
	}
	return t.String()
}

// ParseContactType resolves a wire name back to its ContactType
func ParseContactType(name string) (ContactType, error) {
	for t, n := range contactTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown contact type %q", name)
}
