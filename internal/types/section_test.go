package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactType_RoundTripsNames(t *testing.T) {
	all := ContactTypes()
	require.Len(t, all, 9)
	assert.Equal(t, ContactPhone, all[0])
	assert.Equal(t, ContactHomePage, all[len(all)-1])

	for _, ct := range all {
		t.Run(ct.String(), func(t *testing.T) {
			assert.True(t, ct.Valid())
			assert.NotEmpty(t, ct.Title())

			parsed, err := ParseContactType(ct.String())
			require.NoError(t, err)
			assert.Equal(t, ct, parsed)
		})
	}
}

func TestContactType_Invalid(t *testing.T) {
	var zero ContactType
	assert.False(t, zero.Valid())
	assert.Equal(t, "ContactType(0)", zero.String())
	assert.Equal(t, "ContactType(42)", ContactType(42).Title())

	_, err := ParseContactType("fax")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown contact type")
}

func TestSectionType_RoundTripsNames(t *testing.T) {
	all := SectionTypes()
	require.Len(t, all, 6)

	for _, st := range all {
		t.Run(st.String(), func(t *testing.T) {
			assert.True(t, st.Valid())
			assert.NotEmpty(t, st.Title())

			parsed, err := ParseSectionType(st.String())
			require.NoError(t, err)
			assert.Equal(t, st, parsed)
		})
	}
}

func TestSectionType_Invalid(t *testing.T) {
	assert.False(t, SectionType(0).Valid())
	assert.Equal(t, "SectionType(7)", SectionType(7).String())

	_, err := ParseSectionType("hobbies")
	assert.Error(t, err)
}

func TestTextSection(t *testing.T) {
	s := NewTextSection("Lead engineer")

	assert.Equal(t, FormatText, s.Format())
	assert.Equal(t, "Lead engineer", s.Content())
	assert.True(t, s.Equal(NewTextSection("Lead engineer")))
	assert.False(t, s.Equal(NewTextSection("Staff engineer")))
	assert.False(t, s.Equal(NewListSection("Lead engineer")))
	assert.False(t, s.Equal(nil))
}

func TestListSection_IsImmutable(t *testing.T) {
	items := []string{"Go", "Distributed Systems"}
	s := NewListSection(items...)

	items[0] = "Rust"
	got := s.Items()
	assert.Equal(t, []string{"Go", "Distributed Systems"}, got)

	got[1] = "Kubernetes"
	assert.Equal(t, []string{"Go", "Distributed Systems"}, s.Items())
}

func TestListSection_Equal(t *testing.T) {
	assert.True(t, NewListSection("a", "b").Equal(NewListSection("a", "b")))
	assert.False(t, NewListSection("a", "b").Equal(NewListSection("b", "a")))
	assert.True(t, NewListSection().Equal(NewListSection([]string{}...)))
	assert.False(t, NewListSection("a").Equal(NewTextSection("a")))
}

func TestOrganizationSection(t *testing.T) {
	orgs := []Organization{
		{
			Name: "Test Company",
			URL:  "https://test.example.com",
			Positions: []Position{
				{Title: "Software Engineer", StartDate: "2020-01", EndDate: "2023-06"},
			},
		},
	}
	s := NewOrganizationSection(orgs...)
	assert.Equal(t, FormatOrganization, s.Format())

	// Input slices are copied
	orgs[0].Positions[0].Title = "Changed"
	assert.Equal(t, "Software Engineer", s.Organizations()[0].Positions[0].Title)

	// Output slices are copied
	got := s.Organizations()
	got[0].Name = "Other"
	got[0].Positions[0].EndDate = ""
	fresh := s.Organizations()
	assert.Equal(t, "Test Company", fresh[0].Name)
	assert.Equal(t, "2023-06", fresh[0].Positions[0].EndDate)

	same := NewOrganizationSection(Organization{
		Name:      "Test Company",
		URL:       "https://test.example.com",
		Positions: []Position{{Title: "Software Engineer", StartDate: "2020-01", EndDate: "2023-06"}},
	})
	assert.True(t, s.Equal(same))
	assert.False(t, s.Equal(NewOrganizationSection()))
}

func TestResume_EqualUsesSectionEquality(t *testing.T) {
	a := newTestResume(t, "Ada Lovelace", "", "")
	b, err := RestoreResume(a.ID(), "Ada Lovelace", "", "")
	require.NoError(t, err)

	a.AddSection(SectionQualifications, NewListSection("Mathematics"))
	b.AddSection(SectionQualifications, NewListSection("Mathematics"))
	assert.True(t, a.Equal(b), "distinct but equal section values should compare equal")

	a.AddSection(SectionPersonal, nil)
	assert.False(t, a.Equal(b))
	b.AddSection(SectionPersonal, nil)
	assert.True(t, a.Equal(b))
}
