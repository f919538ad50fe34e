// Package codec reads and writes resumes as versioned JSON documents.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"unicode/utf8"

	"github.com/jonathan/resume-base/internal/schemas"
	"github.com/jonathan/resume-base/internal/types"
)

// FormatVersion is written into every document and is the only version Decode accepts
const FormatVersion = 1

type resumeDocument struct {
	FormatVersion int                         `json:"format_version"`
	ID            string                      `json:"id"`
	FullName      string                      `json:"full_name"`
	Location      string                      `json:"location"`
	Homepage      string                      `json:"homepage"`
	Contacts      map[string]string           `json:"contacts"`
	Sections      map[string]*sectionDocument `json:"sections"`
}

type sectionDocument struct {
	Format        types.SectionFormat  `json:"format"`
	Content       string               `json:"content,omitempty"`
	Items         []string             `json:"items,omitempty"`
	Organizations []types.Organization `json:"organizations,omitempty"`
}

// versionHeader is decoded ahead of the full document
type versionHeader struct {
	FormatVersion *int `json:"format_version"`
}

// Codec encodes and decodes resumes with a fixed set of options
type Codec struct {
	opts Options
}

// New creates a Codec from opts, with empty fields taken from DefaultOptions
func New(opts Options) (*Codec, error) {
	opts = opts.MergeWithDefaults(DefaultOptions())
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Codec{opts: opts}, nil
}

var defaultCodec = &Codec{opts: DefaultOptions()}

// Encode writes r with the default options
func Encode(r *types.Resume) ([]byte, error) {
	return defaultCodec.Encode(r)
}

// Decode reads a resume with the default options
func Decode(data []byte) (*types.Resume, error) {
	return defaultCodec.Decode(data)
}

// Write encodes r to w with the default options
func Write(w io.Writer, r *types.Resume) error {
	return defaultCodec.Write(w, r)
}

// Read decodes a resume from rd with the default options
func Read(rd io.Reader) (*types.Resume, error) {
	return defaultCodec.Read(rd)
}

// Encode returns the JSON document for r
func (c *Codec) Encode(r *types.Resume) ([]byte, error) {
	doc, err := toDocument(r)
	if err != nil {
		return nil, err
	}

	var data []byte
	if c.opts.Indent != "" {
		data, err = json.MarshalIndent(doc, "", c.opts.Indent)
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, &EncodeError{Message: "failed to marshal JSON", Cause: err}
	}
	return data, nil
}

// Write encodes r to w followed by a newline
func (c *Codec) Write(w io.Writer, r *types.Resume) error {
	doc, err := toDocument(r)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", c.opts.Indent)
	if err := enc.Encode(doc); err != nil {
		return &EncodeError{Message: "failed to write JSON", Cause: err}
	}
	return nil
}

// Decode rebuilds a resume from its JSON document.
// The document keeps its identifier, so the result is Equal to the encoded resume.
func (c *Codec) Decode(data []byte) (*types.Resume, error) {
	var header versionHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, &DecodeError{Message: "failed to unmarshal JSON", Cause: err}
	}
	if header.FormatVersion != nil && *header.FormatVersion != FormatVersion {
		return nil, &DecodeError{
			Message: fmt.Sprintf("format version %d", *header.FormatVersion),
			Cause:   ErrUnsupportedVersion,
		}
	}

	if c.opts.ValidateSchema {
		if err := schemas.ValidateResume(data); err != nil {
			return nil, &DecodeError{Message: "document does not match resume schema", Cause: err}
		}
	}

	// Keys still match case-insensitively here; only the schema catches that
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var doc resumeDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, &DecodeError{Message: "failed to unmarshal JSON", Cause: err}
	}
	if doc.FormatVersion != FormatVersion {
		return nil, &DecodeError{
			Message: fmt.Sprintf("format version %d", doc.FormatVersion),
			Cause:   ErrUnsupportedVersion,
		}
	}

	return fromDocument(&doc)
}

// Read decodes a single document read to EOF from rd
func (c *Codec) Read(rd io.Reader) (*types.Resume, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, &DecodeError{Message: "failed to read document", Cause: err}
	}
	return c.Decode(data)
}

func toDocument(r *types.Resume) (*resumeDocument, error) {
	if r == nil {
		return nil, &EncodeError{Message: "resume is nil"}
	}

	for _, f := range []struct{ name, value string }{
		{"id", r.ID()},
		{"full_name", r.FullName()},
		{"location", r.Location()},
		{"homepage", r.Homepage()},
	} {
		if err := checkUTF8(f.name, f.value); err != nil {
			return nil, err
		}
	}

	doc := &resumeDocument{
		FormatVersion: FormatVersion,
		ID:            r.ID(),
		FullName:      r.FullName(),
		Location:      r.Location(),
		Homepage:      r.Homepage(),
		Contacts:      make(map[string]string),
		Sections:      make(map[string]*sectionDocument),
	}

	for ct, value := range r.Contacts() {
		if !ct.Valid() {
			return nil, &EncodeError{Message: fmt.Sprintf("unknown contact type %s", ct)}
		}
		if err := checkUTF8("contacts."+ct.String(), value); err != nil {
			return nil, err
		}
		doc.Contacts[ct.String()] = value
	}

	for st, section := range r.Sections() {
		if !st.Valid() {
			return nil, &EncodeError{Message: fmt.Sprintf("unknown section type %s", st)}
		}
		sd, err := toSectionDocument(section)
		if err != nil {
			return nil, &EncodeError{Message: fmt.Sprintf("section %s", st), Cause: err}
		}
		if err := sd.checkUTF8("sections." + st.String()); err != nil {
			return nil, err
		}
		doc.Sections[st.String()] = sd
	}

	return doc, nil
}

// checkUTF8 rejects strings encoding/json would rewrite with U+FFFD
func checkUTF8(field, value string) error {
	if utf8.ValidString(value) {
		return nil
	}
	return &EncodeError{Message: fmt.Sprintf("%s is not valid UTF-8", field)}
}

func (sd *sectionDocument) checkUTF8(field string) error {
	if sd == nil {
		return nil
	}
	if err := checkUTF8(field+".content", sd.Content); err != nil {
		return err
	}
	for i, item := range sd.Items {
		if err := checkUTF8(fmt.Sprintf("%s.items[%d]", field, i), item); err != nil {
			return err
		}
	}
	for i, org := range sd.Organizations {
		prefix := fmt.Sprintf("%s.organizations[%d]", field, i)
		if err := checkUTF8(prefix+".name", org.Name); err != nil {
			return err
		}
		if err := checkUTF8(prefix+".url", org.URL); err != nil {
			return err
		}
		for j, pos := range org.Positions {
			p := fmt.Sprintf("%s.positions[%d]", prefix, j)
			for _, f := range []struct{ name, value string }{
				{"title", pos.Title},
				{"description", pos.Description},
				{"start_date", pos.StartDate},
				{"end_date", pos.EndDate},
			} {
				if err := checkUTF8(p+"."+f.name, f.value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// toSectionDocument maps a nil section to a JSON null
func toSectionDocument(section types.Section) (*sectionDocument, error) {
	if section == nil {
		return nil, nil
	}
	if v := reflect.ValueOf(section); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, fmt.Errorf("nil %T", section)
	}

	switch s := section.(type) {
	case *types.TextSection:
		return &sectionDocument{Format: s.Format(), Content: s.Content()}, nil
	case *types.ListSection:
		return &sectionDocument{Format: s.Format(), Items: s.Items()}, nil
	case *types.OrganizationSection:
		return &sectionDocument{Format: s.Format(), Organizations: s.Organizations()}, nil
	default:
		return nil, fmt.Errorf("unsupported section implementation %T", section)
	}
}

func fromDocument(doc *resumeDocument) (*types.Resume, error) {
	r, err := types.RestoreResume(doc.ID, doc.FullName, doc.Location, doc.Homepage)
	if err != nil {
		return nil, &DecodeError{Message: "invalid resume fields", Cause: err}
	}

	for name, value := range doc.Contacts {
		ct, err := types.ParseContactType(name)
		if err != nil {
			return nil, &DecodeError{Message: "invalid contacts", Cause: err}
		}
		r.AddContact(ct, value)
	}

	for name, sd := range doc.Sections {
		st, err := types.ParseSectionType(name)
		if err != nil {
			return nil, &DecodeError{Message: "invalid sections", Cause: err}
		}
		section, err := fromSectionDocument(sd)
		if err != nil {
			return nil, &DecodeError{Message: fmt.Sprintf("invalid section %s", st), Cause: err}
		}
		r.AddSection(st, section)
	}

	return r, nil
}

func fromSectionDocument(sd *sectionDocument) (types.Section, error) {
	if sd == nil {
		return nil, nil
	}

	switch sd.Format {
	case types.FormatText:
		if sd.Items != nil || sd.Organizations != nil {
			return nil, fmt.Errorf("text section may only carry content")
		}
		return types.NewTextSection(sd.Content), nil
	case types.FormatList:
		if sd.Content != "" || sd.Organizations != nil {
			return nil, fmt.Errorf("list section may only carry items")
		}
		return types.NewListSection(sd.Items...), nil
	case types.FormatOrganization:
		if sd.Content != "" || sd.Items != nil {
			return nil, fmt.Errorf("organization section may only carry organizations")
		}
		return types.NewOrganizationSection(sd.Organizations...), nil
	default:
		return nil, fmt.Errorf("unknown section format %q", sd.Format)
	}
}
