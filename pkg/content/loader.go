package content

import (
	_ "embed"
	"os"

	"github.com/gosimple/slug"
	"github.com/nikogura/folio/pkg/config"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sample []byte

// Load reads the portfolio document from a YAML (or JSON) file.
func Load(path string) (portfolio Portfolio, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return portfolio, err
	}

	portfolio, err = Parse(fileData)
	if err != nil {
		err = errors.Wrapf(err, "failed to load content: %s", path)
		return portfolio, err
	}

	return portfolio, err
}

// Parse decodes a portfolio document. Site toggles absent from the document
// keep their defaults and theme tokens overlay the default theme.
func Parse(data []byte) (portfolio Portfolio, err error) {
	portfolio.Config = config.DefaultSite()

	err = yaml.Unmarshal(data, &portfolio)
	if err != nil {
		err = errors.Wrap(err, "failed to parse content")
		return portfolio, err
	}

	portfolio.Theme = portfolio.Theme.merged(DefaultTheme())
	portfolio.assignIDs()

	err = portfolio.Validate()
	if err != nil {
		err = errors.Wrap(err, "content validation failed")
		return portfolio, err
	}

	return portfolio, err
}

// assignIDs derives anchors for sections that have none.
func (p *Portfolio) assignIDs() {
	for i := range p.Sections {
		if p.Sections[i].ID == "" && p.Sections[i].Title != "" {
			p.Sections[i].ID = slug.Make(p.Sections[i].Title)
		}
	}
}

// Validate checks the document shape and reports every problem found.
func (p *Portfolio) Validate() (err error) {
	if p.Metadata.Name == "" {
		err = multierr.Append(err, errors.New("metadata.name is required"))
	}

	seen := make(map[string]bool, len(p.Sections))
	for i, section := range p.Sections {
		if section.ID == "" {
			err = multierr.Append(err, errors.Errorf("section at index %d has neither id nor title", i))
			continue
		}
		if seen[section.ID] {
			err = multierr.Append(err, errors.Errorf("duplicate section id %q", section.ID))
		}
		seen[section.ID] = true
	}

	return err
}

// ContactEmail returns the contact address, preferring metadata.email.
func (m Metadata) ContactEmail() (email string) {
	email = m.Email
	if email == "" {
		email = m.Contact.Email
	}
	return email
}

// SectionByID returns the section with the given id.
func (p *Portfolio) SectionByID(id string) (section Section, found bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			section = s
			found = true
			return section, found
		}
	}
	return section, found
}

// SectionsByType returns all sections with the given tag, in document order.
func (p *Portfolio) SectionsByType(t Type) (sections []Section) {
	sections = make([]Section, 0)
	for _, s := range p.Sections {
		if s.Type == t {
			sections = append(sections, s)
		}
	}
	return sections
}

// AnchorIDs returns the section ids in document order.
func (p *Portfolio) AnchorIDs() (ids []string) {
	ids = make([]string, 0, len(p.Sections))
	for _, s := range p.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

// WriteSample writes an example content file to path.
func WriteSample(path string) (err error) {
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("content file already exists: %s", path)
		return err
	}

	err = os.WriteFile(path, sample, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write content file: %s", path)
		return err
	}

	return err
}
