package content

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// rawSection is the on-disk shape of a section before its payload is typed.
type rawSection struct {
	ID      string    `yaml:"id"`
	Type    Type      `yaml:"type"`
	Title   string    `yaml:"title"`
	Content yaml.Node `yaml:"content"`
	Items   yaml.Node `yaml:"items"`
}

// UnmarshalYAML decodes the section and types its payload by tag. Unknown
// tags decode without error and leave Body nil.
func (s *Section) UnmarshalYAML(value *yaml.Node) (err error) {
	var raw rawSection
	err = value.Decode(&raw)
	if err != nil {
		return err
	}

	s.ID = raw.ID
	s.Type = raw.Type
	s.Title = raw.Title
	s.Body = nil

	switch raw.Type {
	case TypeText:
		var body Text
		body.Paragraphs, err = decodeParagraphs(&raw.Content)
		s.Body = body
	case TypeExperience:
		var body ExperienceList
		err = decodeItems(&raw.Items, &body.Items)
		s.Body = body
	case TypeProject:
		var body ProjectList
		err = decodeItems(&raw.Items, &body.Items)
		s.Body = body
	case TypeArticle:
		var body ArticleList
		err = decodeItems(&raw.Items, &body.Items)
		s.Body = body
	case TypeCertification:
		var body CertificationList
		err = decodeItems(&raw.Items, &body.Items)
		s.Body = body
	}

	if err != nil {
		err = errors.Wrapf(err, "section %q", raw.ID)
		return err
	}

	return err
}

// decodeParagraphs accepts either a single string or a list of strings.
func decodeParagraphs(node *yaml.Node) (paragraphs []string, err error) {
	switch node.Kind {
	case 0:
		return paragraphs, err
	case yaml.ScalarNode:
		var single string
		err = node.Decode(&single)
		if single != "" {
			paragraphs = []string{single}
		}
		return paragraphs, err
	default:
		err = node.Decode(&paragraphs)
		return paragraphs, err
	}
}

func decodeItems[T any](node *yaml.Node, out *[]T) (err error) {
	if node.Kind == 0 {
		return err
	}
	err = node.Decode(out)
	return err
}
