package form

import (
	"embed"
	"fmt"
	"os"
	"path"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed forms/*.yaml
var embedded embed.FS

// Embedded form sets.
const (
	ProductionSet = "production"
	TestSet       = "test"
)

// addressList accepts either a single address or a list in YAML.
type addressList []string

func (a *addressList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			*a = nil
			return nil
		}
		*a = addressList{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*a = list
		return nil
	default:
		return fmt.Errorf("line %d: expected an address or a list of addresses", node.Line)
	}
}

type formDocument struct {
	Label   string      `yaml:"label" validate:"required"`
	To      addressList `yaml:"to" validate:"required,min=1,dive,email"`
	Bcc     addressList `yaml:"bcc" validate:"omitempty,dive,email"`
	From    string      `yaml:"from" validate:"required"`
	Subject string      `yaml:"subject" validate:"required"`

	// Fields stays a raw node so declaration order survives decoding.
	Fields yaml.Node `yaml:"fields" validate:"-"`
}

type fieldDocument struct {
	Label    string `yaml:"label"`
	Required bool   `yaml:"required"`
	Honeypot bool   `yaml:"honeypot"`
	Derive   string `yaml:"derive"`
	Method   string `yaml:"method"`
	Format   string `yaml:"format" validate:"omitempty,oneof=email url"`
}

// LoadEmbedded loads one of the form sets compiled into the binary.
func LoadEmbedded(set string) (*Registry, error) {
	data, err := embedded.ReadFile(path.Join("forms", set+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown form set %q: %w", set, err)
	}

	return Parse(data)
}

// LoadFile loads a form set from a YAML file on disk.
func LoadFile(name string) (*Registry, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read forms file: %w", err)
	}

	return Parse(data)
}

// Parse builds a Registry from a YAML document mapping form ids to
// definitions. Form and field order follow the document.
func Parse(data []byte) (*Registry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse forms document: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("forms document is empty")
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: forms document must be a mapping of form ids", top.Line)
	}

	validate := validator.New()

	defs := make([]*Definition, 0, len(top.Content)/2)
	for i := 0; i+1 < len(top.Content); i += 2 {
		id := top.Content[i].Value

		def, err := parseForm(validate, id, top.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("form %q: %w", id, err)
		}

		defs = append(defs, def)
	}

	return NewRegistry(defs...)
}

func parseForm(validate *validator.Validate, id string, node *yaml.Node) (*Definition, error) {
	var doc formDocument
	if err := node.Decode(&doc); err != nil {
		return nil, err
	}

	if err := validate.Struct(doc); err != nil {
		return nil, err
	}

	if doc.Fields.Kind != yaml.MappingNode || len(doc.Fields.Content) == 0 {
		return nil, fmt.Errorf("fields must be a non-empty mapping")
	}

	def := &Definition{
		ID:      id,
		Label:   doc.Label,
		To:      []string(doc.To),
		Bcc:     []string(doc.Bcc),
		From:    doc.From,
		Subject: doc.Subject,
	}

	for i := 0; i+1 < len(doc.Fields.Content); i += 2 {
		name := doc.Fields.Content[i].Value

		field, err := parseField(validate, name, doc.Fields.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}

		def.Fields = append(def.Fields, field)
	}

	return def, nil
}

func parseField(validate *validator.Validate, name string, node *yaml.Node) (Field, error) {
	var doc fieldDocument
	if err := node.Decode(&doc); err != nil {
		return Field{}, err
	}

	if err := validate.Struct(doc); err != nil {
		return Field{}, err
	}

	method := doc.Derive
	if method == "" {
		method = doc.Method
	}

	derive, err := ParseDerivation(method)
	if err != nil {
		return Field{}, err
	}

	return Field{
		Name: name,
		FieldSpec: FieldSpec{
			Label:    doc.Label,
			Required: doc.Required,
			Honeypot: doc.Honeypot,
			Derive:   derive,
			Format:   Format(doc.Format),
		},
	}, nil
}
