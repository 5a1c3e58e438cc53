package mapper

import "uigen/internal/component"

// Attribute namespaces.
const (
	NSAndroid = "android"
	NSApp     = "app"
)

// Attribute is one mapped target attribute.
type Attribute struct {
	Namespace string `yaml:"ns"`
	Name      string `yaml:"name"`
	Value     string `yaml:"value"`
}

// QualifiedName returns the attribute name with its namespace prefix.
func (a Attribute) QualifiedName() string {
	if a.Namespace == "" {
		return a.Name
	}

	return a.Namespace + ":" + a.Name
}

func android(name, value string) Attribute {
	return Attribute{Namespace: NSAndroid, Name: name, Value: value}
}

func app(name, value string) Attribute {
	return Attribute{Namespace: NSApp, Name: name, Value: value}
}

// Input is one attribute of a component being mapped.
type Input struct {
	Key           string
	Value         any
	ComponentType string
	ParentType    string
	Family        Family
}

// Rule claims an attribute key by returning true. A claimed key may map to
// no attributes, e.g. an alignment flag set to false.
type Rule struct {
	Name string
	Map  func(in Input) ([]Attribute, bool)
}

// Rules is the ordered dispatch table.
var Rules = []Rule{
	{Name: "dimension", Map: dimensionRule},
	{Name: "alignment", Map: alignmentRule},
	{Name: "text", Map: textRule},
	{Name: "visual", Map: visualRule},
	{Name: "input", Map: inputRule},
	{Name: "fallback", Map: fallbackRule},
}

var reservedKeys = map[string]bool{
	component.KeyType:       true,
	component.KeyChild:      true,
	component.KeyChildren:   true,
	component.KeySections:   true,
	component.KeyData:       true,
	component.KeySharedData: true,
	component.KeyStyle:      true,
	component.KeyInclude:    true,
}

// IsReserved reports whether key is structural rather than an attribute.
func IsReserved(key string) bool {
	return reservedKeys[key]
}

// Dispatch runs in through Rules and returns the attributes and the name of
// the rule that claimed the key.
func Dispatch(in Input) ([]Attribute, string, bool) {
	if IsReserved(in.Key) {
		return nil, "", false
	}

	for _, r := range Rules {
		if attrs, ok := r.Map(in); ok {
			return attrs, r.Name, true
		}
	}

	return nil, "", false
}

// MapAttribute maps one source attribute of a component placed inside
// parentType. It returns false when no rule claims the key.
func MapAttribute(key string, value any, componentType, parentType string) ([]Attribute, bool) {
	attrs, _, ok := Dispatch(Input{
		Key:           key,
		Value:         value,
		ComponentType: componentType,
		ParentType:    parentType,
		Family:        FamilyOf(parentType),
	})

	return attrs, ok
}
