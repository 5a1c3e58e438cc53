package mapper

//go:generate go tool stringer -type=Family -linecomment -output=family_string.go

// Family is the layout family of a container, which decides how children
// express alignment.
type Family int

const (
	FamilyNone     Family = iota // none
	FamilyFlow                   // flow
	FamilyAnchor                 // anchor
	FamilyRelative               // relative
)

var families = map[string]Family{
	"VStack":         FamilyFlow,
	"HStack":         FamilyFlow,
	"ZStack":         FamilyFlow,
	"ScrollView":     FamilyFlow,
	"LinearLayout":   FamilyFlow,
	"FrameLayout":    FamilyFlow,
	"View":           FamilyAnchor,
	"ConstraintView": FamilyAnchor,
	"Relative":       FamilyRelative,
	"RelativeLayout": FamilyRelative,
	"AbsoluteLayout": FamilyRelative,
}

// FamilyOf returns the layout family of a parent component type. Unknown
// and empty types have no family.
func FamilyOf(parentType string) Family {
	return families[parentType]
}
