package binding

import (
	"regexp"
	"strings"
)

// Rule is one forbidden expression shape.
type Rule struct {
	Name    string
	Message string
	Raw     bool // match against the expression with string literals intact
	Pattern *regexp.Regexp
}

// Rules is the ordered list of forbidden shapes. Non-raw patterns run on
// the expression with string literals masked.
var Rules = []Rule{
	{
		Name:    "ternary",
		Message: "ternary operator",
		Pattern: regexp.MustCompile(`(^|[^?])\?[^.?:][^:]*:`),
	},
	{
		Name:    "conditional",
		Message: "conditional expression",
		Pattern: regexp.MustCompile(`\b(if|else|when|switch|case)\b`),
	},
	{
		Name:    "comparison",
		Message: "comparison operator",
		Pattern: regexp.MustCompile(`==|!=|<=|>=|(^|[^-<>=!])>($|[^>=])|(^|[^<])<($|[^<=])`),
	},
	{
		Name:    "arithmetic",
		Message: "arithmetic operator",
		Pattern: regexp.MustCompile(`\+\+|--|[\w)\]]\s*[-+*/%]\s*[\w(]`),
	},
	{
		Name:    "logical",
		Message: "logical operator",
		Pattern: regexp.MustCompile(`&&|\|\||\b(and|or|xor)\b`),
	},
	{
		Name:    "null-coalescing",
		Message: "null-coalescing operator",
		Pattern: regexp.MustCompile(`\?:|\?\?`),
	},
	{
		Name:    "call",
		Message: "method call with arguments",
		Pattern: regexp.MustCompile(`[\w)\]]\(\s*[^)\s]`),
	},
	{
		Name:    "interpolation",
		Message: "string interpolation",
		Raw:     true,
		Pattern: regexp.MustCompile(`["'][^"']*\$[{A-Za-z_]`),
	},
	{
		Name:    "subscript",
		Message: "complex subscript",
		Pattern: regexp.MustCompile(`\[[^\]]*[^\d\s\]][^\]]*\]`),
	},
	{
		Name:    "cast",
		Message: "type cast",
		Pattern: regexp.MustCompile(`\bas\??\s+[A-Za-z_]|\bis\s+[A-Z]`),
	},
	{
		Name:    "not-null-assertion",
		Message: "not-null assertion",
		Pattern: regexp.MustCompile(`!!`),
	},
	{
		Name:    "lambda",
		Message: "lambda expression",
		Pattern: regexp.MustCompile(`->|\{[^}]*\}`),
	},
	{
		Name:    "range",
		Message: "range expression",
		Pattern: regexp.MustCompile(`\.\.|\b(until|downTo|step)\b`),
	},
	{
		Name:    "scope-function",
		Message: "scope function call",
		Pattern: regexp.MustCompile(`\.\s*(let|run|also|apply|takeIf|takeUnless)\b|\bwith\s*\(`),
	},
}

// allowed shapes are exempt from every rule.
var allowed = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Za-z_]\w*$`),                                  // identifier
	regexp.MustCompile(`^[A-Za-z_]\w*(\??\.[A-Za-z_]\w*)+$`),              // property path, optionally chained
	regexp.MustCompile(`^!\s*[A-Za-z_]\w*(\??\.[A-Za-z_]\w*)*$`),          // negation
	regexp.MustCompile(`^[A-Za-z_]\w*(\??\.[A-Za-z_]\w*)*\[\s*\d+\s*\]$`), // constant index
	regexp.MustCompile(`^on[A-Z]\w*$`),                                    // handler reference
	regexp.MustCompile(`^data(\??\.[A-Za-z_]\w*)+$`),                      // data path
}

// Allowed reports whether expr is one of the trivially safe shapes.
func Allowed(expr string) bool {
	expr = strings.TrimSpace(expr)

	for _, re := range allowed {
		if re.MatchString(expr) {
			return true
		}
	}

	return false
}

// Shapes returns the forbidden rules expr matches, in rule order.
func Shapes(expr string) []Rule {
	expr = strings.TrimSpace(expr)
	if Allowed(expr) {
		return nil
	}

	masked := maskStrings(expr)

	var out []Rule

	for _, r := range Rules {
		subject := masked
		if r.Raw {
			subject = expr
		}

		if r.Pattern.MatchString(subject) {
			out = append(out, r)
		}
	}

	return out
}

// maskStrings replaces every quoted literal (single, double or backtick)
// with 0. An unterminated literal runs to the end.
func maskStrings(expr string) string {
	var sb strings.Builder

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if c != '"' && c != '\'' && c != '`' {
			sb.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(expr) && expr[j] != c {
			if expr[j] == '\\' {
				j++
			}

			j++
		}

		sb.WriteByte('0')
		i = j
	}

	return sb.String()
}
