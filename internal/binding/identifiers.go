package binding

import (
	"regexp"
	"strings"
)

// keywords are never reported as undeclared.
var keywords = map[string]bool{
	"true": true, "false": true, "null": true, "nil": true,
	"this": true, "it": true, "super": true, "context": true,
	"if": true, "else": true, "when": true, "switch": true, "case": true, "default": true,
	"as": true, "is": true, "in": true, "and": true, "or": true, "xor": true, "not": true,
	"until": true, "downTo": true, "step": true, "return": true, "new": true,
	"let": true, "run": true, "also": true, "apply": true, "with": true,
	"View": true, "Math": true, "String": true, "Integer": true, "Boolean": true,
}

var (
	numericLiteral  = regexp.MustCompile(`\b\d[\w.]*`)
	identifierChain = regexp.MustCompile(`[A-Za-z_]\w*(\s*\??\.\s*[A-Za-z_]\w*)*`)
	dataPrefix      = regexp.MustCompile(`^data\s*\??\.`)
)

// Identifiers returns the free identifiers of expr in first-use order: the
// root of every member chain, with string and numeric literals, keywords
// and data.-prefixed chains removed. Members after "." are not free.
// Interpolations inside string literals ($name, ${expr}) are scanned too.
func Identifiers(expr string) []string {
	expr = strings.TrimSpace(expr)
	if dataPrefix.MatchString(expr) {
		return nil
	}

	s := interpolationBodies(expr)
	s = numericLiteral.ReplaceAllString(s, " ")

	var out []string

	seen := make(map[string]bool)

	for _, loc := range identifierChain.FindAllStringIndex(s, -1) {
		// A chain that continues a member access (".name", "?.name") or a
		// call result ("f().name") is not a root.
		if loc[0] > 0 {
			prev := strings.TrimRight(s[:loc[0]], " \t")
			if strings.HasSuffix(prev, ".") {
				continue
			}
		}

		chain := s[loc[0]:loc[1]]
		root := chain
		if i := strings.IndexAny(chain, " \t?."); i >= 0 {
			root = chain[:i]
		}

		if root == "data" && len(chain) > len(root) {
			continue
		}

		if keywords[root] || seen[root] {
			continue
		}

		seen[root] = true
		out = append(out, root)
	}

	return out
}

// interpolationBodies replaces every quoted literal in expr with the
// space-separated bodies of its $name and ${...} interpolations.
func interpolationBodies(expr string) string {
	var sb strings.Builder

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if c != '"' && c != '\'' && c != '`' {
			sb.WriteByte(c)
			continue
		}

		sb.WriteByte(' ')

		j := i + 1
		for j < len(expr) && expr[j] != c {
			switch {
			case expr[j] == '\\':
				j++
			case expr[j] == '$' && j+1 < len(expr) && expr[j+1] == '{':
				end := closingBrace(expr, j+1)
				sb.WriteString(expr[j+2 : end])
				sb.WriteByte(' ')
				j = end
			case expr[j] == '$':
				k := j + 1
				for k < len(expr) && isIdentByte(expr[k], k > j+1) {
					k++
				}

				sb.WriteString(expr[j+1 : k])
				sb.WriteByte(' ')
				j = k - 1
			}

			j++
		}

		i = j
	}

	return sb.String()
}

// closingBrace returns the index of the brace closing the one at open, or
// len(s) when it is unbalanced.
func closingBrace(s string, open int) int {
	depth := 0

	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return len(s)
}

func isIdentByte(c byte, digits bool) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || digits && c >= '0' && c <= '9'
}
