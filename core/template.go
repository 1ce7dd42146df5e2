package core

import "fmt"

// TemplateError reports a format template whose verbs do not match the
// number of arguments supplied with it.
type TemplateError struct {
	Template string
	Verbs    int
	Args     int
	// Malformed is set when the template ends in a dangling '%'.
	Malformed bool
}

func (e *TemplateError) Error() string {
	if e.Malformed {
		return fmt.Sprintf("qlog: malformed template %q", e.Template)
	}
	return fmt.Sprintf("qlog: template %q expects %d argument(s), got %d", e.Template, e.Verbs, e.Args)
}

// CheckTemplate verifies that template consumes exactly nargs arguments.
// Templates using explicit argument indexes ("%[2]d") are not checked.
func CheckTemplate(template string, nargs int) error {
	verbs, indexed, malformed := countVerbs(template)
	if indexed {
		return nil
	}
	if malformed || verbs != nargs {
		return &TemplateError{Template: template, Verbs: verbs, Args: nargs, Malformed: malformed}
	}
	return nil
}

// countVerbs counts the arguments a printf-style template consumes,
// including '*' widths and precisions.
func countVerbs(s string) (n int, indexed, malformed bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		i++
		if i < len(s) && s[i] == '%' {
			continue
		}
		for i < len(s) && isFlag(s[i]) {
			i++
		}
		if i < len(s) && s[i] == '[' {
			return n, true, false
		}
		if i < len(s) && s[i] == '*' {
			n++
			i++
		} else {
			i = skipDigits(s, i)
		}
		if i < len(s) && s[i] == '.' {
			i++
			if i < len(s) && s[i] == '*' {
				n++
				i++
			} else {
				i = skipDigits(s, i)
			}
		}
		if i < len(s) && s[i] == '[' {
			return n, true, false
		}
		if i >= len(s) {
			return n, false, true
		}
		n++
	}
	return n, false, false
}

func isFlag(c byte) bool {
	switch c {
	case '+', '-', '#', ' ', '0':
		return true
	}
	return false
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
