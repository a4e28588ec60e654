package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolveString implements Reader. "%name%" is replaced by the parameter
// value and "%%" by a literal '%'. Only scalar parameters can be
// interpolated; a parameter value may itself contain placeholders.
func (c *Container) ResolveString(s string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.resolveString(s, nil)
}

func (c *Container) resolveString(s string, resolving []string) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}

	var b strings.Builder

	for i := 0; i < len(s); {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++

			continue
		}

		if i+1 < len(s) && s[i+1] == '%' {
			b.WriteByte('%')
			i += 2

			continue
		}

		end := strings.IndexByte(s[i+1:], '%')
		if end < 0 {
			return "", fmt.Errorf("unterminated parameter placeholder in %q", s)
		}

		name := s[i+1 : i+1+end]
		i += end + 2

		for _, r := range resolving {
			if r == name {
				return "", fmt.Errorf("%w: parameter %q references itself", ErrCircularReference, name)
			}
		}

		v, ok := c.parameters[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrParameterNotFound, name)
		}

		str, err := scalarString(name, v)
		if err != nil {
			return "", err
		}

		str, err = c.resolveString(str, append(resolving, name))
		if err != nil {
			return "", err
		}

		b.WriteString(str)
	}

	return b.String(), nil
}

func scalarString(name string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("parameter %q of type %T cannot be interpolated into a string", name, v)
	}
}
