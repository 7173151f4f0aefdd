package translations

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"resume-relay/internal/normalize"
)

func checkLanguages(entries *[]LanguageEntry) error {
	if len(*entries) == 0 {
		return errors.New("language catalog is empty")
	}
	for i := range *entries {
		e := &(*entries)[i]
		e.Code = strings.TrimSpace(e.Code)
		e.Name = strings.TrimSpace(e.Name)
	}
	return normalize.Each(*entries)
}

// checkLabelSet requires exactly the default keys, each with a non-blank value.
func checkLabelSet(labels LabelSet) error {
	if missing, extra := diffKeys(labels); len(missing) > 0 || len(extra) > 0 {
		return fmt.Errorf("label keys mismatch: missing=%v extra=%v", missing, extra)
	}
	for k, v := range labels {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("label %q is blank", k)
		}
	}
	return nil
}

func diffKeys(labels LabelSet) (missing, extra []string) {
	for k := range defaultLabels {
		if _, ok := labels[k]; !ok {
			missing = append(missing, k)
		}
	}
	for k := range labels {
		if _, ok := defaultLabels[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}

// sameShape reports whether got mirrors want: identical object keys, array
// lengths and JSON value kinds at every level.
func sameShape(path string, want, got any) error {
	switch w := want.(type) {
	case map[string]any:
		g, ok := got.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object", pathOrRoot(path))
		}
		if len(g) != len(w) {
			return fmt.Errorf("%s: expected %d keys, got %d", pathOrRoot(path), len(w), len(g))
		}
		for k, wv := range w {
			gv, ok := g[k]
			if !ok {
				return fmt.Errorf("%s: missing key %q", pathOrRoot(path), k)
			}
			if err := sameShape(path+"."+k, wv, gv); err != nil {
				return err
			}
		}
		return nil
	case []any:
		g, ok := got.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array", pathOrRoot(path))
		}
		if len(g) != len(w) {
			return fmt.Errorf("%s: expected %d items, got %d", pathOrRoot(path), len(w), len(g))
		}
		for i := range w {
			if err := sameShape(fmt.Sprintf("%s[%d]", path, i), w[i], g[i]); err != nil {
				return err
			}
		}
		return nil
	case string:
		if _, ok := got.(string); !ok {
			return fmt.Errorf("%s: expected string", pathOrRoot(path))
		}
		return nil
	case float64:
		if _, ok := got.(float64); !ok {
			return fmt.Errorf("%s: expected number", pathOrRoot(path))
		}
		return nil
	case bool:
		if _, ok := got.(bool); !ok {
			return fmt.Errorf("%s: expected boolean", pathOrRoot(path))
		}
		return nil
	case nil:
		if got != nil {
			return fmt.Errorf("%s: expected null", pathOrRoot(path))
		}
		return nil
	default:
		return fmt.Errorf("%s: unsupported value %T", pathOrRoot(path), want)
	}
}

func pathOrRoot(path string) string {
	if path == "" {
		return "$"
	}
	return path
}

// labelsFromAny converts a decoded translatedLabels value into a LabelSet.
func labelsFromAny(v any) (LabelSet, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected object", translatedLabelsKey)
	}
	out := make(LabelSet, len(obj))
	for k, raw := range obj {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s.%s: expected string", translatedLabelsKey, k)
		}
		out[k] = s
	}
	return out, nil
}
