package tags

import "strings"

// List is an ordered tag list. Source order is kept.
type List[K comparable] []Token[K]

// Find returns the first token of kind.
func (l List[K]) Find(kind K) (Token[K], bool) {
	for _, t := range l {
		if t.Kind == kind {
			return t, true
		}
	}
	return Token[K]{}, false
}

// All returns every token of kind in order.
func (l List[K]) All(kind K) []Token[K] {
	var out []Token[K]
	for _, t := range l {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// Has reports whether any token of kind is present.
func (l List[K]) Has(kind K) bool {
	_, ok := l.Find(kind)
	return ok
}

// Put applies a freshly decoded token. Repeatable kinds append; any other
// kind replaces the existing token of that kind in place.
func (l *List[K]) Put(tok Token[K]) {
	switch {
	case tok.Repeatable():
		*l = append(*l, tok)
	case tok.IsFlag():
		if !l.Has(tok.Kind) {
			*l = append(*l, tok)
		}
	default:
		for i := range *l {
			if (*l)[i].Kind == tok.Kind {
				(*l)[i] = tok
				return
			}
		}
		*l = append(*l, tok)
	}
}

// Remove deletes tokens with the given key. A non-empty value narrows the
// match to tokens whose values equal it or start with it. Returns the count
// removed; removing an absent tag is a no-op.
func (l *List[K]) Remove(key, value string) int {
	kept := (*l)[:0]
	removed := 0
	for _, t := range *l {
		if t.Key == key && matchesValue(t, value) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	clear((*l)[len(kept):])
	*l = kept
	return removed
}

func matchesValue[K comparable](t Token[K], value string) bool {
	if value == "" {
		return true
	}
	got := strings.Join(t.Value.Values(), ":")
	return got == value || strings.HasPrefix(got, value+":")
}

// Clone returns an independent copy of the list.
func (l List[K]) Clone() List[K] {
	if l == nil {
		return nil
	}
	out := make(List[K], len(l))
	copy(out, l)
	return out
}

// Encode returns every token in bracketed source form.
func (l List[K]) Encode() []string {
	out := make([]string, len(l))
	for i, t := range l {
		out[i] = t.Encode()
	}
	return out
}

// Merge overlays over onto a copy of base. A repeatable kind present in over
// replaces base's set of that kind. A valued tag replaces base's only when
// its value is non-default. Anything base lacks is appended.
func Merge[K comparable](base, over List[K]) List[K] {
	return merge(base, over, true)
}

// MergeDistinct is Merge except that repeatable kinds are unioned: each
// token of over is appended unless base already holds one with the same
// key and values.
func MergeDistinct[K comparable](base, over List[K]) List[K] {
	return merge(base, over, false)
}

func merge[K comparable](base, over List[K], replaceSets bool) List[K] {
	out := base.Clone()

	if replaceSets {
		replaced := make(map[K]bool)
		for _, t := range over {
			if t.Repeatable() && !replaced[t.Kind] {
				replaced[t.Kind] = true
				out = out.without(t.Kind)
			}
		}
	}

	for _, t := range over {
		switch {
		case t.Repeatable():
			if replaceSets || !out.contains(t) {
				out = append(out, t)
			}
		case t.IsFlag():
			if !out.Has(t.Kind) {
				out = append(out, t)
			}
		default:
			idx := out.index(t.Kind)
			if idx < 0 {
				out = append(out, t)
			} else if !t.Value.IsDefault() {
				out[idx] = t
			}
		}
	}
	return out
}

func (l List[K]) contains(tok Token[K]) bool {
	raw := tok.Raw()
	for _, t := range l {
		if t.Kind == tok.Kind && t.Raw() == raw {
			return true
		}
	}
	return false
}

func (l List[K]) index(kind K) int {
	for i, t := range l {
		if t.Kind == kind {
			return i
		}
	}
	return -1
}

func (l List[K]) without(kind K) List[K] {
	out := l[:0]
	for _, t := range l {
		if t.Kind != kind {
			out = append(out, t)
		}
	}
	return out
}
