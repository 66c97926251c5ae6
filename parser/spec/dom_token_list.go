package spec

// DOMTokenList is https://dom.spec.whatwg.org/#interface-domtokenlist
type DOMTokenList []string

func (l DOMTokenList) Length() int {
	return len(l)
}

func (l DOMTokenList) Item(i int) string {
	if i < 0 || i >= len(l) {
		return ""
	}
	return l[i]
}

func (l DOMTokenList) Contains(token string) bool {
	for _, t := range l {
		if t == token {
			return true
		}
	}
	return false
}
