package catalog

// Value is the value of a single translation entry. An entry is either
// translated text or pending: registered in the catalog but still awaiting
// a human translation. The zero Value is pending.
type Value struct {
	text string
	set  bool
}

// Translated returns a value carrying translated text.
func Translated(text string) Value {
	return Value{text: text, set: true}
}

// Pending returns a value marking a key as known but untranslated.
func Pending() Value {
	return Value{}
}

// IsPending reports whether the entry is still awaiting translation.
func (v Value) IsPending() bool {
	return !v.set
}

// Text returns the translated text. ok is false for pending entries.
func (v Value) Text() (text string, ok bool) {
	return v.text, v.set
}
