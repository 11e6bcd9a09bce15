// Package dom provides the element tree that output bindings render into.
//
// It models only what the binding protocol needs from a document:
// tags, attributes, an ordered class list, text content, and children.
// Class based queries walk the tree fresh on every call so that
// elements added or removed between two renders are always reflected
// in the next discovery result.
package dom

// Element is a node in the document tree.
//
// An Element is not safe for concurrent use. The binding protocol
// mutates elements from a single event-processing goroutine only.
type Element struct {
	tag      string
	attrs    map[string]string
	classes  []string
	text     string
	rawHTML  string
	children []*Element
	parent   *Element
}

// NewElement returns a new unattached element with the passed tag.
func NewElement(tag string) *Element {
	return &Element{tag: tag}
}

// NewDiv returns a new div element with the passed id and classes.
// An empty id will not be set as attribute.
func NewDiv(id string, classes ...string) *Element {
	div := NewElement("div")
	if id != "" {
		div.SetID(id)
	}
	return div.AddClass(classes...)
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// SetAttr sets the attribute key to value and returns the element.
// The "class" attribute is managed through AddClass and RemoveClass
// and must not be set here.
func (e *Element) SetAttr(key, value string) *Element {
	if key == "class" {
		panic("use AddClass to modify the class attribute")
	}
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[key] = value
	return e
}

// Attr returns the value of the attribute key
// or an empty string if the attribute is not set.
func (e *Element) Attr(key string) string { return e.attrs[key] }

// SetID sets the element's id attribute and returns the element.
func (e *Element) SetID(id string) *Element { return e.SetAttr("id", id) }

// ID returns the element's id attribute.
func (e *Element) ID() string { return e.Attr("id") }

// AddClass adds the passed class names to the element's class list,
// keeping the list free of duplicates, and returns the element.
func (e *Element) AddClass(names ...string) *Element {
	for _, name := range names {
		if name == "" || e.HasClass(name) {
			continue
		}
		e.classes = append(e.classes, name)
	}
	return e
}

// RemoveClass removes the passed class names from the element's
// class list and returns the element.
func (e *Element) RemoveClass(names ...string) *Element {
	for _, name := range names {
		for i, class := range e.classes {
			if class == name {
				e.classes = append(e.classes[:i], e.classes[i+1:]...)
				break
			}
		}
	}
	return e
}

// HasClass reports if the element's class list contains name.
func (e *Element) HasClass(name string) bool {
	for _, class := range e.classes {
		if class == name {
			return true
		}
	}
	return false
}

// Classes returns a copy of the element's class list.
func (e *Element) Classes() []string {
	if len(e.classes) == 0 {
		return nil
	}
	classes := make([]string, len(e.classes))
	copy(classes, e.classes)
	return classes
}

// SetText replaces the element's entire content,
// children included, with the passed text.
func (e *Element) SetText(text string) *Element {
	e.removeAllChildren()
	e.rawHTML = ""
	e.text = text
	return e
}

// Text returns the concatenated text content
// of the element and all its descendants.
func (e *Element) Text() string {
	text := e.text
	for _, child := range e.children {
		text += child.Text()
	}
	return text
}

// SetHTML replaces the element's entire content with raw markup
// that will be written verbatim by WriteHTML.
// Callers are responsible for sanitizing the markup.
func (e *Element) SetHTML(raw string) *Element {
	e.removeAllChildren()
	e.text = ""
	e.rawHTML = raw
	return e
}

// AppendChild appends child to the element, detaching it from any
// previous parent, and returns the child for further building.
// Appending clears text or raw HTML content previously set on the element.
func (e *Element) AppendChild(child *Element) *Element {
	if child == e {
		panic("cannot append element to itself")
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	e.text = ""
	e.rawHTML = ""
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// RemoveChild removes child from the element's children
// and reports if it was present.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// ReplaceChildren replaces the element's entire content
// with the passed children.
func (e *Element) ReplaceChildren(children ...*Element) *Element {
	e.removeAllChildren()
	e.text = ""
	e.rawHTML = ""
	for _, child := range children {
		e.AppendChild(child)
	}
	return e
}

// Children returns a copy of the element's child list.
func (e *Element) Children() []*Element {
	if len(e.children) == 0 {
		return nil
	}
	children := make([]*Element, len(e.children))
	copy(children, e.children)
	return children
}

// NumChildren returns the number of children of the element.
func (e *Element) NumChildren() int { return len(e.children) }

// Parent returns the element's parent or nil for a detached element.
func (e *Element) Parent() *Element { return e.parent }

// FindByClass returns all descendants of the element, in depth first
// document order, whose class list contains name. The element itself
// is never part of the result.
//
// The tree is walked anew on every call, there is no caching,
// so the result always reflects the current tree.
func (e *Element) FindByClass(name string) []*Element {
	var found []*Element
	for _, child := range e.children {
		if child.HasClass(name) {
			found = append(found, child)
		}
		found = append(found, child.FindByClass(name)...)
	}
	return found
}

func (e *Element) removeAllChildren() {
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
}
