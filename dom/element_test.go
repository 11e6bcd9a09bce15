package dom

import (
	"reflect"
	"testing"
)

func TestElementClasses(t *testing.T) {
	e := NewElement("div")
	if e.HasClass("a") {
		t.Fatal("new element should have no classes")
	}
	e.AddClass("a", "b", "a", "")
	if got, want := e.Classes(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Classes() = %v, want %v", got, want)
	}
	e.RemoveClass("a")
	if e.HasClass("a") {
		t.Error("class a should have been removed")
	}
	if !e.HasClass("b") {
		t.Error("class b should still be present")
	}
	e.RemoveClass("not-there") // no-op
	if got, want := e.Classes(), []string{"b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Classes() = %v, want %v", got, want)
	}
}

func TestElementSetTextReplacesContent(t *testing.T) {
	e := NewElement("div")
	e.AppendChild(NewElement("span")).SetText("Hello")
	e.AppendChild(NewElement("span")).SetText(" World")
	if got, want := e.Text(), "Hello World"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}

	e.SetText("replaced")
	if got, want := e.Text(), "replaced"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	if e.NumChildren() != 0 {
		t.Fatalf("SetText should remove children, still got %d", e.NumChildren())
	}
}

func TestElementAppendChildReparents(t *testing.T) {
	a := NewElement("div")
	b := NewElement("div")
	child := NewElement("span")

	a.AppendChild(child)
	if child.Parent() != a {
		t.Fatal("child should be parented to a")
	}
	b.AppendChild(child)
	if child.Parent() != b {
		t.Fatal("child should be re-parented to b")
	}
	if a.NumChildren() != 0 {
		t.Fatal("child should have been detached from a")
	}
}

func TestElementFindByClass(t *testing.T) {
	scope := NewElement("div")
	first := scope.AppendChild(NewDiv("first", "my-output"))
	nested := scope.AppendChild(NewElement("section")).AppendChild(NewDiv("nested", "my-output", "extra"))
	scope.AppendChild(NewDiv("other", "other-output"))

	found := scope.FindByClass("my-output")
	if got, want := len(found), 2; got != want {
		t.Fatalf("found %d elements, want %d", got, want)
	}
	if found[0] != first || found[1] != nested {
		t.Fatal("FindByClass should return matches in document order")
	}

	// The scope itself never matches
	scope.AddClass("my-output")
	if got := len(scope.FindByClass("my-output")); got != 2 {
		t.Fatalf("found %d elements, want 2, the scope itself must not match", got)
	}

	// No caching: elements added after the last call are found
	added := scope.AppendChild(NewDiv("added", "my-output"))
	found = scope.FindByClass("my-output")
	if got, want := len(found), 3; got != want {
		t.Fatalf("found %d elements after adding one, want %d", got, want)
	}
	if found[2] != added {
		t.Fatal("newly added element missing from fresh query")
	}

	// and removed elements are not
	scope.RemoveChild(first)
	if got, want := len(scope.FindByClass("my-output")), 2; got != want {
		t.Fatalf("found %d elements after removing one, want %d", got, want)
	}
}

func TestElementAttrs(t *testing.T) {
	e := NewElement("div")
	if e.ID() != "" {
		t.Fatal("new element should have no id")
	}
	e.SetID("out1").SetAttr("style", "height: 200px")
	if got, want := e.ID(), "out1"; got != want {
		t.Fatalf("ID() = %q, want %q", got, want)
	}
	if got, want := e.Attr("style"), "height: 200px"; got != want {
		t.Fatalf("Attr(style) = %q, want %q", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("SetAttr(class) should panic")
		}
	}()
	e.SetAttr("class", "nope")
}
