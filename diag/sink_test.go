package diag

import (
	"testing"

	"github.com/lookbusy1344/weave/source"
)

func TestAddProducesRoots(t *testing.T) {
	s := NewSink()
	a := s.Add(Error, source.Span{Start: 0, End: 1}, "first")
	b := s.Add(Warning, source.Span{Start: 2, End: 3}, "second")

	roots := s.Roots()
	if len(roots) != 2 || roots[0] != a || roots[1] != b {
		t.Fatalf("Roots() = %v, want [%v %v]", roots, a, b)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestAddChildOrdering(t *testing.T) {
	s := NewSink()
	root := s.Add(Error, source.Span{Start: 0, End: 1}, "root")
	c1 := s.AddChild(root, Hint, source.Span{Start: 1, End: 2}, "first note")
	c2 := s.AddChild(root, Hint, source.Span{Start: 2, End: 3}, "second note")

	children := s.Children(root)
	if len(children) != 2 || children[0] != c1 || children[1] != c2 {
		t.Fatalf("Children(root) = %v, want [%v %v]", children, c1, c2)
	}
	if len(s.Roots()) != 1 {
		t.Errorf("AddChild entries must not appear in Roots()")
	}
}

func TestAddChildSingleChildRingCloses(t *testing.T) {
	s := NewSink()
	root := s.Add(Error, source.Span{Start: 0, End: 1}, "root")
	only := s.AddChild(root, Hint, source.Span{Start: 1, End: 2}, "only note")

	children := s.Children(root)
	if len(children) != 1 || children[0] != only {
		t.Fatalf("Children(root) = %v, want [%v]", children, only)
	}
}

func TestChildrenEmptyForLeaf(t *testing.T) {
	s := NewSink()
	leaf := s.Add(Info, source.Span{Start: 0, End: 1}, "leaf")
	if children := s.Children(leaf); children != nil {
		t.Errorf("Children(leaf) = %v, want nil", children)
	}
}

func TestHasErrors(t *testing.T) {
	s := NewSink()
	if s.HasErrors() {
		t.Error("empty sink must report no errors")
	}
	s.Add(Warning, source.Span{Start: 0, End: 1}, "just a warning")
	if s.HasErrors() {
		t.Error("sink with only warnings must report no errors")
	}
	s.Add(Error, source.Span{Start: 0, End: 1}, "an error")
	if !s.HasErrors() {
		t.Error("sink with an Error entry must report HasErrors true")
	}
}
