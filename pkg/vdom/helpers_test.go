package vdom

import "testing"

func TestFragmentAndIf(t *testing.T) {
	f := Fragment("a", If(false, Div()), If(true, Span()), nil)
	if f.Kind != KindFragment {
		t.Fatal("not a fragment")
	}
	if len(f.Children) != 4 {
		t.Fatalf("children = %d, want 4", len(f.Children))
	}
	if f.Children[1] != nil || f.Children[3] != nil {
		t.Error("hidden and nil children should stay as nil positions")
	}
	if f.Children[2] == nil || f.Children[2].Tag != "span" {
		t.Errorf("If(true) child = %v", f.Children[2])
	}
}

func TestTextContentAndFind(t *testing.T) {
	tree := Div(
		H1(Text("Total: "), Strong(Textf("%d", 3))),
		Ul(Li(ID("x"), Text("one"))),
	)

	if got := TextContent(tree); got != "Total: 3one" {
		t.Errorf("TextContent = %q", got)
	}
	li := Find(tree, func(n *VNode) bool { return n.Props["id"] == "x" })
	if li == nil || li.Tag != "li" {
		t.Fatalf("Find returned %+v", li)
	}
	if Find(tree, func(n *VNode) bool { return n.Tag == "table" }) != nil {
		t.Error("Find should return nil on no match")
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	tree := Div(Span(Text("hidden")), P(Text("shown")))
	var texts []string
	Walk(tree, func(n *VNode) bool {
		if n.Tag == "span" {
			return false
		}
		if n.Kind == KindText {
			texts = append(texts, n.Text)
		}
		return true
	})
	if len(texts) != 1 || texts[0] != "shown" {
		t.Errorf("Walk visited %v", texts)
	}
}
