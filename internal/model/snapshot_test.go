package model

import "testing"

func sampleTree() []ViewNode {
	return []ViewNode{
		{
			ViewID: "root", Type: "Other",
			Children: []ViewNode{
				{ViewID: "btn1", Type: "Button", Label: "Save"},
				{
					ViewID: "group1", Type: "Other",
					Children: []ViewNode{
						{ViewID: "txt1", Type: "StaticText", Value: "Hello"},
						{ViewID: "btn2", Type: "Button", Label: "Cancel"},
					},
				},
			},
		},
	}
}

func TestPruneDepth_Unlimited(t *testing.T) {
	tree := sampleTree()
	result := PruneDepth(tree, 0)
	if CountNodes(result) != 5 {
		t.Errorf("expected 5 nodes, got %d", CountNodes(result))
	}
}

func TestPruneDepth_RootsOnly(t *testing.T) {
	result := PruneDepth(sampleTree(), 1)
	if len(result) != 1 {
		t.Fatalf("expected 1 root, got %d", len(result))
	}
	if result[0].Children != nil {
		t.Errorf("expected children pruned, got %d", len(result[0].Children))
	}
}

func TestPruneDepth_TwoLevels(t *testing.T) {
	result := PruneDepth(sampleTree(), 2)
	if CountNodes(result) != 3 {
		t.Errorf("expected 3 nodes, got %d", CountNodes(result))
	}
	// Original tree must be untouched.
	tree := sampleTree()
	if CountNodes(tree) != 5 {
		t.Errorf("source tree mutated: %d nodes", CountNodes(tree))
	}
}

func TestFilterByType_PromotesDescendants(t *testing.T) {
	result := FilterByType(sampleTree(), []string{"button"})
	if len(result) != 2 {
		t.Fatalf("expected 2 buttons promoted to top level, got %d", len(result))
	}
	if result[0].ViewID != "btn1" || result[1].ViewID != "btn2" {
		t.Errorf("unexpected order: %s, %s", result[0].ViewID, result[1].ViewID)
	}
}

func TestFilterByType_KeepsMatchingAncestors(t *testing.T) {
	result := FilterByType(sampleTree(), []string{"Other"})
	if len(result) != 1 {
		t.Fatalf("expected 1 root, got %d", len(result))
	}
	if len(result[0].Children) != 1 || result[0].Children[0].ViewID != "group1" {
		t.Errorf("expected nested group kept under root")
	}
}

func TestFilterByType_NoTypes(t *testing.T) {
	tree := sampleTree()
	result := FilterByType(tree, nil)
	if CountNodes(result) != 5 {
		t.Errorf("expected passthrough, got %d nodes", CountNodes(result))
	}
}
