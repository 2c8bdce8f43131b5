package model

import "strings"

// ViewNode is one node of the raw view-hierarchy snapshot served by the
// in-app introspection bridge. The tree is a passthrough: nothing here is
// derived locally, every field comes from the running app.
type ViewNode struct {
	ViewID   string     `yaml:"viewId"             json:"viewId"`
	Type     string     `yaml:"type"               json:"type"`
	Label    string     `yaml:"label,omitempty"    json:"label,omitempty"`
	Value    string     `yaml:"value,omitempty"    json:"value,omitempty"`
	Frame    Rect       `yaml:"frame"              json:"frame"`
	Children []ViewNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// PruneDepth returns a copy of nodes truncated to the given depth.
// Depth 1 keeps only the roots; 0 or negative means unlimited.
func PruneDepth(nodes []ViewNode, depth int) []ViewNode {
	if depth <= 0 {
		return nodes
	}
	result := make([]ViewNode, len(nodes))
	for i, n := range nodes {
		result[i] = n
		if depth == 1 {
			result[i].Children = nil
		} else {
			result[i].Children = PruneDepth(n.Children, depth-1)
		}
	}
	return result
}

// FilterByType returns nodes whose type matches one of the given types
// (case-insensitive). A non-matching ancestor of a matching node is dropped
// and its matching descendants promoted in its place.
func FilterByType(nodes []ViewNode, types []string) []ViewNode {
	if len(types) == 0 {
		return nodes
	}
	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[strings.ToLower(t)] = true
	}
	return filterByTypeSet(nodes, typeSet)
}

func filterByTypeSet(nodes []ViewNode, typeSet map[string]bool) []ViewNode {
	var result []ViewNode
	for _, n := range nodes {
		var filteredChildren []ViewNode
		if len(n.Children) > 0 {
			filteredChildren = filterByTypeSet(n.Children, typeSet)
		}

		if typeSet[strings.ToLower(n.Type)] {
			filtered := n
			filtered.Children = filteredChildren
			result = append(result, filtered)
		} else if len(filteredChildren) > 0 {
			// Node doesn't match, but has matching descendants: include them directly
			result = append(result, filteredChildren...)
		}
	}
	return result
}

// CountNodes returns the total number of nodes in the tree.
func CountNodes(nodes []ViewNode) int {
	count := 0
	for _, n := range nodes {
		count += 1 + CountNodes(n.Children)
	}
	return count
}
