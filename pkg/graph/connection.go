// Package graph models the slice of the surrounding editor the panel engine
// needs to see: directed connections between node handles and the handle
// layout derived from a node's schemas.
package graph

import "github.com/goliatone/go-nodepanel/pkg/schema"

// Connection is a directed edge from one node's output handle to another
// node's input handle. Handles are identified by the dotted boundary form of
// their path; only top-level schema properties are wireable, so the handle
// name is a single segment in practice.
type Connection struct {
	SourceNodeID string `json:"sourceNodeId" yaml:"sourceNodeId"`
	SourceHandle string `json:"sourceHandle" yaml:"sourceHandle"`
	TargetNodeID string `json:"targetNodeId" yaml:"targetNodeId"`
	TargetHandle string `json:"targetHandle" yaml:"targetHandle"`
}

// IsConnected reports whether some connection targets exactly this node and
// path. The match is exact: a connection on a top-level handle makes that
// subtree read-only in the UI, but descendant sub-paths are not separately
// considered connected.
func IsConnected(nodeID string, path schema.Path, connections []Connection) bool {
	handle := path.String()
	for _, connection := range connections {
		if connection.TargetNodeID == nodeID && connection.TargetHandle == handle {
			return true
		}
	}
	return false
}
