package model

import "github.com/bwmarrin/snowflake"

var idNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(1)
	if err != nil {
		// Only reachable with an out-of-range node number.
		panic(err)
	}
	idNode = node
}

// NewID returns a fresh time-ordered numeric string identity. IDs sort by
// creation time and never collide with the placeholder-* namespace used by
// gallery slots.
func NewID() string {
	return idNode.Generate().String()
}
