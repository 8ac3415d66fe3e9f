package uid

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/gommon/log"
)

var (
	node    *snowflake.Node
	once    sync.Once
	initErr error
)

// Init sets up the node used by Generate. Only the first call has effect.
func Init(nodeID int64) error {
	once.Do(func() {
		node, initErr = snowflake.NewNode(nodeID)
		if initErr != nil {
			initErr = fmt.Errorf("failed to initialize snowflake node %d: %w", nodeID, initErr)
		}
	})
	return initErr
}

// Generate returns a new id, increasing over time within a node.
func Generate() int64 {
	if node == nil {
		log.Fatalf("uid package not initialized")
	}
	return node.Generate().Int64()
}

// Format renders an id in its short base36 form, or "" for the zero id.
func Format(id int64) string {
	if id == 0 {
		return ""
	}
	return snowflake.ID(id).Base36()
}
