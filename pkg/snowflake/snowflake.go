package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 笔记、日记等内容的主键
func GenID() uint64 {
	return uint64(node.Generate().Int64())
}
