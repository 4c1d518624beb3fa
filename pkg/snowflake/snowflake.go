package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenString base32 形式，适合放在响应头里
func GenString() string {
	return node.Generate().Base32()
}
