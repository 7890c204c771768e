package main

import (
	"os"

	dataagentcmder "github.com/harshitMehrag/snowflake-langgraph-agent/cmd/dataagent"
)

func main() {
	cmd := dataagentcmder.NewDataagentCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
