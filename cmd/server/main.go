package main

import (
	"github.com/nguyentranbao-ct/deals-api/cmd"
)

func main() {
	cmd.Execute()
}
