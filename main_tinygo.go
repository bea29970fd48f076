//go:build tinygo && baremetal

package main

import (
	"vnaplot/app"
	"vnaplot/hal"
)

func main() {
	app.Run(hal.New())
}
