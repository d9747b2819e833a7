// Command appium-go is a small command-line client for Appium servers.
package main

import "github.com/devicelab-dev/appium-go/pkg/cli"

func main() {
	cli.Execute()
}
