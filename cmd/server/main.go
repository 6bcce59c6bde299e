package main

import "eventsapi/cmd/server/cmd"

// @title Events API
// @version 1.0
// @description CRUD backend for events.
// @BasePath /
func main() {
	cmd.Execute()
}
