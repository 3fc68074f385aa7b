package main

import "github.com/todoflow-labs/firebase-config/internal/app"

func main() {
	app.Run()
}
