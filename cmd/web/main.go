package main

import "hrmail_backend/internal/app"

func main() {
	app.Run()
}
