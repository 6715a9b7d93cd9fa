/*
Copyright © 2025 tieubaoca
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/tieubaoca/answer-engine/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// Credentials may also come from the real environment, so a missing
	// .env file is not an error.
	godotenv.Load()
}
