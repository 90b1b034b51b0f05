package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/shival-gupta/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
