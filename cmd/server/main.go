package main

import "github.com/GriffinCanCode/RetreatCatalog/backend/internal/cli"

func main() {
	cli.Execute()
}
