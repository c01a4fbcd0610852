package main

import "github.com/railwayapp/dbenv/cmd/dbenv"

func main() {
	dbenv.Execute()
}
