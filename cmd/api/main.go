package main

import (
	"etfbuilder/cmd"
	"fmt"
	"log"
	"os"
)

func main() {
	fmt.Println(os.Getenv("commit_hash"))
	apiHandler, secrets, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(secrets.Port)
	if err != nil {
		log.Fatal(err)
	}
}
