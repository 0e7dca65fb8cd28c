// tokengen mints a development bearer token for the bookstore API.
//
//	go run ./cmd/tokengen -authid 1 -email admin@example.com -role admin -hours 24
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/emurillo541/collegebookstore/internal/middleware"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	authID := flag.Int64("authid", 1, "auth id claim")
	email := flag.String("email", "admin@example.com", "email claim")
	role := flag.String("role", "admin", "role claim")
	hours := flag.Int("hours", 24, "token lifetime in hours")
	flag.Parse()

	token, err := middleware.GenerateToken(*authID, *email, *role, *hours)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
