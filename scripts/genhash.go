// One-off: go run scripts/genhash.go [password]
// Prints a bcrypt hash and a fresh bearer token for seeding a users row by hand.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	password := "admin"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		panic(err)
	}
	b := make([]byte, 48)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	fmt.Printf("password_hash: %s\ntoken: %s\n", h, hex.EncodeToString(b))
}
