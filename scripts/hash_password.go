//go:build ignore

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/petbazaar/petbazaar-api/api/handlers"
)

// Quick utility to reset a user's password by hand
// Usage: go run scripts/hash_password.go <email> <password>
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run scripts/hash_password.go <email> <password>")
		os.Exit(1)
	}

	email, password := os.Args[1], os.Args[2]

	// the api only hashes the first 72 bytes
	if len(password) > 72 {
		password = password[:72]
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), handlers.PasswordCost)
	if err != nil {
		fmt.Printf("Error generating hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bcrypt Hash: %s\n", string(hashedPassword))
	fmt.Printf("\nTo update in MongoDB, run:\n")
	fmt.Printf("db.users.updateOne(\n")
	fmt.Printf("  {\"email\": %q},\n", email)
	fmt.Printf("  {$set: {\"password\": \"%s\"}}\n", string(hashedPassword))
	fmt.Printf(")\n")
}
