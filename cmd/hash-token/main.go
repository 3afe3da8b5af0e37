// CLI tool to create an API access token and its bcrypt hash for ACCESS_TOKEN_HASH.
// Enter a token or leave it empty to generate one.
// Usage: go run ./cmd/hash-token
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Token (leave empty to generate): ")
	token, _ := reader.ReadString('\n')
	token = strings.TrimSpace(token)
	if token == "" {
		token = uuid.New().String()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nAccess token created.\n")
	fmt.Printf("  Token:             %s\n", token)
	fmt.Printf("  ACCESS_TOKEN_HASH: %s\n", hash)
	fmt.Printf("\nClients send it as: Authorization: Bearer %s\n", token)
}
