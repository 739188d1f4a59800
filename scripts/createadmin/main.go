package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/Kenyi45/task-manager/internal/database"
	"github.com/Kenyi45/task-manager/internal/model"
	"github.com/Kenyi45/task-manager/internal/user"
)

func main() {
	var (
		username = flag.String("username", "", "username for the new account (required)")
		email    = flag.String("email", "", "email for the new account")
		password = flag.String("password", "", "password for the new account (required)")
		dbPath   = flag.String("db", "data/tasks.db", "path to the sqlite database file")
	)
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Usage: createadmin -username <name> -password <secret> [-email <addr>] [-db <path>]")
		os.Exit(1)
	}

	db, err := database.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	users := user.NewRepository(db)

	exists, err := users.ExistsByUsername(ctx, *username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to check username: %v\n", err)
		os.Exit(1)
	}
	if exists {
		fmt.Fprintf(os.Stderr, "User %q already exists\n", *username)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	err = users.Create(ctx, &model.User{
		Username:     *username,
		Email:        *email,
		PasswordHash: string(hash),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created user %q\n", *username)
}
