package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to bookmarkd CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("bm %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: (l)ist, add, rm, whoami, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "add":
			_ = a.Add(ctx)
		case "rm":
			_ = a.Remove(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
