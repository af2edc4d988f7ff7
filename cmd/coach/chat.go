package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/yourname/fitcoach/internal"
	"github.com/yourname/fitcoach/internal/engine"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat session on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			bot := engine.New(internal.NopLogger{})
			sess := engine.NewSession(uuid.NewString())

			fmt.Println("💬 Fitness coach ready. Type 'quit' to leave.")
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				reply := bot.Respond(sess, line)
				fmt.Println(reply)
				if line == "quit" || line == "exit" || line == "bye" {
					break
				}
			}
			return scanner.Err()
		},
	}
}
