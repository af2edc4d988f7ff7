package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "coach",
		Short: "Conversational fitness coaching assistant",
		Long:  "coach generates personalized workout, meal, hydration, goal and recovery suggestions from free-text conversation.",
	}
	root.AddCommand(serveCmd(), chatCmd(), demoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
