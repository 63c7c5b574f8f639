package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themebuilder/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "API tokens",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue <subject>",
	Short: "Issue a bearer token for the theme write API",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			exitWithError(err)
		}

		scope, _ := cmd.Flags().GetString("scope")
		token, err := auth.GenerateToken(args[0], scope)
		if err != nil {
			exitWithError(err)
		}

		fmt.Println(token)
	},
}

func init() {
	tokenIssueCmd.Flags().String("scope", auth.ScopeWrite, "Token scope: themes:write or admin")
	tokenCmd.AddCommand(tokenIssueCmd)
	rootCmd.AddCommand(tokenCmd)
}
