/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/answer-engine/utils"
)

// adminTokenCmd mints a bearer token for the admin routes. Operators run it
// on the host; there is no login endpoint.
var adminTokenCmd = &cobra.Command{
	Use:   "admin-token",
	Short: "Mint an admin bearer token",
	Run: func(cmd *cobra.Command, args []string) {
		id, _ := cmd.Flags().GetString("id")
		token, err := utils.GenerateAdminToken(id)
		if err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}
		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(adminTokenCmd)
	adminTokenCmd.Flags().String("id", "admin", "admin identity embedded in the token")
}
