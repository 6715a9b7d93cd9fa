/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/answer-engine/config"
	"github.com/tieubaoca/answer-engine/database"
	"github.com/tieubaoca/answer-engine/repository"
	"github.com/tieubaoca/answer-engine/service"
)

// exportTranscriptsCmd writes the conversation logs to a local spreadsheet
// without going through the server.
var exportTranscriptsCmd = &cobra.Command{
	Use:   "export-transcripts",
	Short: "Export conversation logs to a spreadsheet",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		mongoClient, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect(context.Background())

		conversationRepo := repository.NewConversationRepo(
			mongoClient.Database(cfg.DBName).Collection("conversation_logs"))
		transcripts := service.NewTranscriptService(conversationRepo)

		workbook, err := transcripts.Export(ctx)
		if err != nil {
			log.Fatalf("Failed to export transcripts: %v", err)
		}
		defer workbook.Close()

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = fmt.Sprintf("transcripts_%s.xlsx", time.Now().Format("2006-01-02"))
		}
		if err := workbook.SaveAs(output); err != nil {
			log.Fatalf("Failed to save workbook: %v", err)
		}
		fmt.Println("Transcripts written to", output)
	},
}

func init() {
	rootCmd.AddCommand(exportTranscriptsCmd)
	exportTranscriptsCmd.Flags().StringP("output", "o", "", "output file path")
}
