package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tieubaoca/answer-engine/repository"
	"github.com/xuri/excelize/v2"
)

// TranscriptService renders the stored conversation logs as a spreadsheet
// for the support team.
type TranscriptService struct {
	conversations repository.ConversationRepo
}

func NewTranscriptService(conversations repository.ConversationRepo) *TranscriptService {
	return &TranscriptService{conversations: conversations}
}

// Export builds the workbook: one row per (member, date) log, the turns
// serialized as JSON in the last column. Caller owns closing the file.
func (s *TranscriptService) Export(ctx context.Context) (*excelize.File, error) {
	logs, err := s.conversations.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation logs: %w", err)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"Member ID", "Date", "Conversation"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, log := range logs {
		turns, err := json.Marshal(log.Conversation)
		if err != nil {
			turns = []byte("[]")
		}
		memberID := log.MemberID
		if memberID == "" {
			memberID = "(anonymous)"
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row+2), memberID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row+2), log.Date)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row+2), string(turns))
	}

	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "B", "B", 14)
	f.SetColWidth(sheet, "C", "C", 100)
	return f, nil
}
