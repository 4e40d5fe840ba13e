package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"interview-trainer-backend/lib/utils/helpers"
	"interview-trainer-backend/models"
	interviewapimodels "interview-trainer-backend/models/api/interview"
)

type Provider interface {
	ExportInterviewHistory(list []interviewapimodels.ListItem) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var historyHeaders = []string{"Role", "Date", "Difficulty", "Status", "Questions", "Answered", "Duration"}

func (i impl) ExportInterviewHistory(list []interviewapimodels.ListItem) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, historyHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		if err = writeHistoryData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	f.SetSheetName(sheet, "Interviews")
	return f.WriteToBuffer()
}

func writeHistoryData(f *excelize.File, sheet string, list []interviewapimodels.ListItem, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(historyHeaders), row+len(list)); err != nil {
		return err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.RoleName); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Date.Format("02.01.2006 15:04")); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, difficultyLabel(item.Difficulty)); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, statusLabel(item.Status)); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.NQuestions); err != nil {
			return err
		}

		col++
		answered := 0
		for _, q := range item.Questions {
			if q.IsAnswered {
				answered++
			}
		}
		if err := writeColumn(f, sheet, col, row, answered); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, helpers.FormatTime(item.Duration)); err != nil {
			return err
		}
	}
	return nil
}

func difficultyLabel(difficulty *models.Difficulty) string {
	if difficulty == nil {
		return "Mixed"
	}
	switch *difficulty {
	case models.DifficultyEasy:
		return "Easy"
	case models.DifficultyMedium:
		return "Medium"
	case models.DifficultyHard:
		return "Hard"
	}
	return "Mixed"
}

func statusLabel(status models.InterviewStatus) string {
	if status == models.InterviewStatusComplete {
		return "Completed"
	}
	return "In progress"
}
