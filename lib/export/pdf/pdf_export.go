package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"interview-trainer-backend/lib/utils/helpers"
	interviewapimodels "interview-trainer-backend/models/api/interview"
)

// ReportData is everything the feedback report needs, assembled by the
// caller from the interview and its answered questions.
type ReportData struct {
	Interview interviewapimodels.ListItem
	Answers   []QuestionReport
}

type QuestionReport struct {
	QuestionText string
	Answer       interviewapimodels.AnswerWithFeedback
	Duration     int
}

// GenerateFeedbackReport renders the per-question transcript and the
// collected feedback into a printable report.
func GenerateFeedbackReport(data ReportData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateFeedbackReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Interview feedback report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Role: %v", data.Interview.RoleName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %v", data.Interview.Date.Format("02.01.2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total time: %v", helpers.FormatTime(data.Interview.Duration)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for idx, item := range data.Answers {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, fmt.Sprintf("Question %v. %v", idx+1, item.QuestionText), "", "L", false)

		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 5, fmt.Sprintf("Answering time: %v", helpers.FormatTime(item.Duration)), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		answer := item.Answer.Answer.Answer
		if answer == "" {
			answer = "(no answer recorded)"
		}
		pdf.MultiCell(0, 5, answer, "", "L", false)
		pdf.Ln(2)

		writeFeedbackBlock(pdf, "Verbal feedback", item.Answer.VerbalFeedbacks)
		writeFeedbackBlock(pdf, "Non-verbal feedback", item.Answer.NonVerbalFeedbacks)
		pdf.Ln(4)
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "failed to render feedback report")
	}
	return buf.Bytes(), nil
}

func writeFeedbackBlock(pdf *fpdf.Fpdf, title string, list []interviewapimodels.FeedbackView) {
	if len(list) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 5, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, fb := range list {
		mark := "-"
		if fb.IsPositive == 1 {
			mark = "+"
		}
		pdf.MultiCell(0, 5, fmt.Sprintf("[%v] %v  %v", helpers.FormatTime(fb.Seconds), mark, fb.Text), "", "L", false)
	}
	pdf.Ln(1)
}
