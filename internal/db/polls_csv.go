package db

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// PollRecord is one CSV row: question_text,pub_date,choices.
type PollRecord struct {
	QuestionText string
	PubDate      time.Time
	Choices      []string
}

// LoadPolls reads polls from a CSV and inserts the ones not already stored.
// A poll counts as stored when a question with the same text and pub_date exists.
func LoadPolls(conn *gorm.DB, path string, now time.Time) (int, error) {
	if conn == nil {
		return 0, errors.New("db connection is nil")
	}
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	records, err := ReadPolls(file, now)
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, record := range records {
		created, err := insertPoll(conn, record)
		if err != nil {
			return inserted, err
		}
		if created {
			inserted++
		}
	}
	return inserted, nil
}

func insertPoll(conn *gorm.DB, record PollRecord) (bool, error) {
	created := false
	err := conn.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Question{}).
			Where("question_text = ? AND pub_date = ?", record.QuestionText, record.PubDate).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		question := Question{QuestionText: record.QuestionText, PubDate: record.PubDate}
		for _, text := range record.Choices {
			question.Choices = append(question.Choices, Choice{ChoiceText: text})
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// ReadPolls parses the CSV body. The first row is a header. pub_date is either
// RFC 3339 or a whole number of days relative to now ("-3", "0", "2").
// Choices are separated by "|". Rows without question text are skipped.
func ReadPolls(r io.Reader, now time.Time) ([]PollRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var records []PollRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			continue
		}
		text := strings.TrimSpace(row[0])
		if text == "" {
			continue
		}
		pubDate, err := parsePubDate(strings.TrimSpace(row[1]), now)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		record := PollRecord{QuestionText: text, PubDate: pubDate}
		if len(row) >= 3 {
			for _, choice := range strings.Split(row[2], "|") {
				choice = strings.TrimSpace(choice)
				if choice != "" {
					record.Choices = append(record.Choices, choice)
				}
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func parsePubDate(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return now.UTC(), nil
	}
	if days, err := strconv.Atoi(raw); err == nil {
		return now.AddDate(0, 0, days).UTC(), nil
	}
	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pub_date %q", raw)
	}
	return value.UTC(), nil
}
