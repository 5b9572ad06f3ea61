package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shrimpsizemoose/semla/internal/models"
)

// source files come with Russian headers
var requiredColumns = []string{"Фамилия", "Имя", "Факультет", "Курс", "Оценка"}

// ReadStudents parses a CSV with the columns Фамилия, Имя, Факультет,
// Курс, Оценка into student rows. The first row that fails to parse
// aborts the whole batch so the caller never commits a partial file.
func ReadStudents(r io.Reader) ([]models.Student, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		index[name] = i
	}
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("csv is missing column %q", column)
		}
	}

	var students []models.Student
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row %d: %w", line, err)
		}

		rawGrade := strings.TrimSpace(record[index["Оценка"]])
		grade, err := strconv.Atoi(rawGrade)
		if err != nil {
			return nil, fmt.Errorf("row %d: grade %q is not an integer", line, rawGrade)
		}

		students = append(students, models.Student{
			LastName:  strings.TrimSpace(record[index["Фамилия"]]),
			FirstName: strings.TrimSpace(record[index["Имя"]]),
			Faculty:   strings.TrimSpace(record[index["Факультет"]]),
			Course:    strings.TrimSpace(record[index["Курс"]]),
			Grade:     grade,
		})
	}

	return students, nil
}
