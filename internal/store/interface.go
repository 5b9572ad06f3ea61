package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/shrimpsizemoose/semla/internal/models"
)

type StudentStore interface {
	Close() error
	ApplyMigrations(dir string) error

	InsertStudent(student *models.Student) error
	BulkInsertStudents(students []models.Student) error
	GetStudent(id int64) (*models.Student, error)
	ListStudents() ([]models.Student, error)
	FindByFaculty(faculty string) ([]models.Student, error)
	UpdateStudent(id int64, patch models.StudentUpdate) (bool, error)
	DeleteStudent(id int64) (bool, error)

	DistinctCourses() ([]string, error)
	AverageGrade(faculty string) (*float64, error)
}

// BaseStore provides common functionality for different DB implementations
type BaseStore struct {
	DB        *sqlx.DB
	Converter func(string) string
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// ApplyMigrations applies SQL migrations from a directory, translating dialect if needed
func (s *BaseStore) ApplyMigrations(dir string, translateSQL func(string) string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		content, err := os.ReadFile(fmt.Sprintf("%s/%s", dir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file.Name(), err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		if _, err := s.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file.Name(), err)
		}
	}

	return nil
}

// BulkInsertStudents loads every row inside one transaction. The first
// failing row aborts the whole batch, nothing is committed.
func (s *BaseStore) BulkInsertStudents(students []models.Student) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin bulk insert: %w", err)
	}
	defer tx.Rollback()

	query := s.Converter(`
		INSERT INTO students (last_name, first_name, faculty, course, grade)
		VALUES (?, ?, ?, ?, ?)
	`)
	for i, student := range students {
		_, err := tx.Exec(query,
			student.LastName,
			student.FirstName,
			student.Faculty,
			student.Course,
			student.Grade,
		)
		if err != nil {
			return fmt.Errorf("bulk insert aborted at row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk insert: %w", err)
	}
	return nil
}

func (s *BaseStore) GetStudent(id int64) (*models.Student, error) {
	var student models.Student
	query := s.Converter(`
		SELECT id, last_name, first_name, faculty, course, grade
		FROM students
		WHERE id = ?
	`)

	err := s.DB.Get(&student, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

func (s *BaseStore) ListStudents() ([]models.Student, error) {
	var students []models.Student
	err := s.DB.Select(&students, `
		SELECT id, last_name, first_name, faculty, course, grade
		FROM students
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (s *BaseStore) FindByFaculty(faculty string) ([]models.Student, error) {
	var students []models.Student
	query := s.Converter(`
		SELECT id, last_name, first_name, faculty, course, grade
		FROM students
		WHERE faculty = ?
		ORDER BY id ASC
	`)

	err := s.DB.Select(&students, query, faculty)
	if err != nil {
		return nil, fmt.Errorf("failed to find students by faculty: %w", err)
	}
	return students, nil
}

// UpdateStudent overwrites only the fields set in patch and reports
// whether a row with that id existed.
func (s *BaseStore) UpdateStudent(id int64, patch models.StudentUpdate) (bool, error) {
	if patch.Empty() {
		student, err := s.GetStudent(id)
		if err != nil {
			return false, err
		}
		return student != nil, nil
	}

	var sets []string
	var args []interface{}
	if patch.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *patch.LastName)
	}
	if patch.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *patch.FirstName)
	}
	if patch.Faculty != nil {
		sets = append(sets, "faculty = ?")
		args = append(args, *patch.Faculty)
	}
	if patch.Course != nil {
		sets = append(sets, "course = ?")
		args = append(args, *patch.Course)
	}
	if patch.Grade != nil {
		sets = append(sets, "grade = ?")
		args = append(args, *patch.Grade)
	}
	args = append(args, id)

	tx, err := s.DB.Beginx()
	if err != nil {
		return false, fmt.Errorf("failed to begin update: %w", err)
	}
	defer tx.Rollback()

	query := s.Converter(fmt.Sprintf(
		"UPDATE students SET %s WHERE id = ?",
		strings.Join(sets, ", "),
	))
	res, err := tx.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update student: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check update result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit update: %w", err)
	}
	return affected > 0, nil
}

func (s *BaseStore) DeleteStudent(id int64) (bool, error) {
	tx, err := s.DB.Beginx()
	if err != nil {
		return false, fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(s.Converter("DELETE FROM students WHERE id = ?"), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete student: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit delete: %w", err)
	}
	return affected > 0, nil
}

func (s *BaseStore) DistinctCourses() ([]string, error) {
	var courses []string
	err := s.DB.Select(&courses, `
		SELECT DISTINCT course
		FROM students
		ORDER BY course ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct courses: %w", err)
	}
	return courses, nil
}

// AverageGrade returns nil when the faculty has no rows
func (s *BaseStore) AverageGrade(faculty string) (*float64, error) {
	var avg sql.NullFloat64
	query := s.Converter(`
		SELECT AVG(grade)
		FROM students
		WHERE faculty = ?
	`)

	err := s.DB.Get(&avg, query, faculty)
	if err != nil {
		return nil, fmt.Errorf("failed to compute average grade: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
