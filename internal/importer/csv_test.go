package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Фамилия,Имя,Факультет,Курс,Оценка
Иванов,Пётр,CS,Algorithms,80
Петрова,Анна,Math,Calculus,90
`

func TestReadStudents(t *testing.T) {
	students, err := ReadStudents(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, students, 2)

	assert.Equal(t, "Иванов", students[0].LastName)
	assert.Equal(t, "Пётр", students[0].FirstName)
	assert.Equal(t, "CS", students[0].Faculty)
	assert.Equal(t, "Algorithms", students[0].Course)
	assert.Equal(t, 80, students[0].Grade)
	assert.Equal(t, 90, students[1].Grade)
}

func TestReadStudentsWithBOM(t *testing.T) {
	students, err := ReadStudents(strings.NewReader("\uFEFF" + sampleCSV))
	require.NoError(t, err)
	assert.Len(t, students, 2)
}

func TestReadStudentsColumnOrderDoesNotMatter(t *testing.T) {
	csv := `Оценка,Имя,Фамилия,Курс,Факультет
75,Олег,Сидоров,Databases,Econ
`
	students, err := ReadStudents(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Сидоров", students[0].LastName)
	assert.Equal(t, "Econ", students[0].Faculty)
	assert.Equal(t, 75, students[0].Grade)
}

func TestReadStudentsBadGradeAbortsBatch(t *testing.T) {
	csv := `Фамилия,Имя,Факультет,Курс,Оценка
Иванов,Пётр,CS,Algorithms,80
Петрова,Анна,Math,Calculus,ninety
`
	students, err := ReadStudents(strings.NewReader(csv))
	require.Error(t, err)
	assert.Nil(t, students, "a bad row should not produce a partial batch")
	assert.Contains(t, err.Error(), "row 3")
}

func TestReadStudentsMissingColumn(t *testing.T) {
	csv := `Фамилия,Имя,Факультет,Курс
Иванов,Пётр,CS,Algorithms
`
	_, err := ReadStudents(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Оценка")
}

func TestReadStudentsEmptyInput(t *testing.T) {
	_, err := ReadStudents(strings.NewReader(""))
	require.Error(t, err)
}
