package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentCreateValidation(t *testing.T) {
	grade := 80

	t.Run("complete payload passes", func(t *testing.T) {
		c := StudentCreate{
			LastName:  "Петров",
			FirstName: "Олег",
			Faculty:   "CS",
			Course:    "Algorithms",
			Grade:     &grade,
		}
		require.NoError(t, c.Validate())
	})

	t.Run("zero grade is a legal grade", func(t *testing.T) {
		zero := 0
		c := StudentCreate{
			LastName:  "Петров",
			FirstName: "Олег",
			Faculty:   "CS",
			Course:    "Algorithms",
			Grade:     &zero,
		}
		assert.NoError(t, c.Validate())
	})

	t.Run("missing grade fails", func(t *testing.T) {
		c := StudentCreate{
			LastName:  "Петров",
			FirstName: "Олег",
			Faculty:   "CS",
			Course:    "Algorithms",
		}
		assert.Error(t, c.Validate())
	})

	t.Run("missing faculty fails", func(t *testing.T) {
		c := StudentCreate{
			LastName:  "Петров",
			FirstName: "Олег",
			Course:    "Algorithms",
			Grade:     &grade,
		}
		assert.Error(t, c.Validate())
	})
}

func TestStudentUpdateEmpty(t *testing.T) {
	assert.True(t, (&StudentUpdate{}).Empty())

	grade := 5
	assert.False(t, (&StudentUpdate{Grade: &grade}).Empty())

	empty := ""
	assert.False(t, (&StudentUpdate{Course: &empty}).Empty(), "explicit empty string counts as a change")
}
