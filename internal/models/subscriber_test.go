package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubscriber() Subscriber {
	return Subscriber{
		LastName:    "Иванов",
		FirstName:   "Мария",
		BirthDate:   "1990-05-17",
		PhoneNumber: "+79161234567",
		Email:       "maria.ivanova@example.com",
	}
}

func TestSubscriberValidation(t *testing.T) {
	t.Run("valid subscriber passes", func(t *testing.T) {
		s := validSubscriber()
		require.NoError(t, s.Validate())
	})

	badNames := []struct {
		name  string
		value string
	}{
		{"latin letters", "Ivanov"},
		{"lowercase first letter", "иванов"},
		{"single letter", "И"},
		{"digits inside", "Иван0в"},
		{"hyphenated", "Иванов-Петров"},
		{"space inside", "Иванов Петров"},
		{"empty", ""},
	}

	for _, tc := range badNames {
		t.Run("last name rejects "+tc.name, func(t *testing.T) {
			s := validSubscriber()
			s.LastName = tc.value
			assert.Error(t, s.Validate())
		})

		t.Run("first name rejects "+tc.name, func(t *testing.T) {
			s := validSubscriber()
			s.FirstName = tc.value
			assert.Error(t, s.Validate())
		})
	}

	t.Run("yo is a valid cyrillic letter", func(t *testing.T) {
		s := validSubscriber()
		s.LastName = "Ёлкина"
		s.FirstName = "Алёна"
		assert.NoError(t, s.Validate())
	})

	t.Run("email shape is checked", func(t *testing.T) {
		s := validSubscriber()
		s.Email = "not-an-email"
		assert.Error(t, s.Validate())
	})

	t.Run("birth date and phone are opaque strings", func(t *testing.T) {
		s := validSubscriber()
		s.BirthDate = "not even a date"
		s.PhoneNumber = "whatever"
		assert.NoError(t, s.Validate())
	})
}
