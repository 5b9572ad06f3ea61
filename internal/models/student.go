package models

type Student struct {
	ID        int64  `db:"id" json:"id"`
	LastName  string `db:"last_name" json:"last_name"`
	FirstName string `db:"first_name" json:"first_name"`
	Faculty   string `db:"faculty" json:"faculty"`
	Course    string `db:"course" json:"course"`
	Grade     int    `db:"grade" json:"grade"`
}

// StudentCreate is the insert payload. Grade is a pointer so that a
// legitimate zero grade passes the required check.
type StudentCreate struct {
	LastName  string `json:"last_name" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	Faculty   string `json:"faculty" validate:"required"`
	Course    string `json:"course" validate:"required"`
	Grade     *int   `json:"grade" validate:"required"`
}

func (c *StudentCreate) Validate() error {
	return validate.Struct(c)
}

func (c *StudentCreate) Student() Student {
	return Student{
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Faculty:   c.Faculty,
		Course:    c.Course,
		Grade:     *c.Grade,
	}
}

// StudentUpdate is a partial update. A nil field means "leave as is",
// a non-nil field overwrites, including overwriting with an empty
// string or zero grade.
type StudentUpdate struct {
	LastName  *string `json:"last_name"`
	FirstName *string `json:"first_name"`
	Faculty   *string `json:"faculty"`
	Course    *string `json:"course"`
	Grade     *int    `json:"grade"`
}

func (u *StudentUpdate) Empty() bool {
	return u.LastName == nil &&
		u.FirstName == nil &&
		u.Faculty == nil &&
		u.Course == nil &&
		u.Grade == nil
}
