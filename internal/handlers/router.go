package handlers

import (
	"net/http"

	"github.com/shrimpsizemoose/semla/internal/app"
)

// NewRouter wires every route to its handler. The literal
// /students/courses pattern wins over /students/{faculty} under the
// stdlib mux precedence rules.
func NewRouter(service *app.Service) *http.ServeMux {
	subscriberHandler := NewSubscriberHandler(service)
	studentHandler := NewStudentHandler(service)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /submit", subscriberHandler.HandleSubmit)

	mux.HandleFunc("POST /students", studentHandler.HandleCreate)
	mux.HandleFunc("POST /students/import", studentHandler.HandleImport)
	mux.HandleFunc("GET /students", studentHandler.HandleList)
	mux.HandleFunc("GET /students/courses", studentHandler.HandleCourses)
	mux.HandleFunc("GET /students/average_gpa/{faculty}", studentHandler.HandleAverageGPA)
	mux.HandleFunc("GET /students/{faculty}", studentHandler.HandleListByFaculty)
	mux.HandleFunc("PUT /students/{student_id}", studentHandler.HandleUpdate)
	mux.HandleFunc("DELETE /students/{student_id}", studentHandler.HandleDelete)

	return mux
}
