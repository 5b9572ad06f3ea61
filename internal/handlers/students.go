package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/app"
	"github.com/shrimpsizemoose/semla/internal/importer"
	"github.com/shrimpsizemoose/semla/internal/metrics"
	"github.com/shrimpsizemoose/semla/internal/models"
)

type StudentHandler struct {
	service *app.Service
}

func NewStudentHandler(service *app.Service) *StudentHandler {
	return &StudentHandler{
		service: service,
	}
}

func (h *StudentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in models.StudentCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := in.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	student := in.Student()
	if err := h.service.Students.InsertStudent(&student); err != nil {
		logger.Error.Printf("Failed to insert student: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to save student")
		return
	}

	metrics.StudentOpsTotal.WithLabelValues("create").Inc()
	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	students, err := h.service.Students.ListStudents()
	if err != nil {
		logger.Error.Printf("Failed to list students: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to fetch students")
		return
	}

	if students == nil {
		students = []models.Student{}
	}
	writeJSON(w, http.StatusOK, students)
}

// HandleListByFaculty answers 404 for an empty result, so a faculty
// with no students and an unknown faculty look the same to the client
func (h *StudentHandler) HandleListByFaculty(w http.ResponseWriter, r *http.Request) {
	faculty := r.PathValue("faculty")

	students, err := h.service.Students.FindByFaculty(faculty)
	if err != nil {
		logger.Error.Printf("Failed to find students for faculty %s: %v", faculty, err)
		writeDetail(w, http.StatusInternalServerError, "Failed to fetch students")
		return
	}

	if len(students) == 0 {
		writeDetail(w, http.StatusNotFound, "Students not found")
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *StudentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("student_id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	var patch models.StudentUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	found, err := h.service.Students.UpdateStudent(id, patch)
	if err != nil {
		logger.Error.Printf("Failed to update student %d: %v", id, err)
		writeDetail(w, http.StatusInternalServerError, "Failed to update student")
		return
	}
	if !found {
		writeDetail(w, http.StatusNotFound, "Student not found")
		return
	}

	student, err := h.service.Students.GetStudent(id)
	if err != nil {
		logger.Error.Printf("Failed to fetch student %d after update: %v", id, err)
		writeDetail(w, http.StatusInternalServerError, "Failed to fetch updated student")
		return
	}
	if student == nil {
		writeDetail(w, http.StatusNotFound, "Student not found")
		return
	}

	metrics.StudentOpsTotal.WithLabelValues("update").Inc()
	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("student_id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	found, err := h.service.Students.DeleteStudent(id)
	if err != nil {
		logger.Error.Printf("Failed to delete student %d: %v", id, err)
		writeDetail(w, http.StatusInternalServerError, "Failed to delete student")
		return
	}
	if !found {
		writeDetail(w, http.StatusNotFound, "Student not found")
		return
	}

	metrics.StudentOpsTotal.WithLabelValues("delete").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Student deleted successfully",
	})
}

func (h *StudentHandler) HandleCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.Students.DistinctCourses()
	if err != nil {
		logger.Error.Printf("Failed to list courses: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}

	if courses == nil {
		courses = []string{}
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *StudentHandler) HandleAverageGPA(w http.ResponseWriter, r *http.Request) {
	faculty := r.PathValue("faculty")

	avg, err := h.service.Students.AverageGrade(faculty)
	if err != nil {
		logger.Error.Printf("Failed to compute average grade for %s: %v", faculty, err)
		writeDetail(w, http.StatusInternalServerError, "Failed to compute average grade")
		return
	}

	if avg == nil {
		writeDetail(w, http.StatusNotFound, "No grades recorded for this faculty")
		return
	}
	writeJSON(w, http.StatusOK, avg)
}

// HandleImport bulk-loads students from a CSV request body. The batch
// is all-or-nothing: a single bad row leaves the table untouched.
func (h *StudentHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	students, err := importer.ReadStudents(r.Body)
	if err != nil {
		logger.Debug.Printf("Rejected CSV import: %v", err)
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Students.BulkInsertStudents(students); err != nil {
		logger.Error.Printf("Failed to import students: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to import students")
		return
	}

	metrics.ImportedStudentsTotal.Add(float64(len(students)))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Import finished",
		"imported": len(students),
	})
}
