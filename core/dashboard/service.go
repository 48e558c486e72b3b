// Package dashboard binds the teacher metrics and admin overview endpoints.
package dashboard

import (
	"context"

	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/services/rest"
)

type TeacherMetrics struct {
	TotalCourses  int          `json:"totalCourses"`
	TotalStudents int          `json:"totalStudents"`
	TotalIncome   float64      `json:"totalIncome"`
	CourseStats   []CourseStat `json:"courseStats,omitempty"`
}

type CourseStat struct {
	CourseID  string  `json:"courseId"`
	Title     string  `json:"title"`
	Enrolled  int     `json:"enrolled"`
	AvgRating float64 `json:"avgRating"`
}

type AdminOverview struct {
	TotalUsers     int `json:"totalUsers"`
	TotalStudents  int `json:"totalStudents"`
	TotalTeachers  int `json:"totalTeachers"`
	TotalCourses   int `json:"totalCourses"`
	PendingCourses int `json:"pendingCourses"`
}

type Service struct {
	api *rest.Client
	log core.Logger
}

func NewService(api *rest.Client, log core.Logger) *Service {
	return &Service{api: api, log: log}
}

func (svc *Service) TeacherMetrics(ctx context.Context) (TeacherMetrics, error) {
	var metrics TeacherMetrics
	err := svc.api.Get(ctx, "/teacher/metrics", nil, &metrics)
	return metrics, err
}

func (svc *Service) AdminOverview(ctx context.Context) (AdminOverview, error) {
	var overview AdminOverview
	err := svc.api.Get(ctx, "/admin/dashboard", nil, &overview)
	return overview, err
}
