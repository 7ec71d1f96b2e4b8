package model

import (
	"strings"
	"time"
)

type ProjectCategory string

const (
	ProjectWebApp        ProjectCategory = "web-app"
	ProjectMobileApp     ProjectCategory = "mobile-app"
	ProjectDocumentation ProjectCategory = "documentation"
	ProjectEducational   ProjectCategory = "educational"
	ProjectECommerce     ProjectCategory = "e-commerce"
	ProjectDashboard     ProjectCategory = "dashboard"
	ProjectAPI           ProjectCategory = "api"
	ProjectTool          ProjectCategory = "tool"
	ProjectOther         ProjectCategory = "other"
)

var ProjectCategories = []ProjectCategory{
	ProjectWebApp,
	ProjectMobileApp,
	ProjectDocumentation,
	ProjectEducational,
	ProjectECommerce,
	ProjectDashboard,
	ProjectAPI,
	ProjectTool,
	ProjectOther,
}

func ParseProjectCategory(s string) (ProjectCategory, bool) {
	s = strings.TrimSpace(s)
	for _, c := range ProjectCategories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

type ProjectStatus string

const (
	StatusCompleted   ProjectStatus = "completed"
	StatusInProgress  ProjectStatus = "in-progress"
	StatusMaintenance ProjectStatus = "maintenance"
	StatusArchived    ProjectStatus = "archived"
)

var ProjectStatuses = []ProjectStatus{
	StatusCompleted,
	StatusInProgress,
	StatusMaintenance,
	StatusArchived,
}

func ParseProjectStatus(s string) (ProjectStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range ProjectStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Project is a portfolio entry.
type Project struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description,omitempty"`
	Category        ProjectCategory `json:"category"`
	Technologies    []string        `json:"technologies"`
	Tags            []string        `json:"tags"`
	Status          ProjectStatus   `json:"status"`
	Featured        bool            `json:"featured"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
	Client          string          `json:"client,omitempty"`
	Role            string          `json:"role,omitempty"`
	URL             string          `json:"url,omitempty"`
	Repository      string          `json:"repository,omitempty"`
	Image           string          `json:"image,omitempty"`
	Source          string          `json:"-"`
}

func (p *Project) RecordID() string { return p.ID }

func (p *Project) Kind() Kind { return KindProject }

func (p *Project) SourceName() string { return p.Source }

func (p *Project) Fields() Fields {
	return Fields{
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Category:        string(p.Category),
		Tags:            p.Tags,
		Technologies:    p.Technologies,
		Client:          p.Client,
		Role:            p.Role,
		Status:          string(p.Status),
		Featured:        p.Featured,
		Start:           p.StartDate,
		End:             p.EndDate,
	}
}
