package query

import (
	"time"

	"folio/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func article(id string, published string, tags ...string) *model.Article {
	return &model.Article{
		ID:          id,
		Title:       "Post " + id,
		Category:    model.CategoryBlog,
		Tags:        tags,
		PublishedAt: day(published),
	}
}

func ids[T model.Record](records []T) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.RecordID()
	}
	return out
}

// portfolio is a small catalog covering every filterable field.
func portfolio() []*model.Project {
	return []*model.Project{
		{
			ID:           "docs",
			Title:        "Documentation Hub",
			Description:  "Searchable documentation platform",
			Category:     model.ProjectDocumentation,
			Technologies: []string{"Next.js", "MDX"},
			Tags:         []string{"docs", "search"},
			Status:       model.StatusCompleted,
			Featured:     true,
			StartDate:    day("2023-01-10"),
			EndDate:      dayPtr("2023-06-01"),
		},
		{
			ID:           "tasks",
			Title:        "Palace Tasks",
			Description:  "Collaborative task manager with realtime sync",
			Category:     model.ProjectWebApp,
			Technologies: []string{"React", "Node.js", "MongoDB"},
			Tags:         []string{"realtime"},
			Status:       model.StatusInProgress,
			StartDate:    day("2024-02-01"),
			Client:       "Palace Corp",
		},
		{
			ID:           "bias",
			Title:        "Cognitive Biases",
			Description:  "Analytics dashboard",
			Category:     model.ProjectDashboard,
			Technologies: []string{"Vue.js", "D3.js", "Python"},
			Status:       model.StatusMaintenance,
			StartDate:    day("2022-09-15"),
			EndDate:      dayPtr("2023-02-01"),
			Role:         "Lead developer",
		},
		{
			ID:           "fit",
			Title:        "Fitness Tracker",
			Description:  "Mobile fitness app built with React Native",
			Category:     model.ProjectMobileApp,
			Technologies: []string{"React Native", "Firebase"},
			Status:       model.StatusArchived,
			StartDate:    day("2021-05-01"),
			EndDate:      dayPtr("2021-12-01"),
		},
	}
}
