package roadmap

import (
	"fmt"

	"github.com/mkaplan/careercompass/internal/skills"
	"github.com/mkaplan/careercompass/internal/types"
)

// maxResourcesPerMilestone caps the resource list attached to a milestone.
const maxResourcesPerMilestone = 3

// skillResources is reference data: curated learning material per skill key.
var skillResources = map[string]types.Resource{
	"react":            {Title: "React Official Documentation", Type: "Documentation", URL: "https://react.dev"},
	"python":           {Title: "Python for Everybody", Type: "Course", URL: "https://www.coursera.org/specializations/python"},
	"node.js":          {Title: "Node.js Complete Guide", Type: "Course"},
	"sql":              {Title: "SQL for Data Science", Type: "Course"},
	"machine learning": {Title: "Andrew Ng's Machine Learning Course", Type: "Course", URL: "https://www.coursera.org/learn/machine-learning"},
	"statistics":       {Title: "Introduction to Statistics", Type: "Course"},
	"docker":           {Title: "Docker Mastery", Type: "Course"},
	"kubernetes":       {Title: "Kubernetes Up & Running", Type: "Book"},
	"aws":              {Title: "AWS Certified Solutions Architect", Type: "Certification", URL: "https://aws.amazon.com/certification"},
	"go":               {Title: "The Go Programming Language", Type: "Book"},
	"javascript":       {Title: "JavaScript.info", Type: "Documentation", URL: "https://javascript.info"},
	"typescript":       {Title: "TypeScript Handbook", Type: "Documentation", URL: "https://www.typescriptlang.org/docs/handbook/"},
	"figma":            {Title: "Figma Tutorial for Beginners", Type: "Video"},
	"git":              {Title: "Pro Git", Type: "Book", URL: "https://git-scm.com/book"},
}

// resourcesForSkills looks up curated material for each skill in the bucket,
// falling back to a generic course entry so every milestone has at least one
// resource per skill, capped at maxResourcesPerMilestone.
func resourcesForSkills(n *skills.Normalizer, bucket []string) []types.Resource {
	resources := make([]types.Resource, 0, maxResourcesPerMilestone)
	for _, skill := range bucket {
		if len(resources) == maxResourcesPerMilestone {
			break
		}
		if r, ok := skillResources[n.Key(skill)]; ok {
			resources = append(resources, r)
			continue
		}
		resources = append(resources, types.Resource{
			Title: fmt.Sprintf("Comprehensive %s course", n.Canonical(skill)),
			Type:  "Course",
		})
	}
	return resources
}
