// Package taxonomy holds the static skill taxonomy used for semantic
// matching: a category name maps to the skills commonly associated with it.
// All data is built once at init and never mutated, so every lookup is safe
// from concurrently running analyses.
package taxonomy

// categoryOrder fixes the iteration order for every lookup that walks
// categories, keeping semantic matching deterministic.
var categoryOrder = []string{
	"python",
	"javascript",
	"java",
	"web_development",
	"cloud",
	"devops",
	"databases",
	"data_science",
	"mobile",
	"testing",
	"management",
}

var skillsByCategory = map[string][]string{
	"python": {
		"django", "flask", "fastapi", "pandas", "numpy", "scipy",
		"scikit-learn", "pytest", "celery", "jupyter",
	},
	"javascript": {
		"react", "redux", "angular", "vue", "svelte", "node", "nodejs",
		"express", "typescript", "jquery", "nextjs",
	},
	"java": {
		"spring", "spring boot", "hibernate", "maven", "gradle", "junit",
		"kotlin",
	},
	"web_development": {
		"html", "css", "sass", "javascript", "react", "angular", "vue",
		"rest api", "restful api", "graphql", "webpack",
	},
	"cloud": {
		"aws", "azure", "gcp", "google cloud", "lambda", "ec2", "s3",
		"cloudformation", "terraform", "serverless",
	},
	"devops": {
		"docker", "kubernetes", "jenkins", "ansible", "terraform",
		"prometheus", "grafana", "continuous integration",
		"continuous delivery", "gitops",
	},
	"databases": {
		"sql", "mysql", "postgresql", "postgres", "mongodb", "redis",
		"elasticsearch", "sqlite", "oracle", "cassandra", "dynamodb",
	},
	"data_science": {
		"machine learning", "deep learning", "tensorflow", "pytorch",
		"keras", "nlp", "data mining", "statistics", "tableau", "power bi",
	},
	"mobile": {
		"android", "ios", "swift", "react native", "flutter", "xamarin",
	},
	"testing": {
		"selenium", "cypress", "junit", "pytest", "unit testing",
		"integration testing", "tdd",
	},
	"management": {
		"leadership", "agile", "scrum", "kanban", "mentoring", "budgeting",
		"stakeholder management", "project management", "roadmap",
	},
}

// categoriesBySkill is the reverse index, built once at init.
var categoriesBySkill = map[string][]string{}

func init() {
	for _, category := range categoryOrder {
		for _, skill := range skillsByCategory[category] {
			categoriesBySkill[skill] = append(categoriesBySkill[skill], category)
		}
	}
}

// Categories returns every category name in the fixed iteration order. The
// returned slice is shared; callers must not modify it.
func Categories() []string {
	return categoryOrder
}

// IsCategory reports whether name is a taxonomy category.
func IsCategory(name string) bool {
	_, ok := skillsByCategory[name]
	return ok
}

// SkillsOf returns the skills of a category, or nil for an unknown category.
// The returned slice is shared; callers must not modify it.
func SkillsOf(category string) []string {
	return skillsByCategory[category]
}

// CategoriesOf returns every category whose skill list contains the given
// skill, in the fixed category order. Nil when the skill is unknown.
func CategoriesOf(skill string) []string {
	return categoriesBySkill[skill]
}

// ContainsPhrase reports whether the phrase is known to the taxonomy either
// as a category name or as a skill in any category.
func ContainsPhrase(phrase string) bool {
	if IsCategory(phrase) {
		return true
	}
	_, ok := categoriesBySkill[phrase]
	return ok
}
