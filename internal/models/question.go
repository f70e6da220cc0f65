package models

// Category classifies an interview question. The enum is closed; anything
// that cannot be classified falls back to CategorySoftSkills.
type Category string

const (
	CategoryCoding     Category = "coding"
	CategoryTechnical  Category = "technical"
	CategoryExperience Category = "experience"
	CategorySoftSkills Category = "soft_skills"
)
