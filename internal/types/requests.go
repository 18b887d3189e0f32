package types

// Request bodies for the HTTP surface. Create requests use gin binding tags
// for required fields; update requests use pointer fields so a handler can
// tell an omitted field apart from an empty one and only overwrite what the
// client actually sent.

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Proficiency string `json:"proficiency"`
}

type UpdateSkillRequest struct {
	Name        *string `json:"name"`
	Proficiency *string `json:"proficiency"`
}

type CreateExperienceRequest struct {
	Company   string `json:"company" binding:"required"`
	Position  string `json:"position" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"`
}

type UpdateExperienceRequest struct {
	Company   *string `json:"company"`
	Position  *string `json:"position"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type CreateEducationRequest struct {
	Institution  string `json:"institution" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date"`
}

type UpdateEducationRequest struct {
	Institution  *string `json:"institution"`
	Degree       *string `json:"degree"`
	FieldOfStudy *string `json:"field_of_study"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
}
