package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/showfolio/backend/internal/models"
	"github.com/showfolio/backend/internal/types"
)

// PortfolioService owns the four portfolio resource kinds. Every operation
// is scoped to an owner id: lists filter by it, mutations verify it against
// the stored record before touching anything. Updates apply only the fields
// the request actually carried.
type PortfolioService struct {
	db *gorm.DB
}

func NewPortfolioService(db *gorm.DB) *PortfolioService {
	return &PortfolioService{db: db}
}

// Projects

func (s *PortfolioService) ListProjects(ownerID uint) ([]models.Project, error) {
	projects := []models.Project{}
	if err := s.db.Where("owner_id = ?", ownerID).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *PortfolioService) CreateProject(ownerID uint, req types.CreateProjectRequest) (*models.Project, error) {
	if req.Title == "" || req.Description == "" {
		return nil, validationf("title and description required")
	}
	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *PortfolioService) UpdateProject(id, ownerID uint, req types.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.findProject(id, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if err := s.applyUpdates(project, updates); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *PortfolioService) DeleteProject(id, ownerID uint) error {
	project, err := s.findProject(id, ownerID)
	if err != nil {
		return err
	}
	return s.db.Delete(project).Error
}

func (s *PortfolioService) findProject(id, ownerID uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, translateFindError(err)
	}
	if project.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return &project, nil
}

// Skills

func (s *PortfolioService) ListSkills(ownerID uint) ([]models.Skill, error) {
	skills := []models.Skill{}
	if err := s.db.Where("owner_id = ?", ownerID).Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (s *PortfolioService) CreateSkill(ownerID uint, req types.CreateSkillRequest) (*models.Skill, error) {
	if req.Name == "" {
		return nil, validationf("name required")
	}
	skill := models.Skill{
		Name:        req.Name,
		Proficiency: req.Proficiency,
		OwnerID:     ownerID,
	}
	if err := s.db.Create(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *PortfolioService) UpdateSkill(id, ownerID uint, req types.UpdateSkillRequest) (*models.Skill, error) {
	skill, err := s.findSkill(id, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Proficiency != nil {
		updates["proficiency"] = *req.Proficiency
	}
	if err := s.applyUpdates(skill, updates); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *PortfolioService) DeleteSkill(id, ownerID uint) error {
	skill, err := s.findSkill(id, ownerID)
	if err != nil {
		return err
	}
	return s.db.Delete(skill).Error
}

func (s *PortfolioService) findSkill(id, ownerID uint) (*models.Skill, error) {
	var skill models.Skill
	if err := s.db.First(&skill, id).Error; err != nil {
		return nil, translateFindError(err)
	}
	if skill.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return &skill, nil
}

// Experience

func (s *PortfolioService) ListExperiences(ownerID uint) ([]models.Experience, error) {
	experiences := []models.Experience{}
	if err := s.db.Where("owner_id = ?", ownerID).Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

func (s *PortfolioService) CreateExperience(ownerID uint, req types.CreateExperienceRequest) (*models.Experience, error) {
	if req.Company == "" || req.Position == "" || req.StartDate == "" {
		return nil, validationf("company, position and start_date required")
	}
	experience := models.Experience{
		Company:   req.Company,
		Position:  req.Position,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		OwnerID:   ownerID,
	}
	if err := s.db.Create(&experience).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

func (s *PortfolioService) UpdateExperience(id, ownerID uint, req types.UpdateExperienceRequest) (*models.Experience, error) {
	experience, err := s.findExperience(id, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if err := s.applyUpdates(experience, updates); err != nil {
		return nil, err
	}
	return experience, nil
}

func (s *PortfolioService) DeleteExperience(id, ownerID uint) error {
	experience, err := s.findExperience(id, ownerID)
	if err != nil {
		return err
	}
	return s.db.Delete(experience).Error
}

func (s *PortfolioService) findExperience(id, ownerID uint) (*models.Experience, error) {
	var experience models.Experience
	if err := s.db.First(&experience, id).Error; err != nil {
		return nil, translateFindError(err)
	}
	if experience.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return &experience, nil
}

// Education

func (s *PortfolioService) ListEducations(ownerID uint) ([]models.Education, error) {
	educations := []models.Education{}
	if err := s.db.Where("owner_id = ?", ownerID).Find(&educations).Error; err != nil {
		return nil, err
	}
	return educations, nil
}

func (s *PortfolioService) CreateEducation(ownerID uint, req types.CreateEducationRequest) (*models.Education, error) {
	if req.Institution == "" || req.Degree == "" || req.StartDate == "" {
		return nil, validationf("institution, degree and start_date required")
	}
	education := models.Education{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		OwnerID:      ownerID,
	}
	if err := s.db.Create(&education).Error; err != nil {
		return nil, err
	}
	return &education, nil
}

func (s *PortfolioService) UpdateEducation(id, ownerID uint, req types.UpdateEducationRequest) (*models.Education, error) {
	education, err := s.findEducation(id, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Institution != nil {
		updates["institution"] = *req.Institution
	}
	if req.Degree != nil {
		updates["degree"] = *req.Degree
	}
	if req.FieldOfStudy != nil {
		updates["field_of_study"] = *req.FieldOfStudy
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if err := s.applyUpdates(education, updates); err != nil {
		return nil, err
	}
	return education, nil
}

func (s *PortfolioService) DeleteEducation(id, ownerID uint) error {
	education, err := s.findEducation(id, ownerID)
	if err != nil {
		return err
	}
	return s.db.Delete(education).Error
}

func (s *PortfolioService) findEducation(id, ownerID uint) (*models.Education, error) {
	var education models.Education
	if err := s.db.First(&education, id).Error; err != nil {
		return nil, translateFindError(err)
	}
	if education.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return &education, nil
}

// applyUpdates writes the supplied columns in one statement. An empty patch
// is a no-op, not an error.
func (s *PortfolioService) applyUpdates(record interface{}, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(record).Updates(updates).Error
}

func translateFindError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
