package internships

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"internship-app/database"
	"internship-app/internal/domain/internships"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// GET /internships
func ListInternships(c *gin.Context) {
	q := database.DB.Model(&internships.Internship{}).Where("active = ?", true)

	if company := c.Query("company"); company != "" {
		q = q.Where("company ILIKE ?", "%"+company+"%")
	}
	if location := c.Query("location"); location != "" {
		q = q.Where("location ILIKE ?", "%"+location+"%")
	}
	if c.Query("remote") == "true" {
		q = q.Where("remote = ?", true)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("title ILIKE ? OR description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var list []internships.Internship
	if err := q.Order("created_at DESC").Limit(100).Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load internships"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /internships/:id
func GetInternship(c *gin.Context) {
	var item internships.Internship
	if err := database.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Internship not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// GET /applications
func ListMyApplications(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var apps []internships.Application
	if err := database.DB.
		Preload("Internship").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load applications"})
		return
	}

	c.JSON(http.StatusOK, apps)
}

// POST /internships/:id/apply — a single manual application, outside the
// auto-apply gate. Free users can always do this one at a time.
func ApplyManually(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid internship id"})
		return
	}

	var item internships.Internship
	if err := database.DB.First(&item, uint(id64)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Internship not found"})
		return
	}
	if !item.Active {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Internship is no longer open"})
		return
	}
	if item.ApplyBy != nil && item.ApplyBy.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Application deadline has passed"})
		return
	}

	app := internships.Application{
		UserID:       userID,
		InternshipID: item.ID,
		Status:       internships.StatusSubmitted,
		ViaAutoApply: false,
	}
	if err := database.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already applied to this internship"})
		return
	}

	c.JSON(http.StatusOK, app)
}

// POST /admin/internships
func CreateInternship(c *gin.Context) {
	var input struct {
		Company     string     `json:"company" binding:"required"`
		Title       string     `json:"title" binding:"required"`
		Location    string     `json:"location"`
		Remote      bool       `json:"remote"`
		StipendEUR  *float64   `json:"stipend_eur"`
		Tags        []string   `json:"tags"`
		Description string     `json:"description"`
		ApplyBy     *time.Time `json:"apply_by"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags, err := json.Marshal(input.Tags)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tags"})
		return
	}

	item := internships.Internship{
		Company:     input.Company,
		Title:       input.Title,
		Location:    input.Location,
		Remote:      input.Remote,
		StipendEUR:  input.StipendEUR,
		Tags:        datatypes.JSON(tags),
		Description: input.Description,
		ApplyBy:     input.ApplyBy,
		Active:      true,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create internship"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// POST /admin/internships/:id/deactivate
func DeactivateInternship(c *gin.Context) {
	if err := database.DB.Model(&internships.Internship{}).
		Where("id = ?", c.Param("id")).
		Update("active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate internship"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Internship deactivated"})
}
