package insights

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"internship-app/database"
	"internship-app/internal/domain/internships"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SkillGapAnalysis compares the skills demanded by currently open internships
// against the ones the user's applications already cover. Premium feature.
func SkillGapAnalysis(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	demand, err := tagCounts(
		database.DB.Model(&internships.Internship{}).
			Where("active = ?", true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load internships"})
		return
	}

	covered, err := tagCounts(
		database.DB.Model(&internships.Internship{}).
			Joins("JOIN applications ON applications.internship_id = internships.id").
			Where("applications.user_id = ?", userID),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load applications"})
		return
	}

	type gap struct {
		Skill    string `json:"skill"`
		Listings int    `json:"listings"`
	}

	var gaps []gap
	for tag, n := range demand {
		if covered[tag] == 0 {
			gaps = append(gaps, gap{Skill: tag, Listings: n})
		}
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Listings != gaps[j].Listings {
			return gaps[i].Listings > gaps[j].Listings
		}
		return gaps[i].Skill < gaps[j].Skill
	})
	if len(gaps) > 10 {
		gaps = gaps[:10]
	}

	coveredList := make([]string, 0, len(covered))
	for tag := range covered {
		coveredList = append(coveredList, tag)
	}
	sort.Strings(coveredList)

	c.JSON(http.StatusOK, gin.H{
		"covered_skills": coveredList,
		"missing_skills": gaps,
	})
}

// tagCounts flattens the jsonb tags column of the selected rows into
// lowercase tag -> occurrence count.
func tagCounts(q *gorm.DB) (map[string]int, error) {
	var rows []datatypes.JSON
	if err := q.Pluck("internships.tags", &rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, raw := range rows {
		if len(raw) == 0 {
			continue
		}
		var tags []string
		if err := json.Unmarshal(raw, &tags); err != nil {
			continue
		}
		for _, t := range tags {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				counts[t]++
			}
		}
	}
	return counts, nil
}
