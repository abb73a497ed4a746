package profiles

import (
	"fmt"
	"regexp"
	"strings"

	"internship-app/internal/domain/users"

	"gorm.io/gorm"
)

/*
	Profile slug helpers
	--------------------
	- Responsible ONLY for:
	  • generating public profile slugs
	  • persisting them
	  • building public profile URLs
	- No access logic, no billing logic here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug generates a URL-safe base slug from the user's name.
// Example: "Ada Lovelace" -> "ada-lovelace"
func MakeSlug(name, lastname string) string {
	base := strings.ToLower(strings.TrimSpace(name + " " + lastname))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "student"
	}
	return base
}

// EnsureProfileSlug ensures user.ProfileSlug exists and is persisted.
// Must be called AFTER the user has an ID (after Create).
//
// IMPORTANT: pass db in, do NOT import internship-app/database here (avoids
// import cycle).
func EnsureProfileSlug(db *gorm.DB, user *users.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("user is nil")
	}
	if db == nil {
		return "", fmt.Errorf("db is nil")
	}

	if user.ProfileSlug != nil && strings.TrimSpace(*user.ProfileSlug) != "" {
		return strings.TrimSpace(*user.ProfileSlug), nil
	}

	if user.ID == 0 {
		return "", fmt.Errorf("user ID missing (call EnsureProfileSlug after Create)")
	}

	base := MakeSlug(user.Name, user.Lastname)
	slug := fmt.Sprintf("%s-%d", base, user.ID)

	user.ProfileSlug = &slug

	if err := db.
		Model(&users.User{}).
		Where("id = ?", user.ID).
		Update("profile_slug", slug).Error; err != nil {
		return "", err
	}

	return slug, nil
}

// BuildPublicURL builds the public profile URL from a slug.
// Example: "ada-lovelace-32" -> "https://internhub.app/p/ada-lovelace-32"
func BuildPublicURL(slug string) string {
	return "https://internhub.app/p/" + slug
}
