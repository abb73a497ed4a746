package users

import (
	"internship-app/internal/domain/access"
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/profiles"
	"internship-app/internal/domain/users"
)

func BuildUserDTO(u users.User) UserDTO {
	profileURL := ""
	if u.ProfileSlug != nil && *u.ProfileSlug != "" {
		profileURL = profiles.BuildPublicURL(*u.ProfileSlug)
	}
	return UserDTO{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Lastname:       u.Lastname,
		University:     stringPtrIfNotEmpty(u.University),
		GraduationYear: u.GraduationYear,
		ResumeURL:      u.ResumeURL,
		Role:           u.Role,
		IsVerified:     u.IsVerified,
		ProfileURL:     profileURL,
	}
}

func BuildPlanDTO(p *entitlement.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		Name:          p.Name,
		StartedAt:     p.StartedAt,
		DurationDays:  p.DurationDays,
		Features:      p.Features,
		PaymentMethod: stringPtrIfNotEmpty(p.PaymentMethod),
	}
}

func BuildAccessDTO(policy access.Policy) AccessDTO {
	var limits *LimitsDTO
	if policy.Limits != nil {
		limits = &LimitsDTO{
			AutoApplyFreeQuota: policy.Limits.AutoApplyFreeQuota,
			TokenUnitCost:      policy.Limits.TokenUnitCost,
			DailyTokenCredit:   policy.Limits.DailyTokenCredit,
		}
	}
	return AccessDTO{
		State:        string(policy.State),
		Capabilities: policy.Capabilities,
		Limits:       limits,
	}
}

func stringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
