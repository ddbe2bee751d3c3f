package dto

import (
	"time"

	"github.com/balanza-app/balanza/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to register a company.
type CreateCompanyRequest struct {
	Name             string   `json:"name" binding:"required"`
	RUT              string   `json:"rut" binding:"required"`
	Address          string   `json:"address"`
	Commune          string   `json:"commune"`
	BusinessActivity string   `json:"businessActivity"`
	CustomTypes      []string `json:"customAccountTypes"`
}

// UpdateCompanyRequest defines the data allowed for updating a company.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateCompanyRequest struct {
	Name             *string   `json:"name"`
	RUT              *string   `json:"rut"`
	Address          *string   `json:"address"`
	Commune          *string   `json:"commune"`
	BusinessActivity *string   `json:"businessActivity"`
	CustomTypes      *[]string `json:"customAccountTypes"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID          string    `json:"companyID"`
	Name               string    `json:"name"`
	RUT                string    `json:"rut"`
	Address            string    `json:"address"`
	Commune            string    `json:"commune"`
	BusinessActivity   string    `json:"businessActivity"`
	CustomAccountTypes []string  `json:"customAccountTypes"`
	CreatedAt          time.Time `json:"createdAt"`
	LastUpdatedAt      time.Time `json:"lastUpdatedAt"`
}

// ToCompanyResponse converts a domain.Company to its response DTO.
func ToCompanyResponse(company *domain.Company) CompanyResponse {
	custom := company.CustomAccountTypes
	if custom == nil {
		custom = []string{}
	}
	return CompanyResponse{
		CompanyID:          company.CompanyID,
		Name:               company.Name,
		RUT:                company.RUT,
		Address:            company.Address,
		Commune:            company.Commune,
		BusinessActivity:   company.BusinessActivity,
		CustomAccountTypes: custom,
		CreatedAt:          company.CreatedAt,
		LastUpdatedAt:      company.LastUpdatedAt,
	}
}

// ToCompanyListResponse converts a list of companies.
func ToCompanyListResponse(companies []domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(companies))
	for i := range companies {
		out[i] = ToCompanyResponse(&companies[i])
	}
	return out
}
