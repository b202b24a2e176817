package list_branches

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// BranchResponse филиал для страницы выбора
type BranchResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

// FromDomainBranches конвертирует список филиалов
func FromDomainBranches(list []domain.Branch) []BranchResponse {
	result := make([]BranchResponse, 0, len(list))
	for _, b := range list {
		result = append(result, BranchResponse{Code: b.Code, Name: b.Name, City: b.City})
	}
	return result
}
