package domain

// Company is a row of the companies table.
type Company struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanySummary is the list projection of a company.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyDetail is a company with the ids of the invoices it owns, ascending.
type CompanyDetail struct {
	Company
	Invoices []int64 `json:"invoices"`
}
