// Package domain contains the invoice model and its payment rules.
package domain

// Invoice is a row of the invoices table.
type Invoice struct {
	ID       int64    `json:"id"`
	CompCode string   `json:"comp_code"`
	Amt      float64  `json:"amt"`
	Paid     bool     `json:"paid"`
	AddDate  Date     `json:"add_date"`
	PaidDate NullDate `json:"paid_date"`
}

// InvoiceSummary is the list projection of an invoice.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceCompany describes the company that owns an invoice.
type InvoiceCompany struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InvoiceDetail is an invoice joined with its company.
type InvoiceDetail struct {
	ID       int64          `json:"id"`
	Amt      float64        `json:"amt"`
	Paid     bool           `json:"paid"`
	AddDate  Date           `json:"add_date"`
	PaidDate NullDate       `json:"paid_date"`
	Company  InvoiceCompany `json:"company"`
}
