package report

import "github.com/shopspring/decimal"

// StatementQuery selects one company period, optionally narrowed to a
// single cost center.
type StatementQuery struct {
	CompanyID       int64
	CompetenceMonth string
	CostCenterID    int64
}

type SeriesQuery struct {
	CompanyID int64
	From      string
	To        string
}

type StatementReport struct {
	CompanyID       int64                      `json:"companyId"`
	CompetenceMonth string                     `json:"competenceMonth"`
	CostCenterID    *int64                     `json:"costCenterId"`
	Grupos          map[string]decimal.Decimal `json:"grupos"`
	Totais          Totals                     `json:"totais"`
}

type CostCenterReport struct {
	CompanyID       int64                `json:"companyId"`
	CompetenceMonth string               `json:"competenceMonth"`
	Centros         map[string]Statement `json:"centros"`
}

type MonthStatement struct {
	Month  string                     `json:"month"`
	Grupos map[string]decimal.Decimal `json:"grupos"`
	Totais Totals                     `json:"totais"`
}

type SeriesReport struct {
	CompanyID int64            `json:"companyId"`
	From      string           `json:"from"`
	To        string           `json:"to"`
	Series    []MonthStatement `json:"series"`
}
