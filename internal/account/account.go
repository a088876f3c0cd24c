package account

import (
	"time"

	accountDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/account"
)

const (
	TypeRevenue = "REVENUE"
	TypeExpense = "EXPENSE"
)

// DRE line-item groups an account can post to. Entries whose account carries a
// group outside this set still aggregate, they just land outside the
// statement subtotals.
const (
	GroupReceitaBruta        = "RECEITA_BRUTA"
	GroupDeducoes            = "DEDUCOES"
	GroupCustos              = "CUSTOS"
	GroupDespesasVendas      = "DESPESAS_VENDAS"
	GroupDespesasAdmin       = "DESPESAS_ADMIN"
	GroupDespesasFinanceiras = "DESPESAS_FINANCEIRAS"
	GroupOutrasReceitas      = "OUTRAS_RECEITAS"
	GroupOutrasDespesas      = "OUTRAS_DESPESAS"
	GroupSemGrupo            = "SEM_GRUPO"
)

// Default accounts created lazily when an entry is posted without one.
const (
	DefaultRevenueAccountName  = "Receitas (Auto)"
	DefaultRevenueAccountGroup = GroupReceitaBruta
	DefaultExpenseAccountName  = "Despesas (Auto)"
	DefaultExpenseAccountGroup = "DESPESAS_OPERACIONAIS"
)

type Account struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Group     string    `json:"group"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NormalizeType(t string) string {
	if t == TypeRevenue {
		return TypeRevenue
	}
	return TypeExpense
}

func FromDataModel(a *accountDatamodel.Account) *Account {
	return &Account{
		ID:        a.ID,
		CompanyID: a.CompanyID,
		Name:      a.Name,
		Type:      a.Type,
		Group:     a.Group,
		SortOrder: a.SortOrder,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func ToDataModel(a *Account) *accountDatamodel.Account {
	return &accountDatamodel.Account{
		ID:        a.ID,
		CompanyID: a.CompanyID,
		Name:      a.Name,
		Type:      a.Type,
		Group:     a.Group,
		SortOrder: a.SortOrder,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromDataModelSlice(accounts []*accountDatamodel.Account) []*Account {
	result := make([]*Account, len(accounts))
	for i, a := range accounts {
		result[i] = FromDataModel(a)
	}
	return result
}
