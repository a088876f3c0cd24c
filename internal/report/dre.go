package report

import "github.com/shopspring/decimal"

// Account group taxonomy of the income statement. Groups missing from an
// input mapping contribute zero; keys outside the taxonomy are carried in
// the raw breakdown but never enter a subtotal.
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

type Totals struct {
	ReceitaBruta         decimal.Decimal `json:"receitaBruta"`
	Deducoes             decimal.Decimal `json:"deducoes"`
	ReceitaLiquida       decimal.Decimal `json:"receitaLiquida"`
	Custos               decimal.Decimal `json:"custos"`
	LucroBruto           decimal.Decimal `json:"lucroBruto"`
	DespesasOperacionais decimal.Decimal `json:"despesasOperacionais"`
	EBIT                 decimal.Decimal `json:"ebit"`
	ResultadoFinanceiro  decimal.Decimal `json:"resultadoFinanceiro"`
	ResultadoLiquido     decimal.Decimal `json:"resultadoLiquido"`
	MargemBruta          decimal.Decimal `json:"margemBruta"`
	MargemLiquida        decimal.Decimal `json:"margemLiquida"`
	DespesaFixa          decimal.Decimal `json:"despesaFixa"`
	DespesaVariavel      decimal.Decimal `json:"despesaVariavel"`
	DespesaTotal         decimal.Decimal `json:"despesaTotal"`
}

type Statement struct {
	Grupos map[string]decimal.Decimal `json:"grupos"`
	Totais Totals                     `json:"totais"`
}

func groupTotal(groupTotals map[string]decimal.Decimal, key string) decimal.Decimal {
	return groupTotals[key]
}

// BuildStatement derives the income statement lines from per-group totals.
// Pure and total: every input mapping, including the empty one, yields a
// fully defined statement. Margins are exactly zero when gross revenue is
// zero. The fixed/variable split is not derivable from group totals and is
// filled in by the caller.
func BuildStatement(groupTotals map[string]decimal.Decimal) Statement {
	receitaBruta := groupTotal(groupTotals, GroupReceitaBruta)
	deducoes := groupTotal(groupTotals, GroupDeducoes)
	receitaLiquida := receitaBruta.Sub(deducoes)

	custos := groupTotal(groupTotals, GroupCustos)
	lucroBruto := receitaLiquida.Sub(custos)

	despesasOperacionais := groupTotal(groupTotals, GroupDespesasVendas).
		Add(groupTotal(groupTotals, GroupDespesasAdmin))
	ebit := lucroBruto.Sub(despesasOperacionais)

	despesasFinanceiras := groupTotal(groupTotals, GroupDespesasFinanceiras)
	outrasReceitas := groupTotal(groupTotals, GroupOutrasReceitas)
	outrasDespesas := groupTotal(groupTotals, GroupOutrasDespesas)

	resultadoFinanceiro := outrasReceitas.Sub(despesasFinanceiras).Sub(outrasDespesas)
	resultadoLiquido := ebit.Add(resultadoFinanceiro)

	var margemBruta, margemLiquida decimal.Decimal
	if !receitaBruta.IsZero() {
		margemBruta = lucroBruto.Div(receitaBruta)
		margemLiquida = resultadoLiquido.Div(receitaBruta)
	}

	return Statement{
		Grupos: groupTotals,
		Totais: Totals{
			ReceitaBruta:         receitaBruta,
			Deducoes:             deducoes,
			ReceitaLiquida:       receitaLiquida,
			Custos:               custos,
			LucroBruto:           lucroBruto,
			DespesasOperacionais: despesasOperacionais,
			EBIT:                 ebit,
			ResultadoFinanceiro:  resultadoFinanceiro,
			ResultadoLiquido:     resultadoLiquido,
			MargemBruta:          margemBruta,
			MargemLiquida:        margemLiquida,
		},
	}
}
