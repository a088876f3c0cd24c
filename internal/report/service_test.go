package report_test

import (
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/gestorfin/dre-management/internal"
	"github.com/gestorfin/dre-management/internal/report"
)

type mockReportRepository struct {
	rows      []report.EntryRow
	listError error
}

func (m *mockReportRepository) ListForPeriod(companyID int64, competenceMonth string, costCenterID int64) ([]report.EntryRow, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var out []report.EntryRow
	for _, row := range m.rows {
		if row.CompetenceMonth == competenceMonth {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockReportRepository) ListForCompany(companyID int64) ([]report.EntryRow, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.rows, nil
}

type mockMembership struct {
	denied bool
}

func (m *mockMembership) RequireMembership(userID, companyID int64) error {
	if m.denied {
		return internal.ErrNoCompanyAccess
	}
	return nil
}

var _ = Describe("ReportService", func() {
	var (
		service    *report.Service
		mockRepo   *mockReportRepository
		membership *mockMembership
	)

	BeforeEach(func() {
		mockRepo = &mockReportRepository{}
		membership = &mockMembership{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = report.NewService(mockRepo, membership, logger)
	})

	Describe("Statement", func() {
		It("builds the statement for a revenue and a fixed expense entry", func() {
			mockRepo.rows = []report.EntryRow{
				{
					CompetenceMonth: "2025-06",
					Amount:          dec(1000),
					Type:            "REVENUE",
					AccountGroup:    report.GroupReceitaBruta,
					CostCenterName:  "Comercial",
					CostCenterType:  "REVENUE",
				},
				{
					CompetenceMonth: "2025-06",
					Amount:          dec(300),
					Type:            "EXPENSE",
					AccountGroup:    report.GroupDespesasAdmin,
					CostCenterName:  "Administrativo",
					CostCenterType:  "EXPENSE",
					CostCenterClass: "FIXED",
				},
			}

			st, err := service.Statement(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06"})
			Expect(err).NotTo(HaveOccurred())

			Expect(st.Totais.ReceitaBruta.Equal(dec(1000))).To(BeTrue())
			Expect(st.Totais.DespesasOperacionais.Equal(dec(300))).To(BeTrue())
			Expect(st.Totais.EBIT.Equal(dec(700))).To(BeTrue())
			Expect(st.Totais.ResultadoLiquido.Equal(dec(700))).To(BeTrue())
			Expect(st.Totais.DespesaFixa.Equal(dec(300))).To(BeTrue())
			Expect(st.Totais.DespesaVariavel.IsZero()).To(BeTrue())
			Expect(st.Totais.DespesaTotal.Equal(dec(300))).To(BeTrue())
			Expect(st.Totais.MargemLiquida.String()).To(Equal("0.7"))
		})

		It("never classifies revenue entries into the fixed or variable buckets", func() {
			mockRepo.rows = []report.EntryRow{
				{CompetenceMonth: "2025-06", Amount: dec(500), Type: "REVENUE", AccountGroup: report.GroupReceitaBruta, CostCenterType: "REVENUE", CostCenterClass: "FIXED"},
				{CompetenceMonth: "2025-06", Amount: dec(120), Type: "EXPENSE", AccountGroup: report.GroupCustos, CostCenterType: "EXPENSE"},
			}

			st, err := service.Statement(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06"})
			Expect(err).NotTo(HaveOccurred())

			Expect(st.Totais.DespesaFixa.IsZero()).To(BeTrue())
			Expect(st.Totais.DespesaVariavel.Equal(dec(120))).To(BeTrue())
			Expect(st.Totais.DespesaTotal.Equal(dec(120))).To(BeTrue())
		})

		It("falls back to the entry type when the cost center relation is unresolved", func() {
			mockRepo.rows = []report.EntryRow{
				{CompetenceMonth: "2025-06", Amount: dec(250), Type: "EXPENSE", AccountGroup: report.GroupCustos},
				{CompetenceMonth: "2025-06", Amount: dec(900), Type: "REVENUE", AccountGroup: report.GroupReceitaBruta},
			}

			st, err := service.Statement(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06"})
			Expect(err).NotTo(HaveOccurred())

			// Expense without a cost center lands in the variable bucket.
			Expect(st.Totais.DespesaVariavel.Equal(dec(250))).To(BeTrue())
			Expect(st.Totais.DespesaFixa.IsZero()).To(BeTrue())
		})

		It("buckets entries whose account has no group under SEM_GRUPO", func() {
			mockRepo.rows = []report.EntryRow{
				{CompetenceMonth: "2025-06", Amount: dec(75), Type: "EXPENSE"},
			}

			st, err := service.Statement(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06"})
			Expect(err).NotTo(HaveOccurred())

			Expect(st.Grupos).To(HaveKey(report.GroupSemGrupo))
			Expect(st.Grupos[report.GroupSemGrupo].Equal(dec(75))).To(BeTrue())
		})

		It("echoes the query parameters", func() {
			st, err := service.Statement(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06", CostCenterID: 3})
			Expect(err).NotTo(HaveOccurred())

			Expect(st.CompanyID).To(Equal(int64(10)))
			Expect(st.CompetenceMonth).To(Equal("2025-06"))
			Expect(st.CostCenterID).NotTo(BeNil())
			Expect(*st.CostCenterID).To(Equal(int64(3)))
		})

		It("reports a null cost center filter when none was given", func() {
			st, err := service.Statement(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06"})
			Expect(err).NotTo(HaveOccurred())
			Expect(st.CostCenterID).To(BeNil())
		})

		It("rejects a missing company", func() {
			_, err := service.Statement(1, report.StatementQuery{CompetenceMonth: "2025-06"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("rejects a malformed competence month", func() {
			_, err := service.Statement(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "junho/2025"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidPeriod))
		})

		It("rejects callers without membership before touching entry data", func() {
			membership.denied = true
			mockRepo.listError = errors.New("should not be called")

			_, err := service.Statement(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(403))
		})

		It("wraps storage failures as opaque internal errors", func() {
			mockRepo.listError = errors.New("connection reset")

			_, err := service.Statement(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(500))
			Expect(appErr.Message).NotTo(ContainSubstring("connection reset"))
		})
	})

	Describe("StatementByCostCenter", func() {
		BeforeEach(func() {
			mockRepo.rows = []report.EntryRow{
				{CompetenceMonth: "2025-06", Amount: dec(1000), Type: "REVENUE", AccountGroup: report.GroupReceitaBruta, CostCenterName: "Comercial", CostCenterType: "REVENUE"},
				{CompetenceMonth: "2025-06", Amount: dec(300), Type: "EXPENSE", AccountGroup: report.GroupDespesasAdmin, CostCenterName: "Administrativo", CostCenterType: "EXPENSE", CostCenterClass: "FIXED"},
				{CompetenceMonth: "2025-06", Amount: dec(200), Type: "EXPENSE", AccountGroup: report.GroupCustos},
			}
		})

		It("partitions entries by cost center name", func() {
			breakdown, err := service.StatementByCostCenter(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06"})
			Expect(err).NotTo(HaveOccurred())

			Expect(breakdown.Centros).To(HaveLen(3))
			Expect(breakdown.Centros).To(HaveKey("Comercial"))
			Expect(breakdown.Centros).To(HaveKey("Administrativo"))

			comercial := breakdown.Centros["Comercial"]
			Expect(comercial.Totais.ReceitaBruta.Equal(dec(1000))).To(BeTrue())
			Expect(comercial.Totais.DespesaTotal.IsZero()).To(BeTrue())

			admin := breakdown.Centros["Administrativo"]
			Expect(admin.Totais.DespesaFixa.Equal(dec(300))).To(BeTrue())
		})

		It("groups entries with no resolvable cost center under Sem Centro", func() {
			breakdown, err := service.StatementByCostCenter(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06"})
			Expect(err).NotTo(HaveOccurred())

			Expect(breakdown.Centros).To(HaveKey("Sem Centro"))
			semCentro := breakdown.Centros["Sem Centro"]
			Expect(semCentro.Totais.Custos.Equal(dec(200))).To(BeTrue())
			Expect(semCentro.Totais.DespesaVariavel.Equal(dec(200))).To(BeTrue())
		})

		It("partitions without double counting or loss", func() {
			breakdown, err := service.StatementByCostCenter(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06"})
			Expect(err).NotTo(HaveOccurred())

			whole, err := service.Statement(1, report.StatementQuery{CompanyID: 10, CompetenceMonth: "2025-06"})
			Expect(err).NotTo(HaveOccurred())

			var receita, custos, despesas decimal.Decimal
			for _, st := range breakdown.Centros {
				receita = receita.Add(st.Totais.ReceitaBruta)
				custos = custos.Add(st.Totais.Custos)
				despesas = despesas.Add(st.Totais.DespesaTotal)
			}
			Expect(receita.Equal(whole.Totais.ReceitaBruta)).To(BeTrue())
			Expect(custos.Equal(whole.Totais.Custos)).To(BeTrue())
			Expect(despesas.Equal(whole.Totais.DespesaTotal)).To(BeTrue())
		})
	})

	Describe("Series", func() {
		BeforeEach(func() {
			mockRepo.rows = []report.EntryRow{
				{CompetenceMonth: "2025-03", Amount: dec(100), Type: "REVENUE", AccountGroup: report.GroupReceitaBruta, CostCenterType: "REVENUE"},
				{CompetenceMonth: "2025-01", Amount: dec(300), Type: "REVENUE", AccountGroup: report.GroupReceitaBruta, CostCenterType: "REVENUE"},
				{CompetenceMonth: "2025-02", Amount: dec(200), Type: "EXPENSE", AccountGroup: report.GroupCustos, CostCenterType: "EXPENSE"},
				{CompetenceMonth: "2024-12", Amount: dec(999), Type: "REVENUE", AccountGroup: report.GroupReceitaBruta, CostCenterType: "REVENUE"},
				{CompetenceMonth: "garbage", Amount: dec(777), Type: "REVENUE", AccountGroup: report.GroupReceitaBruta, CostCenterType: "REVENUE"},
			}
		})

		It("includes only months inside the inclusive bounds, in chronological order", func() {
			series, err := service.Series(1, report.SeriesQuery{CompanyID: 10, From: "2025-01", To: "2025-03"})
			Expect(err).NotTo(HaveOccurred())

			Expect(series.Series).To(HaveLen(3))
			Expect(series.Series[0].Month).To(Equal("2025-01"))
			Expect(series.Series[1].Month).To(Equal("2025-02"))
			Expect(series.Series[2].Month).To(Equal("2025-03"))
		})

		It("excludes entries outside the range and malformed competence strings", func() {
			series, err := service.Series(1, report.SeriesQuery{CompanyID: 10, From: "2025-01", To: "2025-03"})
			Expect(err).NotTo(HaveOccurred())

			for _, month := range series.Series {
				Expect(month.Month).NotTo(Equal("2024-12"))
				Expect(month.Month).NotTo(Equal("garbage"))
			}
		})

		It("omits months with no entries rather than padding them", func() {
			series, err := service.Series(1, report.SeriesQuery{CompanyID: 10, From: "2025-02", To: "2025-06"})
			Expect(err).NotTo(HaveOccurred())

			Expect(series.Series).To(HaveLen(2))
			Expect(series.Series[0].Month).To(Equal("2025-02"))
			Expect(series.Series[1].Month).To(Equal("2025-03"))
		})

		It("builds each month's statement independently", func() {
			series, err := service.Series(1, report.SeriesQuery{CompanyID: 10, From: "2025-01", To: "2025-03"})
			Expect(err).NotTo(HaveOccurred())

			Expect(series.Series[0].Totais.ReceitaBruta.Equal(dec(300))).To(BeTrue())
			Expect(series.Series[1].Totais.Custos.Equal(dec(200))).To(BeTrue())
			Expect(series.Series[1].Totais.DespesaVariavel.Equal(dec(200))).To(BeTrue())
			Expect(series.Series[2].Totais.ReceitaBruta.Equal(dec(100))).To(BeTrue())
		})

		It("rejects malformed bounds", func() {
			_, err := service.Series(1, report.SeriesQuery{CompanyID: 10, From: "2025-1", To: "2025-03"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidPeriod))
		})

		It("rejects callers without membership", func() {
			membership.denied = true
			_, err := service.Series(1, report.SeriesQuery{CompanyID: 10, From: "2025-01", To: "2025-03"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(403))
		})
	})
})
