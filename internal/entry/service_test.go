package entry_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/gestorfin/dre-management/internal"
	"github.com/gestorfin/dre-management/internal/auth"
	costcenterDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/costcenter"
	entryDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/entry"
	"github.com/gestorfin/dre-management/internal/entry"
)

func TestEntry(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Entry Suite")
}

type mockEntryRepository struct {
	entries     map[int64]*entryDatamodel.Entry
	nextID      int64
	createError error
	getError    error
	updateError error
	deleteError error
}

func newMockEntryRepository() *mockEntryRepository {
	return &mockEntryRepository{
		entries: make(map[int64]*entryDatamodel.Entry),
		nextID:  1,
	}
}

func (m *mockEntryRepository) Create(e *entryDatamodel.Entry) error {
	if m.createError != nil {
		return m.createError
	}
	e.ID = m.nextID
	m.nextID++
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()
	m.entries[e.ID] = e
	return nil
}

func (m *mockEntryRepository) GetByIDAndCompany(id, companyID int64) (*entryDatamodel.Entry, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	e, exists := m.entries[id]
	if !exists || e.CompanyID != companyID {
		return nil, nil
	}
	return e, nil
}

func (m *mockEntryRepository) List(filter entry.ListEntriesFilter) ([]*entryDatamodel.Entry, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	var out []*entryDatamodel.Entry
	for _, e := range m.entries {
		if e.CompanyID != filter.CompanyID {
			continue
		}
		if filter.CompetenceMonth != "" && e.CompetenceMonth != filter.CompetenceMonth {
			continue
		}
		if filter.CostCenterID != 0 && e.CostCenterID != filter.CostCenterID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockEntryRepository) Update(e *entryDatamodel.Entry) error {
	if m.updateError != nil {
		return m.updateError
	}
	e.UpdatedAt = time.Now()
	m.entries[e.ID] = e
	return nil
}

func (m *mockEntryRepository) Delete(id int64) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.entries, id)
	return nil
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

type mockCostCenterResolver struct {
	centers map[int64]*costcenterDatamodel.CostCenter
}

func (m *mockCostCenterResolver) GetByIDAndCompany(id, companyID int64) (*costcenterDatamodel.CostCenter, error) {
	cc, exists := m.centers[id]
	if !exists || cc.CompanyID != companyID {
		return nil, nil
	}
	return cc, nil
}

type mockAccountResolver struct {
	accountID int64
	calls     []string
}

func (m *mockAccountResolver) EnsureDefaultAccount(companyID int64, accountType string) (int64, error) {
	m.calls = append(m.calls, accountType)
	return m.accountID, nil
}

type mockPasswordVerifier struct {
	wrongPassword bool
}

func (m *mockPasswordVerifier) VerifyPassword(userID int64, password string) error {
	if m.wrongPassword {
		return auth.ErrInvalidCredentials
	}
	return nil
}

var _ = Describe("EntryService", func() {
	var (
		service     *entry.Service
		mockRepo    *mockEntryRepository
		membership  *mockMembership
		costCenters *mockCostCenterResolver
		accounts    *mockAccountResolver
		passwords   *mockPasswordVerifier
	)

	BeforeEach(func() {
		mockRepo = newMockEntryRepository()
		membership = &mockMembership{}
		costCenters = &mockCostCenterResolver{centers: map[int64]*costcenterDatamodel.CostCenter{
			5: {ID: 5, CompanyID: 10, Name: "Comercial", Type: "REVENUE", ExpenseClass: "VARIABLE"},
			6: {ID: 6, CompanyID: 10, Name: "Administrativo", Type: "EXPENSE", ExpenseClass: "FIXED"},
		}}
		accounts = &mockAccountResolver{accountID: 42}
		passwords = &mockPasswordVerifier{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = entry.NewService(mockRepo, membership, costCenters, accounts, passwords, logger)
	})

	Describe("CreateEntry", func() {
		It("derives the entry type and account from the cost center", func() {
			created, err := service.CreateEntry(1, entry.CreateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-06",
				CostCenterID:    6,
				Description:     "Aluguel",
				Amount:          decimal.NewFromInt(300),
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(created.Type).To(Equal("EXPENSE"))
			Expect(created.AccountID).To(Equal(int64(42)))
			Expect(accounts.calls).To(Equal([]string{"EXPENSE"}))
		})

		It("defaults the description to the cost center name", func() {
			created, err := service.CreateEntry(1, entry.CreateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-06",
				CostCenterID:    5,
				Description:     "   ",
				Amount:          decimal.NewFromInt(1000),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Description).To(Equal("Comercial"))
		})

		It("rejects a cost center belonging to another company", func() {
			costCenters.centers[7] = &costcenterDatamodel.CostCenter{ID: 7, CompanyID: 99, Name: "Outro", Type: "EXPENSE"}

			_, err := service.CreateEntry(1, entry.CreateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-06",
				CostCenterID:    7,
				Amount:          decimal.NewFromInt(50),
			})
			Expect(err).To(Equal(internal.ErrCostCenterNotFound))
		})

		It("rejects a malformed competence month", func() {
			_, err := service.CreateEntry(1, entry.CreateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-13",
				CostCenterID:    5,
				Amount:          decimal.NewFromInt(50),
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("rejects a non-positive amount", func() {
			_, err := service.CreateEntry(1, entry.CreateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-06",
				CostCenterID:    5,
				Amount:          decimal.NewFromInt(-5),
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("rejects callers without membership", func() {
			membership.denied = true
			_, err := service.CreateEntry(1, entry.CreateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-06",
				CostCenterID:    5,
				Amount:          decimal.NewFromInt(50),
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(403))
		})
	})

	Describe("UpdateEntry", func() {
		var entryID int64

		BeforeEach(func() {
			created, err := service.CreateEntry(1, entry.CreateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-06",
				CostCenterID:    6,
				Description:     "Aluguel",
				Amount:          decimal.NewFromInt(300),
			})
			Expect(err).NotTo(HaveOccurred())
			entryID = created.ID
		})

		It("rewrites the entry with a correct password", func() {
			updated, err := service.UpdateEntry(1, entryID, entry.UpdateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-07",
				CostCenterID:    5,
				Amount:          decimal.NewFromInt(450),
				Password:        "secret",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.CompetenceMonth).To(Equal("2025-07"))
			Expect(updated.Type).To(Equal("REVENUE"))
			Expect(updated.Amount.Equal(decimal.NewFromInt(450))).To(BeTrue())
		})

		It("rejects a wrong password before looking the entry up", func() {
			passwords.wrongPassword = true
			mockRepo.getError = errors.New("should not be called")

			_, err := service.UpdateEntry(1, entryID, entry.UpdateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-07",
				CostCenterID:    5,
				Amount:          decimal.NewFromInt(450),
				Password:        "wrong",
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(401))
		})

		It("distinguishes a missing entry from a bad password", func() {
			_, err := service.UpdateEntry(1, 9999, entry.UpdateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-07",
				CostCenterID:    5,
				Amount:          decimal.NewFromInt(450),
				Password:        "secret",
			})
			Expect(err).To(Equal(internal.ErrEntryNotFound))
		})

		It("requires the password field", func() {
			_, err := service.UpdateEntry(1, entryID, entry.UpdateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-07",
				CostCenterID:    5,
				Amount:          decimal.NewFromInt(450),
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})
	})

	Describe("DeleteEntry", func() {
		var entryID int64

		BeforeEach(func() {
			created, err := service.CreateEntry(1, entry.CreateEntryDTO{
				CompanyID:       10,
				CompetenceMonth: "2025-06",
				CostCenterID:    6,
				Amount:          decimal.NewFromInt(300),
			})
			Expect(err).NotTo(HaveOccurred())
			entryID = created.ID
		})

		It("deletes with a correct password", func() {
			err := service.DeleteEntry(1, entryID, entry.DeleteEntryDTO{CompanyID: 10, Password: "secret"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.entries).NotTo(HaveKey(entryID))
		})

		It("rejects a wrong password", func() {
			passwords.wrongPassword = true
			err := service.DeleteEntry(1, entryID, entry.DeleteEntryDTO{CompanyID: 10, Password: "wrong"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(401))
			Expect(mockRepo.entries).To(HaveKey(entryID))
		})

		It("reports not found for an entry of another company", func() {
			err := service.DeleteEntry(1, entryID, entry.DeleteEntryDTO{CompanyID: 77, Password: "secret"})
			Expect(err).To(Equal(internal.ErrEntryNotFound))
		})
	})

	Describe("ListEntries", func() {
		BeforeEach(func() {
			for _, dto := range []entry.CreateEntryDTO{
				{CompanyID: 10, CompetenceMonth: "2025-06", CostCenterID: 5, Amount: decimal.NewFromInt(100)},
				{CompanyID: 10, CompetenceMonth: "2025-06", CostCenterID: 6, Amount: decimal.NewFromInt(200)},
				{CompanyID: 10, CompetenceMonth: "2025-07", CostCenterID: 6, Amount: decimal.NewFromInt(300)},
			} {
				_, err := service.CreateEntry(1, dto)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("filters by competence month and cost center", func() {
			entries, err := service.ListEntries(1, entry.ListEntriesFilter{CompanyID: 10, CompetenceMonth: "2025-06", CostCenterID: 6})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Amount.Equal(decimal.NewFromInt(200))).To(BeTrue())
		})

		It("requires a company", func() {
			_, err := service.ListEntries(1, entry.ListEntriesFilter{})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeMissingCompany))
		})

		It("rejects a malformed competence filter", func() {
			_, err := service.ListEntries(1, entry.ListEntriesFilter{CompanyID: 10, CompetenceMonth: "062025"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidPeriod))
		})
	})
})
