package costcenter_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gestorfin/dre-management/internal"
	costcenterDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/costcenter"
	"github.com/gestorfin/dre-management/internal/costcenter"
)

func TestCostCenter(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CostCenter Suite")
}

type mockCostCenterRepository struct {
	centers     map[int64]*costcenterDatamodel.CostCenter
	entryCounts map[int64]int64
	nextID      int64
	deletedIDs  []int64
}

func newMockCostCenterRepository() *mockCostCenterRepository {
	return &mockCostCenterRepository{
		centers:     make(map[int64]*costcenterDatamodel.CostCenter),
		entryCounts: make(map[int64]int64),
		nextID:      1,
	}
}

func (m *mockCostCenterRepository) Create(cc *costcenterDatamodel.CostCenter) error {
	cc.ID = m.nextID
	m.nextID++
	cc.CreatedAt = time.Now()
	cc.UpdatedAt = time.Now()
	m.centers[cc.ID] = cc
	return nil
}

func (m *mockCostCenterRepository) GetByCompany(companyID int64) ([]*costcenterDatamodel.CostCenter, error) {
	var out []*costcenterDatamodel.CostCenter
	for _, cc := range m.centers {
		if cc.CompanyID == companyID {
			out = append(out, cc)
		}
	}
	return out, nil
}

func (m *mockCostCenterRepository) GetByIDAndCompany(id, companyID int64) (*costcenterDatamodel.CostCenter, error) {
	cc, exists := m.centers[id]
	if !exists || cc.CompanyID != companyID {
		return nil, nil
	}
	return cc, nil
}

func (m *mockCostCenterRepository) Update(cc *costcenterDatamodel.CostCenter) error {
	m.centers[cc.ID] = cc
	return nil
}

func (m *mockCostCenterRepository) Delete(id int64) error {
	delete(m.centers, id)
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

func (m *mockCostCenterRepository) CountEntries(companyID, costCenterID int64) (int64, error) {
	return m.entryCounts[costCenterID], nil
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

var _ = Describe("CostCenterService", func() {
	var (
		service    *costcenter.Service
		mockRepo   *mockCostCenterRepository
		membership *mockMembership
	)

	BeforeEach(func() {
		mockRepo = newMockCostCenterRepository()
		membership = &mockMembership{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = costcenter.NewService(mockRepo, membership, logger)
	})

	Describe("CreateCostCenter", func() {
		It("stores a trimmed name and normalized type", func() {
			created, err := service.CreateCostCenter(1, costcenter.CreateCostCenterDTO{
				CompanyID: 10,
				Name:      "  Administrativo  ",
				Type:      "EXPENSE",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(created.Name).To(Equal("Administrativo"))
			Expect(created.Type).To(Equal(costcenter.TypeExpense))
			Expect(created.ExpenseClass).To(Equal(costcenter.ClassVariable))
		})

		It("keeps FIXED only on expense centers", func() {
			created, err := service.CreateCostCenter(1, costcenter.CreateCostCenterDTO{
				CompanyID:    10,
				Name:         "Comercial",
				Type:         "REVENUE",
				ExpenseClass: "FIXED",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ExpenseClass).To(Equal(costcenter.ClassVariable))
		})

		It("accepts the legacy expense_category alias", func() {
			created, err := service.CreateCostCenter(1, costcenter.CreateCostCenterDTO{
				CompanyID:       10,
				Name:            "Administrativo",
				Type:            "EXPENSE",
				ExpenseCategory: "fixed",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ExpenseClass).To(Equal(costcenter.ClassFixed))
		})

		It("defaults unknown types to expense", func() {
			created, err := service.CreateCostCenter(1, costcenter.CreateCostCenterDTO{
				CompanyID: 10,
				Name:      "Misto",
				Type:      "whatever",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Type).To(Equal(costcenter.TypeExpense))
		})
	})

	Describe("DeleteCostCenter", func() {
		var costCenterID int64

		BeforeEach(func() {
			created, err := service.CreateCostCenter(1, costcenter.CreateCostCenterDTO{
				CompanyID: 10,
				Name:      "Operação",
				Type:      "EXPENSE",
			})
			Expect(err).NotTo(HaveOccurred())
			costCenterID = created.ID
		})

		It("deletes a cost center with no entries", func() {
			Expect(service.DeleteCostCenter(1, costCenterID, 10)).To(Succeed())
			Expect(mockRepo.deletedIDs).To(ContainElement(costCenterID))
		})

		It("rejects deletion while entries still reference it", func() {
			mockRepo.entryCounts[costCenterID] = 3

			err := service.DeleteCostCenter(1, costCenterID, 10)
			Expect(err).To(Equal(internal.ErrCostCenterInUse))
			Expect(mockRepo.centers).To(HaveKey(costCenterID))
		})

		It("reports not found for another company's cost center", func() {
			err := service.DeleteCostCenter(1, costCenterID, 77)
			Expect(err).To(Equal(internal.ErrCostCenterNotFound))
		})

		It("rejects callers without membership", func() {
			membership.denied = true
			err := service.DeleteCostCenter(1, costCenterID, 10)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(403))
		})
	})

	Describe("UpdateCostCenter", func() {
		It("rewrites name, type and class", func() {
			created, err := service.CreateCostCenter(1, costcenter.CreateCostCenterDTO{
				CompanyID: 10,
				Name:      "Operação",
				Type:      "EXPENSE",
			})
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.UpdateCostCenter(1, created.ID, costcenter.UpdateCostCenterDTO{
				CompanyID:    10,
				Name:         "Operação Logística",
				Type:         "EXPENSE",
				ExpenseClass: "FIXED",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.Name).To(Equal("Operação Logística"))
			Expect(updated.ExpenseClass).To(Equal(costcenter.ClassFixed))
		})

		It("reports not found for an unknown id", func() {
			_, err := service.UpdateCostCenter(1, 9999, costcenter.UpdateCostCenterDTO{
				CompanyID: 10,
				Name:      "Nada",
			})
			Expect(err).To(Equal(internal.ErrCostCenterNotFound))
		})
	})
})
