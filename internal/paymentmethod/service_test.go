package paymentmethod_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gestorfin/dre-management/internal"
	paymentmethodDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/paymentmethod"
	"github.com/gestorfin/dre-management/internal/paymentmethod"
)

func TestPaymentMethod(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PaymentMethod Suite")
}

type mockPaymentMethodRepository struct {
	methods map[int64]*paymentmethodDatamodel.PaymentMethod
	nextID  int64
}

func newMockPaymentMethodRepository() *mockPaymentMethodRepository {
	return &mockPaymentMethodRepository{
		methods: make(map[int64]*paymentmethodDatamodel.PaymentMethod),
		nextID:  1,
	}
}

func (m *mockPaymentMethodRepository) Create(pm *paymentmethodDatamodel.PaymentMethod) error {
	pm.ID = m.nextID
	m.nextID++
	pm.CreatedAt = time.Now()
	pm.UpdatedAt = time.Now()
	m.methods[pm.ID] = pm
	return nil
}

func (m *mockPaymentMethodRepository) GetByCompany(companyID int64) ([]*paymentmethodDatamodel.PaymentMethod, error) {
	var out []*paymentmethodDatamodel.PaymentMethod
	for _, pm := range m.methods {
		if pm.CompanyID == companyID {
			out = append(out, pm)
		}
	}
	return out, nil
}

func (m *mockPaymentMethodRepository) GetByIDAndCompany(id, companyID int64) (*paymentmethodDatamodel.PaymentMethod, error) {
	pm, exists := m.methods[id]
	if !exists || pm.CompanyID != companyID {
		return nil, nil
	}
	return pm, nil
}

func (m *mockPaymentMethodRepository) GetByCompanyAndName(companyID int64, name string) (*paymentmethodDatamodel.PaymentMethod, error) {
	for _, pm := range m.methods {
		if pm.CompanyID == companyID && pm.Name == name {
			return pm, nil
		}
	}
	return nil, nil
}

func (m *mockPaymentMethodRepository) Update(pm *paymentmethodDatamodel.PaymentMethod) error {
	pm.UpdatedAt = time.Now()
	m.methods[pm.ID] = pm
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

var _ = Describe("PaymentMethodService", func() {
	var (
		service    *paymentmethod.Service
		mockRepo   *mockPaymentMethodRepository
		membership *mockMembership
	)

	BeforeEach(func() {
		mockRepo = newMockPaymentMethodRepository()
		membership = &mockMembership{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = paymentmethod.NewService(mockRepo, membership, logger)
	})

	Describe("CreatePaymentMethod", func() {
		It("creates an active method with a trimmed name", func() {
			created, err := service.CreatePaymentMethod(1, paymentmethod.CreatePaymentMethodDTO{
				CompanyID: 10,
				Name:      "  Pix  ",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(created.Name).To(Equal("Pix"))
			Expect(created.Active).To(BeTrue())
		})

		It("rejects a duplicate name within the company", func() {
			_, err := service.CreatePaymentMethod(1, paymentmethod.CreatePaymentMethodDTO{CompanyID: 10, Name: "Pix"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreatePaymentMethod(1, paymentmethod.CreatePaymentMethodDTO{CompanyID: 10, Name: "Pix"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
		})

		It("allows the same name in another company", func() {
			_, err := service.CreatePaymentMethod(1, paymentmethod.CreatePaymentMethodDTO{CompanyID: 10, Name: "Pix"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreatePaymentMethod(1, paymentmethod.CreatePaymentMethodDTO{CompanyID: 20, Name: "Pix"})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("UpdatePaymentMethod", func() {
		var methodID int64

		BeforeEach(func() {
			created, err := service.CreatePaymentMethod(1, paymentmethod.CreatePaymentMethodDTO{CompanyID: 10, Name: "Cartão"})
			Expect(err).NotTo(HaveOccurred())
			methodID = created.ID
		})

		It("renames and deactivates", func() {
			name := "Cartão de Crédito"
			active := false
			updated, err := service.UpdatePaymentMethod(1, methodID, paymentmethod.UpdatePaymentMethodDTO{
				CompanyID: 10,
				Name:      &name,
				Active:    &active,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.Name).To(Equal("Cartão de Crédito"))
			Expect(updated.Active).To(BeFalse())
		})

		It("leaves untouched fields alone", func() {
			active := false
			updated, err := service.UpdatePaymentMethod(1, methodID, paymentmethod.UpdatePaymentMethodDTO{
				CompanyID: 10,
				Active:    &active,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Cartão"))
		})

		It("reports not found for another company's method", func() {
			_, err := service.UpdatePaymentMethod(1, methodID, paymentmethod.UpdatePaymentMethodDTO{CompanyID: 99})
			Expect(err).To(Equal(internal.ErrPaymentMethodNotFound))
		})
	})
})
