package service_test

import (
	"context"

	"github.com/google/go-cmp/cmp"
	"github.com/moveplanner/estimator/internal/service"
	"github.com/moveplanner/estimator/internal/store"
	"github.com/moveplanner/estimator/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EstimateForm", Ordered, func() {
	var (
		s        store.Store
		provider *service.FormProvider
	)

	BeforeAll(func() {
		s = newTestStore()
		provider = service.NewFormProvider(s, nil)
	})

	AfterAll(func() {
		s.Close()
	})

	Context("GetDefaults", func() {
		It("returns empty collections for an empty catalog", func() {
			defaults, err := provider.EstimateForm().GetDefaults(context.TODO())
			Expect(err).To(BeNil())
			Expect(defaults.Buildings).NotTo(BeNil())
			Expect(defaults.Buildings).To(BeEmpty())
			Expect(defaults.HeavyItems).NotTo(BeNil())
			Expect(defaults.HeavyItems).To(BeEmpty())
			Expect(defaults.LeadSources).To(HaveLen(17))
		})

		It("assembles buildings, heavy items and lead sources", func() {
			err := s.Seed(context.TODO(), store.SeedData{
				Buildings: []store.SeedBuilding{
					{Type: "Apartment - 1 BDR"},
					{Type: "House - 3 BDR"},
					{Type: "Apartment - 1 BDR"},
				},
				HeavyItems: []model.HeavyItem{
					{Label: "Piano", Fee: 150},
					{Label: "Gun Safe", Fee: 125},
				},
			})
			Expect(err).To(BeNil())

			buildings, err := s.Building().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(buildings).To(HaveLen(3))

			defaults, err := provider.EstimateForm().GetDefaults(context.TODO())
			Expect(err).To(BeNil())

			expected := &service.EstimateDefaults{
				Buildings: map[uint]string{
					buildings[0].ID: "Apartment - 1 BDR",
					buildings[1].ID: "House - 3 BDR",
					buildings[2].ID: "Apartment - 1 BDR",
				},
				HeavyItems: []service.HeavyItemOption{
					{Name: "Piano"},
					{Name: "Gun Safe"},
				},
				LeadSources: []string{
					"Angies List", "Bing", "Dexonline", "Facebook", "Google", "Magazine",
					"Mailers", "MSN", "Other", "Radio", "Realtor", "Referral",
					"Sales Rep", "Saw Truck", "Trade Show", "Yahoo", "Yelp",
				},
			}
			Expect(cmp.Diff(expected, defaults)).To(BeEmpty())
		})

		It("returns a fresh lead source list on every call", func() {
			defaults, err := provider.EstimateForm().GetDefaults(context.TODO())
			Expect(err).To(BeNil())
			defaults.LeadSources[0] = "changed"

			Expect(service.LeadSources()[0]).To(Equal("Angies List"))
		})
	})

	Context("Valid", func() {
		It("validates against the stored blackouts", func() {
			_, err := s.Blackout().Create(context.TODO(), model.Blackout{Date: "2026-12-22", Meridian: model.MeridianMorning})
			Expect(err).To(BeNil())

			form := provider.EstimateForm()
			ok, err := form.Valid(context.TODO(), validEstimate())
			Expect(err).To(BeNil())
			Expect(ok).To(BeFalse())
			Expect(form.Errors().Has("move_time")).To(BeTrue())

			input := validEstimate()
			input["move_time"] = "afternoon"
			ok, err = form.Valid(context.TODO(), input)
			Expect(err).To(BeNil())
			Expect(ok).To(BeTrue())
			Expect(form.Errors().Len()).To(BeZero())
		})

		It("builds a new validator for every form", func() {
			first := provider.EstimateForm()
			_, err := first.Valid(context.TODO(), validEstimate())
			Expect(err).To(BeNil())

			_, err = s.Blackout().Create(context.TODO(), model.Blackout{Date: "2026-12-23"})
			Expect(err).To(BeNil())

			input := validEstimate()
			input["move_date"] = "2026-12-23"

			// the first form keeps the blackouts it already loaded
			ok, err := first.Valid(context.TODO(), input)
			Expect(err).To(BeNil())
			Expect(ok).To(BeTrue())

			second := provider.EstimateForm()
			ok, err = second.Valid(context.TODO(), input)
			Expect(err).To(BeNil())
			Expect(ok).To(BeFalse())
			Expect(second.Errors().Has("move_date")).To(BeTrue())
		})
	})
})
