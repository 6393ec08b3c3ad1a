package service_test

import (
	"context"
	"strconv"

	"github.com/google/go-cmp/cmp"
	"github.com/moveplanner/estimator/internal/service"
	"github.com/moveplanner/estimator/internal/store"
	"github.com/moveplanner/estimator/internal/store/model"
	"github.com/moveplanner/estimator/internal/validator"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SettingsForm", Ordered, func() {
	var (
		s        store.Store
		provider *service.FormProvider
		crewID   string
	)

	BeforeAll(func() {
		s = newTestStore()
		provider = service.NewFormProvider(s, service.NewMNZipCodes())

		Expect(s.Seed(context.TODO(), store.SeedData{
			Buildings:  []store.SeedBuilding{{Type: "Office", Hours: 1.5}, {Type: "Storage Unit"}},
			HeavyItems: []model.HeavyItem{{Label: "Piano", Fee: 150}},
			Crews: []model.Crew{
				{Size: 3, HourlyRate: 149},
				{Size: 2, HourlyRate: 109},
			},
			MovingMeta:     map[string]string{"travel_fee": "75", "minimum_hours": "3"},
			StairModifiers: []model.StairModifier{{Flights: 1, Modifier: 0.25}},
		})).To(BeNil())

		crews, err := s.Crew().List(context.TODO())
		Expect(err).To(BeNil())
		crewID = strconv.FormatUint(uint64(crews[0].ID), 10)
	})

	AfterAll(func() {
		s.Close()
	})

	validSettings := func() validator.Input {
		return validator.Input{
			"minimum_hours":  "3",
			"travel_fee":     0,
			"hourly_rate":    "109.50",
			"fuel_surcharge": "",
			"stair_modifier": "0.25",
			"default_crew":   crewID,
			"offers_storage": false,
		}
	}

	It("assembles the settings defaults", func() {
		buildings, err := s.Building().List(context.TODO())
		Expect(err).To(BeNil())
		crews, err := s.Crew().List(context.TODO())
		Expect(err).To(BeNil())

		defaults, err := provider.SettingsForm().GetDefaults(context.TODO())
		Expect(err).To(BeNil())

		expected := &service.SettingsDefaults{
			Buildings: map[uint]string{
				buildings[0].ID: "Office",
				buildings[1].ID: "Storage Unit",
			},
			Crews: []service.CrewOption{
				{ID: crews[0].ID, Size: 2, HourlyRate: 109},
				{ID: crews[1].ID, Size: 3, HourlyRate: 149},
			},
			HeavyItems:     []service.HeavyItemFee{{Name: "Piano", Fee: 150}},
			HourModifiers:  map[uint]float64{buildings[0].ID: 1.5},
			MovingMeta:     map[string]string{"travel_fee": "75", "minimum_hours": "3"},
			StairModifiers: []service.StairModifierOption{{Flights: 1, Modifier: 0.25}},
		}
		Expect(cmp.Diff(expected, defaults)).To(BeEmpty())
	})

	It("accepts valid settings", func() {
		form := provider.SettingsForm()
		ok, err := form.Valid(context.TODO(), validSettings())
		Expect(err).To(BeNil())
		Expect(ok).To(BeTrue())
	})

	It("compares numeric settings by value", func() {
		input := validSettings()
		input["minimum_hours"] = "24"
		input["hourly_rate"] = "0"
		input["fuel_surcharge"] = "101"

		form := provider.SettingsForm()
		ok, err := form.Valid(context.TODO(), input)
		Expect(err).To(BeNil())
		Expect(ok).To(BeFalse())
		Expect(form.Errors().First("minimum_hours")).To(Equal("The minimum hours may not be greater than 12."))
		Expect(form.Errors().First("hourly_rate")).To(Equal("The hourly rate must be greater than 0."))
		Expect(form.Errors().First("fuel_surcharge")).To(Equal("The fuel surcharge may not be greater than 100."))
	})

	It("only accepts existing crews", func() {
		input := validSettings()
		input["default_crew"] = "4242"

		form := provider.SettingsForm()
		ok, err := form.Valid(context.TODO(), input)
		Expect(err).To(BeNil())
		Expect(ok).To(BeFalse())
		Expect(form.Errors().First("default_crew")).To(Equal("Please pick one of the existing crews."))
	})

	It("requires a storage rate when storage is offered", func() {
		input := validSettings()
		input["offers_storage"] = "true"

		form := provider.SettingsForm()
		ok, err := form.Valid(context.TODO(), input)
		Expect(err).To(BeNil())
		Expect(ok).To(BeFalse())
		Expect(form.Errors().First("storage_rate")).To(Equal("The storage rate field is required."))

		input["storage_rate"] = "95"
		ok, err = form.Valid(context.TODO(), input)
		Expect(err).To(BeNil())
		Expect(ok).To(BeTrue())
	})
})
