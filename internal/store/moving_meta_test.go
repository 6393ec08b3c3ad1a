package store_test

import (
	"context"

	"github.com/moveplanner/estimator/internal/store"
	"github.com/moveplanner/estimator/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("settings stores", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		gormdb = newTestDB()
		s = store.NewStore(gormdb)
		Expect(s.InitialMigration(context.TODO())).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	Context("moving meta", func() {
		It("replaces the value of an existing key", func() {
			Expect(s.MovingMeta().Set(context.TODO(), "travel_fee", "75")).To(BeNil())
			Expect(s.MovingMeta().Set(context.TODO(), "travel_fee", "80")).To(BeNil())

			meta, err := s.MovingMeta().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(meta).To(ConsistOf(model.MovingMeta{Key: "travel_fee", Value: "80"}))
		})

		It("returns ErrRecordNotFound for unknown keys", func() {
			_, err := s.MovingMeta().Get(context.TODO(), "unknown")
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM moving_meta;")
		})
	})

	Context("hour modifiers", func() {
		It("upserts the modifier of a building", func() {
			bt, err := s.Building().CreateBuildingType(context.TODO(), model.BuildingType{Label: "Office"})
			Expect(err).To(BeNil())
			b, err := s.Building().Create(context.TODO(), model.Building{BuildingTypeID: bt.ID})
			Expect(err).To(BeNil())

			_, err = s.HourModifier().Upsert(context.TODO(), model.HourModifier{BuildingID: b.ID, Hours: 1})
			Expect(err).To(BeNil())
			_, err = s.HourModifier().Upsert(context.TODO(), model.HourModifier{BuildingID: b.ID, Hours: 2.5})
			Expect(err).To(BeNil())

			modifiers, err := s.HourModifier().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(modifiers).To(HaveLen(1))
			Expect(modifiers[0].Hours).To(Equal(2.5))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM hour_modifiers;")
			gormdb.Exec("DELETE FROM buildings;")
			gormdb.Exec("DELETE FROM building_types;")
		})
	})

	Context("crews and stair modifiers", func() {
		It("lists crews by size and stair modifiers by flights", func() {
			for _, size := range []int{4, 2, 3} {
				_, err := s.Crew().Create(context.TODO(), model.Crew{Size: size, HourlyRate: float64(size) * 50})
				Expect(err).To(BeNil())
			}
			for _, flights := range []int{2, 1} {
				_, err := s.StairModifier().Create(context.TODO(), model.StairModifier{Flights: flights, Modifier: float64(flights) / 4})
				Expect(err).To(BeNil())
			}

			crews, err := s.Crew().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(crews).To(HaveLen(3))
			Expect(crews[0].Size).To(Equal(2))
			Expect(crews[2].Size).To(Equal(4))

			stairs, err := s.StairModifier().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(stairs[0].Flights).To(Equal(1))
		})

		It("rejects duplicated crew sizes", func() {
			_, err := s.Crew().Create(context.TODO(), model.Crew{Size: 2, HourlyRate: 100})
			Expect(err).To(BeNil())
			_, err = s.Crew().Create(context.TODO(), model.Crew{Size: 2, HourlyRate: 120})
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM crews;")
			gormdb.Exec("DELETE FROM stair_modifiers;")
		})
	})
})
